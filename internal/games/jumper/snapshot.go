package jumper

// Snapshot contains the session state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	RunTicks   int
	State      string
	Mode       string
	Paused     bool
	MenuCursor int
	Submenu    bool

	PlayerX   float64
	PlayerY   float64
	PlayerVX  float64
	PlayerVY  float64
	Grounded  bool
	JumpCount int
	Frame     int
	FrameRow  int

	Captures   int
	BestHeight int
	Score      int

	// Ghosts flattened as X, Y pairs
	GhostCount int
	GhostData  []float64
	Spawned    int
}

// Snapshot returns the current session state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	ghosts := g.attacker.Ghosts()
	data := make([]float64, 0, len(ghosts)*2)
	for _, gh := range ghosts {
		data = append(data, gh.X, gh.Y)
	}

	return Snapshot{
		Tick:       g.tickCount,
		RunTicks:   g.runTicks,
		State:      g.state.String(),
		Mode:       g.mode.String(),
		Paused:     g.paused,
		MenuCursor: g.menu.Cursor,
		Submenu:    g.menu.SubmenuOpen,
		PlayerX:    g.player.X,
		PlayerY:    g.player.Y,
		PlayerVX:   g.player.VX,
		PlayerVY:   g.player.VY,
		Grounded:   g.player.Grounded,
		JumpCount:  g.player.JumpCount,
		Frame:      g.player.Frame,
		FrameRow:   g.player.FrameRow,
		Captures:   g.captures,
		BestHeight: g.bestHeight,
		Score:      g.score,
		GhostCount: len(ghosts),
		GhostData:  data,
		Spawned:    g.attacker.Spawned(),
	}
}
