// Package jumper implements Jumper Keng, a vertical platformer: climb the
// tower to the crown while dodging falling ghosts.
package jumper

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/keng/internal/config"
	"github.com/vovakirdan/keng/internal/core"
	"github.com/vovakirdan/keng/internal/games/jumper/levels"
	"github.com/vovakirdan/keng/internal/logging"
	"github.com/vovakirdan/keng/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "jumper"

var (
	// configPath stores the custom config path set via CLI
	configPath string

	// difficultyPreset stores the difficulty preset set via CLI
	difficultyPreset config.DifficultyPreset

	// levelRef names the level to load: a file, a directory or a built-in ID
	levelRef string

	// startMode is the mode preselected in the menu
	startMode = ModeNormal

	logger = logging.Discard()
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLevel sets the level reference used on the next Reset.
func SetLevel(ref string) {
	levelRef = ref
}

// SetMode preselects the ghost mode ("normal" or "hard").
func SetMode(mode string) {
	startMode = ParseMode(mode)
}

// SetLogger routes game events to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	logger = l
}

// Game implements the Jumper Keng session: menu, run and win screen.
type Game struct {
	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.JumperConfig
	difficulty *config.DifficultyManager
	log        *log.Logger
	loadErr    error

	// Level data (immutable after Reset)
	level  levels.Level
	solids []core.RectF
	crowns []core.RectF
	spawnX float64
	spawnY float64

	// Game objects
	player   *Player
	attacker *Attacker
	camera   *Camera
	menu     Menu

	// Session state
	state      State
	mode       Mode
	paused     bool
	moveTimer  float64 // seconds left on the last left/right press
	tickCount  uint64
	runTicks   int
	runs       int
	captures   int
	bestHeight int // highest tile row climbed above spawn this run
	score      int
}

// New creates a new Jumper Keng game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Jumper Keng"
}

// Reset loads config and level and returns to the main menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = logger
	g.loadErr = nil

	cfg, err := config.LoadJumper(configPath)
	if err != nil {
		g.log.Warn("using default config", "error", err)
		cfg = config.DefaultJumperConfig()
	}
	if difficultyPreset != "" {
		config.ApplyJumperPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	lvl, err := levels.Resolve(levelRef)
	if err != nil {
		g.loadErr = err
		g.log.Error("level load failed, using default", "level", levelRef, "error", err)
		if lvl, err = levels.Default(); err != nil {
			g.loadErr = err
		}
	}
	g.level = lvl
	g.solids = lvl.SolidRects()
	g.crowns = lvl.CrownRects()
	g.spawnX, g.spawnY = cfg.Player.SpawnX, cfg.Player.SpawnY
	if lvl.HasSpawn {
		g.spawnX, g.spawnY = lvl.SpawnX, lvl.SpawnY
	}

	g.camera = NewCamera(runtime.ScreenW, runtime.ScreenH, cfg.Camera.CellWidth, cfg.Camera.CellHeight)
	g.mode = startMode
	g.state = StateMenu
	g.menu.Reset()
	g.tickCount = 0
	g.runs = 0
	g.attacker = nil
	g.prepareRun()
}

// Err returns the level or config load failure from the last Reset, if any.
func (g *Game) Err() error {
	return g.loadErr
}

// prepareRun places a fresh player and attacker at the spawn point.
func (g *Game) prepareRun() {
	g.player = NewPlayer(g.cfg, g.spawnX, g.spawnY)
	seed := g.runtime.Seed + int64(g.runs)
	if g.attacker == nil {
		g.attacker = NewAttacker(seed, g.cfg.Ghosts, g.difficulty, g.mode, float64(g.level.Height))
	} else {
		g.attacker.Reset(seed, g.mode)
	}
	g.paused = false
	g.moveTimer = 0
	g.runTicks = 0
	g.captures = 0
	g.bestHeight = 0
	g.score = 0
	g.followPlayer()
}

// startRun begins a new run with the currently selected mode.
func (g *Game) startRun() {
	g.runs++
	g.prepareRun()
	g.setState(StatePlaying)
}

func (g *Game) setState(s State) {
	if s == g.state {
		return
	}
	g.log.Debug("state change", "from", g.state, "to", s, "mode", g.mode)
	g.state = s
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tickCount++

	switch g.state {
	case StateMenu:
		g.stepMenu(in)
	case StatePlaying:
		g.stepPlaying(in)
	case StateWon:
		g.stepWon(in)
	}

	return core.StepResult{State: g.State()}
}

// stepMenu handles the main menu and the mode submenu.
func (g *Game) stepMenu(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.menu.Move(g.state, -1)
	case in.Has(core.ActionDown):
		g.menu.Move(g.state, 1)
	case in.Has(core.ActionBack):
		if g.menu.SubmenuOpen {
			g.menu.CloseSubmenu()
		}
	case in.Has(core.ActionConfirm) || in.Has(core.ActionJump):
		g.press(g.menu.Selected(g.state))
	}
}

// stepWon handles the win screen buttons.
func (g *Game) stepWon(in core.InputFrame) {
	switch {
	case in.Has(core.ActionRestart):
		g.startRun()
	case in.Has(core.ActionUp):
		g.menu.Move(g.state, -1)
	case in.Has(core.ActionDown):
		g.menu.Move(g.state, 1)
	case in.Has(core.ActionConfirm) || in.Has(core.ActionJump):
		g.press(g.menu.Selected(g.state))
	}
}

// press activates a button.
func (g *Game) press(b Button) {
	switch b {
	case ButtonStart, ButtonPlayAgain:
		g.startRun()
	case ButtonSelectMode:
		g.menu.OpenSubmenu()
	case ButtonExit:
		g.setState(StateExit)
	case ButtonNormal:
		g.mode = ModeNormal
		g.menu.CloseSubmenu()
	case ButtonHard:
		g.mode = ModeHard
		g.menu.CloseSubmenu()
	case ButtonMenu:
		g.menu.Reset()
		g.prepareRun()
		g.setState(StateMenu)
	}
}

// stepPlaying advances one frame of a run.
func (g *Game) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionBack) {
		g.menu.Reset()
		g.setState(StateMenu)
		return
	}
	if in.Has(core.ActionRestart) {
		g.startRun()
		return
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	dt := g.runtime.DeltaTime()
	g.runTicks++

	if in.Has(core.ActionJump) || in.Has(core.ActionUp) {
		g.player.Jump()
	}
	g.handleMovement(in, dt)

	// The crown is checked against last frame's position.
	box := g.player.Rect()
	for _, c := range g.crowns {
		if box.Intersects(c) {
			g.win()
			return
		}
	}

	g.player.Update(dt)
	g.player.Grounded = false
	ResolveAll(g.player, g.solids)
	g.player.X = core.ClampF(g.player.X, 0, float64(g.level.Width)-box.W)
	if !g.player.Grounded && g.player.VY >= 0 && Supported(g.player, g.solids) {
		g.player.Grounded = true
		g.player.JumpCount = 0
	}

	if h := int((g.spawnY - g.player.Y) / float64(g.level.TileSize)); h > g.bestHeight {
		g.bestHeight = h
	}

	g.followPlayer()

	spawned, caught := g.attacker.Update(dt, g.player, config.Progress{Height: g.bestHeight, Ticks: g.runTicks})
	if spawned {
		g.log.Debug("ghost spawned", "ghosts", len(g.attacker.ghosts), "tick", g.runTicks)
	}
	if caught > 0 {
		g.captures += caught
		g.moveTimer = 0
		g.log.Debug("player caught", "captures", g.captures, "tick", g.runTicks)
	}
}

// handleMovement applies left/right input. Terminals report key presses but
// not releases, so each press keeps the player running for move_hold seconds.
func (g *Game) handleMovement(in core.InputFrame, dt float64) {
	switch {
	case in.Has(core.ActionLeft):
		g.player.MoveLeft()
		g.moveTimer = g.cfg.Physics.MoveHold
	case in.Has(core.ActionRight):
		g.player.MoveRight()
		g.moveTimer = g.cfg.Physics.MoveHold
	case g.moveTimer > 0:
		g.moveTimer -= dt
		if g.moveTimer <= 0 {
			g.moveTimer = 0
			g.player.Stop()
		}
	}
}

// win ends the run and scores it.
func (g *Game) win() {
	g.score = g.runScore()
	g.paused = false
	g.menu.Reset()
	g.log.Info("crown reached",
		"mode", g.mode,
		"captures", g.captures,
		"seconds", g.runSeconds(),
		"score", g.score)
	g.setState(StateWon)
}

// runSeconds returns whole seconds elapsed in the current run.
func (g *Game) runSeconds() int {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return g.runTicks / rate
}

// runScore computes the score for finishing now.
func (g *Game) runScore() int {
	s := g.cfg.Scoring
	score := s.WinBonus - s.CapturePenalty*g.captures - s.TimePenalty*g.runSeconds()
	return max(score, 1)
}

// followPlayer centers the camera on the player.
func (g *Game) followPlayer() {
	r := g.player.Rect()
	g.camera.Follow(r.X+r.W/2, r.Y+r.H/2, g.level.Bounds())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateWon,
		Paused:   g.state == StatePlaying && g.paused,
		Exit:     g.state == StateExit,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// RunSummary reports the current run's mode, captures and length.
func (g *Game) RunSummary() registry.RunSummary {
	return registry.RunSummary{
		Mode:     g.mode.String(),
		Captures: g.captures,
		Seconds:  g.runSeconds(),
	}
}

// Resize adapts the camera to a new terminal size, keeping the session.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.camera = NewCamera(width, height, g.cfg.Camera.CellWidth, g.cfg.Camera.CellHeight)
	g.followPlayer()
}

var (
	_ registry.Game       = (*Game)(nil)
	_ registry.Summarizer = (*Game)(nil)
	_ registry.Resizer    = (*Game)(nil)
)
