package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/keng/internal/exercise/student"
)

// RosterKeyMap defines the key bindings for the student roster.
type RosterKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RosterKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RosterKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultRosterKeyMap returns default key bindings.
func DefaultRosterKeyMap() RosterKeyMap {
	return RosterKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RosterModel shows stored students in a table with the selected
// student's summary underneath.
type RosterModel struct {
	records  []student.Record
	table    table.Model
	help     help.Model
	keys     RosterKeyMap
	width    int
	height   int
	quitting bool
}

// NewRosterModel creates a roster over the given records.
func NewRosterModel(records []student.Record, width, height int) RosterModel {
	m := RosterModel{
		records: records,
		help:    help.New(),
		keys:    DefaultRosterKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	return m
}

func (m *RosterModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Album", Width: 8},
		{Title: "Surname", Width: 14},
		{Title: "Name", Width: 12},
		{Title: "Grades", Width: 6},
		{Title: "Mean", Width: 5},
		{Title: "Status", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rosterRows(m.records)),
		table.WithFocused(true),
		table.WithHeight(tableHeight(m.height)),
		table.WithStyles(listTableStyles()),
	)
	return t
}

// rosterRows builds one table row per record.
func rosterRows(records []student.Record) []table.Row {
	rows := make([]table.Row, len(records))
	for i := range records {
		r := &records[i]
		status := "passed"
		if !r.Passed() {
			status = "failed"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.AlbumNumber()),
			r.Surname,
			r.Name,
			fmt.Sprintf("%d", len(r.Grades())),
			fmt.Sprintf("%.2f", r.Mean()),
			status,
		}
	}
	return rows
}

// Init initializes the roster model.
func (m RosterModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the roster.
func (m RosterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Selected returns the highlighted record, if any.
func (m RosterModel) Selected() (student.Record, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.records) {
		return student.Record{}, false
	}
	return m.records[i], true
}

// View renders the roster.
func (m RosterModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(centerText(fmt.Sprintf("STUDENTS (%d)", len(m.records)), m.width)))
	b.WriteString("\n\n")

	if len(m.records) == 0 {
		b.WriteString(panelStyle.Render(emptyStyle.Padding(1, 2).Render("No students yet.\nAdd one with 'keng student add'.")))
	} else {
		b.WriteString(panelStyle.Render(m.table.View()))
		if r, ok := m.Selected(); ok {
			b.WriteString("\n")
			b.WriteString(r.Summary())
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// RunRoster shows the roster until the user quits.
func RunRoster(records []student.Record, width, height int) error {
	_, err := tea.NewProgram(NewRosterModel(records, width, height), tea.WithAltScreen()).Run()
	return err
}
