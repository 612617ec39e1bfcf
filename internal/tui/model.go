// Package tui is the terminal player: a bubbletea model that owns one
// engine.Run and lets the user scrub through it with the pseudocode
// highlight kept in step.
//
// TUI state is only touched from the bubbletea event loop. Other goroutines
// talk to it by sending ReloadMsg through tea.Program.Send.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/stepwalk/dijkstra"
	"github.com/katalvlaran/stepwalk/engine"
)

// ReloadMsg replaces the run being played, or reports why it could not be
// rebuilt. On error the current run stays.
type ReloadMsg struct {
	Run *engine.Run
	Err error
}

type tickMsg struct{ gen int }

// Option configures a Model.
type Option func(*Model)

// WithInterval sets the autoplay delay.
func WithInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithAutoplay starts the player in autoplay mode.
func WithAutoplay() Option {
	return func(m *Model) { m.autoplay = true }
}

// Model is the player state.
type Model struct {
	run      *engine.Run
	keys     keyMap
	help     help.Model
	interval time.Duration
	autoplay bool
	gen      int
	err      error
}

// New returns a player for run, which must have a started cursor.
func New(run *engine.Run, opts ...Option) Model {
	m := Model{
		run:      run,
		keys:     defaultKeys(),
		help:     help.New(),
		interval: 600 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// Run returns the run being played.
func (m Model) Run() *engine.Run { return m.run }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.autoplay {
		return m.tick()
	}
	return nil
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cur := m.run.Cursor

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tickMsg:
		if !m.autoplay || msg.gen != m.gen {
			return m, nil
		}
		cur.Advance()
		if cur.Completed() {
			m.autoplay = false
			return m, nil
		}
		return m, m.tick()

	case ReloadMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		if msg.Run == nil {
			return m, nil
		}
		m.err = nil
		m.run = msg.Run
		m.autoplay = false
		m.gen++

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			cur.Advance()
		case key.Matches(msg, m.keys.Prev):
			cur.Retreat()
		case key.Matches(msg, m.keys.Restart):
			m.run.Restart()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Autoplay):
			m.autoplay = !m.autoplay
			m.gen++
			if m.autoplay {
				return m, m.tick()
			}
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	run := m.run
	cur := run.Cursor
	step, _ := cur.Step()

	var b strings.Builder

	orientation := "undirected"
	if run.Sequence.Directed {
		orientation = "directed"
	}
	fmt.Fprintf(&b, "%s %s\n\n",
		styleTitle.Render(fmt.Sprintf("stepwalk · %s from %s (%s)", run.Sequence.Algorithm, run.Sequence.Source, orientation)),
		styleCounter.Render(fmt.Sprintf("step %d/%d", cur.Index()+1, cur.Len())))

	b.WriteString(stylePane.Render(m.pseudocode()))
	b.WriteString("\n\n")

	processing := step.Processing
	if processing == "" {
		processing = styleDim.Render("-")
	}
	row(&b, "Processing", processing)
	row(&b, "Frontier", "["+strings.Join(step.Frontier, " ")+"]")
	row(&b, "Visited", "["+strings.Join(step.Visited, " ")+"]")
	if step.Shortest != nil {
		row(&b, "Distances", m.distances())
	}
	row(&b, "Vertices", m.vertices())
	row(&b, "Edges", m.edges())

	if cur.Completed() {
		b.WriteString("\n" + styleDim.Render("run complete") + "\n")
	}
	if m.autoplay {
		b.WriteString("\n" + styleDim.Render("autoplay") + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + styleError.Render("reload failed: "+m.err.Error()) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys) + "\n")

	return b.String()
}

func row(b *strings.Builder, label, value string) {
	b.WriteString(styleLabel.Render(label) + " " + value + "\n")
}

func (m Model) pseudocode() string {
	active := m.run.Lines()
	lines := make([]string, len(m.run.Program.Source))
	for i, src := range m.run.Program.Source {
		marker, style := "  ", styleCode
		for _, a := range active {
			if a == i {
				marker, style = "▶ ", styleActive
				break
			}
		}
		lines[i] = marker + style.Render(src)
	}

	return strings.Join(lines, "\n")
}

func (m Model) vertices() string {
	parts := make([]string, 0, len(m.run.Request.Vertices))
	for _, v := range m.run.Request.Vertices {
		parts = append(parts, nodeStyles[m.run.Cursor.NodeStatus(v.ID)].Render(v.ID))
	}

	return strings.Join(parts, " ")
}

func (m Model) distances() string {
	step, _ := m.run.Cursor.Step()
	parts := make([]string, 0, len(m.run.Request.Vertices))
	for _, v := range m.run.Request.Vertices {
		d, ok := step.Shortest[v.ID]
		if !ok {
			continue
		}
		val := "∞"
		if d != dijkstra.Infinity {
			val = strconv.FormatInt(d, 10)
		}
		parts = append(parts, v.ID+"="+val)
	}

	return strings.Join(parts, " ")
}

func (m Model) edges() string {
	arrow := "—"
	if m.run.Request.Directed {
		arrow = "→"
	}
	parts := make([]string, 0, len(m.run.Request.Edges))
	for _, e := range m.run.Request.Edges {
		st := m.run.Cursor.EdgeStatus(e.From, e.To)
		parts = append(parts, edgeStyles[st].Render(e.From+arrow+e.To+" "+st.String()))
	}

	return lipgloss.NewStyle().Width(72).Render(strings.Join(parts, ", "))
}
