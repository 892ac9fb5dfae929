// Package tui provides an interactive terminal scrubber for a solved
// trajectory: play, pause, and step through time while watching the
// configuration-space trail and the path-velocity curve update live.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/trajplan/internal/diagnostics"
	"github.com/san-kum/trajplan/internal/sampler"
	"github.com/san-kum/trajplan/internal/trajopt"
)

const (
	canvasWidth     = 60
	canvasHeight    = 18
	historyCapacity = 400
)

var (
	canvasStyle  = lipgloss.NewStyle().Padding(1, 2)
	statsStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	axisStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
	pausedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
)

// TickMsg drives the playback clock.
type TickMsg time.Time

// Model scrubs through a solved Trajectory using a sampler.Cursor.
type Model struct {
	traj   *trajopt.Trajectory
	cursor *sampler.Cursor

	t       float64
	speed   float64
	running bool

	dim          int
	xAxis, yAxis int

	trail         []struct{ x, y int }
	velHistory    []float64
	width, height int
	showHelp      bool
}

// NewModel builds a scrubber over a trajectory that has already solved
// successfully.
func NewModel(traj *trajopt.Trajectory) Model {
	dim := len(traj.Path().Config(0))
	yAxis := 0
	if dim > 1 {
		yAxis = 1
	}
	return Model{
		traj:       traj,
		cursor:     sampler.NewCursor(),
		speed:      1.0,
		running:    true,
		dim:        dim,
		xAxis:      0,
		yAxis:      yAxis,
		trail:      make([]struct{ x, y int }, 0, historyCapacity),
		velHistory: make([]float64, 0, historyCapacity),
		width:      canvasWidth,
		height:     canvasHeight,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "[":
			m.scrub(-0.05 * m.traj.Duration())
		case "]":
			m.scrub(0.05 * m.traj.Duration())
		case "tab":
			m.cycleAxes()
		case "up", "k":
			m.speed *= 1.25
		case "down", "j":
			m.speed /= 1.25
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.advance(m.speed / 60.0)
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) cycleAxes() {
	if m.dim < 2 {
		return
	}
	m.yAxis = (m.yAxis + 1) % m.dim
	if m.yAxis == m.xAxis {
		m.yAxis = (m.yAxis + 1) % m.dim
	}
	m.trail = m.trail[:0]
}

func (m *Model) scrub(delta float64) {
	m.advance(delta)
}

func (m *Model) reset() {
	m.t = 0
	m.cursor = sampler.NewCursor()
	m.trail = m.trail[:0]
	m.velHistory = m.velHistory[:0]
}

func (m *Model) advance(dt float64) {
	m.t += dt
	if m.t < 0 {
		m.t = 0
		m.cursor = sampler.NewCursor()
	}
	duration := m.traj.Duration()
	if m.t > duration {
		m.t = duration
	}

	cfg, vel := sampler.Sample(m.traj, m.cursor, m.t)
	if m.xAxis < len(cfg) && m.yAxis < len(cfg) {
		m.pushTrail(cfg[m.xAxis], cfg[m.yAxis])
	}

	speed := 0.0
	for _, v := range vel {
		speed += v * v
	}
	m.velHistory = append(m.velHistory, speed)
	if len(m.velHistory) > historyCapacity {
		m.velHistory = m.velHistory[1:]
	}
}

func (m *Model) pushTrail(x, y float64) {
	subW, subH := m.width*2, m.height*4
	px := int((x + 1) * float64(subW) / 2)
	py := subH - 1 - int((y+1)*float64(subH)/2)
	m.trail = append(m.trail, struct{ x, y int }{px, py})
	if len(m.trail) > historyCapacity {
		m.trail = m.trail[1:]
	}
}

func (m Model) View() string {
	canvas := diagnostics.NewCanvas(m.width, m.height)
	for _, pt := range m.trail {
		canvas.Set(pt.x, pt.y)
	}
	if n := len(m.trail); n > 0 {
		cur := m.trail[n-1]
		canvas.Highlight(cur.x, cur.y, '●')
	}
	canvasView := canvasStyle.Render(canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("TRAJECTORY SCRUBBER") + "\n")

	status := pausedStyle.Render("PAUSED")
	if m.running {
		status = runningStyle.Render("PLAYING")
	}
	s.WriteString(status + "\n\n")

	if len(m.velHistory) > 1 {
		chart := asciigraph.Plot(m.velHistory, asciigraph.Height(4), asciigraph.Width(28), asciigraph.Caption("|vel|^2"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.3fs / %.3fs", m.t, m.traj.Duration())) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%.2fx", m.speed)) + "\n")
	s.WriteString(labelStyle.Render("Axes") + axisStyle.Render(fmt.Sprintf("x%d vs x%d", m.xAxis, m.yAxis)) + "\n")

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nTab:Axes  [ ]:Scrub ↑↓:Speed"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume playback    ║
║  R        - Reset to t=0             ║
║  Q        - Quit                     ║
║  Tab      - Cycle projected axes     ║
║  [ ]      - Scrub backward/forward   ║
║  Up/Down  - Adjust playback speed    ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
