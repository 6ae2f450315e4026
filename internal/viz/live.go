package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/HannesWell/hipparchus/internal/field"
	"github.com/HannesWell/hipparchus/internal/integrators"
	"github.com/HannesWell/hipparchus/internal/ode"
)

const historyCapacity = 600

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model drives an adaptive integration one accepted step per tick and
// plots how the step-size control reacts to the solution.
type Model struct {
	rk        *integrators.RK45[field.Real]
	sys       ode.System[field.Real]
	y0        []field.Real
	duration  float64
	modelName string

	run     *integrators.Run[field.Real]
	running bool
	failure error

	stepHistory  []float64
	stateHistory []float64
}

// NewModel prepares a live view; the integration starts on the first tick.
func NewModel(rk *integrators.RK45[field.Real], sys ode.System[field.Real],
	y0 []field.Real, duration float64, modelName string) Model {
	return Model{
		rk:           rk,
		sys:          sys,
		y0:           y0,
		duration:     duration,
		modelName:    modelName,
		running:      true,
		stepHistory:  make([]float64, 0, historyCapacity),
		stateHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
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
			m.run = nil
			m.failure = nil
			m.stepHistory = m.stepHistory[:0]
			m.stateHistory = m.stateHistory[:0]
			m.running = true
		}
	case TickMsg:
		if m.running && m.failure == nil {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

// step starts the run lazily, then advances it by one accepted step.
func (m *Model) step() {
	if m.run == nil {
		y0 := append([]field.Real(nil), m.y0...)
		run, err := m.rk.Start(m.sys, field.Real(0), y0, m.duration)
		if err != nil {
			m.failure = err
			return
		}
		m.run = run
	}
	if m.run.Done() {
		m.running = false
		return
	}
	if err := m.run.Advance(); err != nil {
		m.failure = err
		return
	}

	m.stepHistory = appendBounded(m.stepHistory, math.Abs(m.run.StepSize()))
	m.stateHistory = appendBounded(m.stateHistory, m.run.State().CompleteState()[0].Real())
}

func appendBounded(hist []float64, v float64) []float64 {
	hist = append(hist, v)
	if len(hist) > historyCapacity {
		hist = hist[1:]
	}
	return hist
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.modelName)) + "\n")

	status := "RUNNING"
	switch {
	case m.failure != nil:
		status = errStyle.Render("FAILED: " + m.failure.Error())
	case m.run != nil && m.run.Done():
		status = "DONE"
	case !m.running:
		status = "PAUSED"
	}
	s.WriteString(status + "\n")

	if len(m.stateHistory) > 1 {
		chart := asciigraph.Plot(m.stateHistory, asciigraph.Height(8), asciigraph.Width(60), asciigraph.Caption("y[0]"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	if len(m.stepHistory) > 1 {
		chart := asciigraph.Plot(m.stepHistory, asciigraph.Height(5), asciigraph.Width(60), asciigraph.Caption("step size"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	if m.run != nil {
		stats := m.run.Stats()
		s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.4f", m.run.Time().Real())) + "\n")
		s.WriteString(labelStyle.Render("Step size") + valueStyle.Render(fmt.Sprintf("%.3e", m.run.StepSize())) + "\n")
		s.WriteString(labelStyle.Render("Accepted") + valueStyle.Render(fmt.Sprintf("%d", stats.Accepted)) + "\n")
		s.WriteString(labelStyle.Render("Rejected") + valueStyle.Render(fmt.Sprintf("%d", stats.Rejected)) + "\n")
		s.WriteString(labelStyle.Render("Evaluations") + valueStyle.Render(fmt.Sprintf("%d", stats.Evaluations)) + "\n")
	}

	s.WriteString(helpStyle.Render("SP:Pause R:Reset Q:Quit"))
	return s.String()
}
