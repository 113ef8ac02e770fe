package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/peak/internal/cli/formatter"
	"github.com/alexanderramin/peak/internal/contract"
	"github.com/alexanderramin/peak/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	tickInterval  = time.Second
	progressWidth = 48
)

type tickMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

type sessionKeyMap struct {
	Pause key.Binding
	Skip  key.Binding
	Quit  key.Binding
}

func (k sessionKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Skip, k.Quit}
}

func (k sessionKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultSessionKeys() sessionKeyMap {
	return sessionKeyMap{
		Pause: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause")),
		Skip:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next nudge")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// sessionModel counts a planned session down and surfaces each nudge once
// its offset has elapsed. Each tick advances the clock by speed seconds.
type sessionModel struct {
	plan    *contract.PlanResponse
	steps   []domain.Step
	total   time.Duration
	elapsed time.Duration
	step    time.Duration

	next    int
	current int

	paused   bool
	finished bool
	quitting bool

	bar  progress.Model
	help help.Model
	keys sessionKeyMap
}

func newSessionModel(plan *contract.PlanResponse, speed float64) sessionModel {
	if speed <= 0 {
		speed = 1
	}
	return sessionModel{
		plan:    plan,
		steps:   plan.Session().Steps(),
		total:   time.Duration(plan.DurationMin) * time.Minute,
		step:    time.Duration(float64(tickInterval) * speed),
		current: -1,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth)),
		help:    help.New(),
		keys:    defaultSessionKeys(),
	}
}

func (m sessionModel) Init() tea.Cmd {
	return tick()
}

func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = max(10, min(msg.Width-8, progressWidth))
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			if m.paused {
				m.keys.Pause.SetHelp("space", "resume")
			} else {
				m.keys.Pause.SetHelp("space", "pause")
			}
			return m, nil
		case key.Matches(msg, m.keys.Skip):
			if m.next < len(m.steps) {
				m.elapsed = max(m.elapsed, m.steps[m.next].Offset())
				m.surface()
			}
			return m, nil
		}

	case tickMsg:
		if m.finished || m.quitting {
			return m, nil
		}
		if !m.paused {
			m.elapsed = min(m.elapsed+m.step, m.total)
			m.surface()
		}
		if m.elapsed >= m.total {
			m.finished = true
			return m, tea.Quit
		}
		return m, tick()
	}

	return m, nil
}

// surface shows every nudge whose offset has passed.
func (m *sessionModel) surface() {
	for m.next < len(m.steps) && m.steps[m.next].Offset() <= m.elapsed {
		m.current = m.next
		m.next++
	}
}

func (m sessionModel) percent() float64 {
	if m.total <= 0 {
		return 1
	}
	return float64(m.elapsed) / float64(m.total)
}

func (m sessionModel) View() string {
	if m.quitting {
		return formatter.Dim("Session stopped.") + "\n"
	}

	var b strings.Builder

	cat := m.plan.Category
	fmt.Fprintf(&b, "%s  %s\n\n", formatter.Bold(cat.Label()), formatter.TierIndicator(cat.Tier()))

	clock := fmt.Sprintf("%s / %s", formatter.FormatDuration(m.elapsed), formatter.FormatDuration(m.total))
	if m.paused {
		clock += "  " + formatter.StyleYellow.Render("paused")
	}
	fmt.Fprintf(&b, "%s  %s\n\n", m.bar.ViewAs(m.percent()), clock)

	switch {
	case m.finished:
		b.WriteString(formatter.StyleGreen.Render("Session complete. Nice work.") + "\n")
	case m.current >= 0:
		b.WriteString(formatter.RenderBox("Nudge", m.steps[m.current].Nudge) + "\n")
	default:
		b.WriteString(formatter.Dim("Focus. Your first nudge arrives at "+
			formatter.FormatOffset(m.firstOffset())+".") + "\n")
	}

	b.WriteString("\n")
	for i, s := range m.steps {
		mark := formatter.Dim("○")
		if i < m.next {
			mark = formatter.StyleGreen.Render("✓")
		}
		fmt.Fprintf(&b, "  %s %s  %s\n", mark,
			formatter.StyleBlue.Render(fmt.Sprintf("%7s", formatter.FormatOffset(s.OffsetSec))),
			formatter.Dim(s.Nudge))
	}

	b.WriteString("\n" + m.help.View(m.keys) + "\n")
	return b.String()
}

func (m sessionModel) firstOffset() int {
	if len(m.steps) == 0 {
		return 0
	}
	return m.steps[0].OffsetSec
}
