package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/plotdeck/plotdeck/dashboard"
	"github.com/plotdeck/plotdeck/metrics"
)

type sampleTickMsg time.Time

type samplesMsg struct {
	samples []metrics.Sample
	err     error
}

// WatchModel drives the live dashboard. Until the first batch of samples
// arrives it shows a spinner and reports not-ready, so resize events landing
// during startup are dropped by the coordinator. The last seen dimensions
// are replayed once loading finishes.
type WatchModel struct {
	deck    *dashboard.Deck
	coord   *dashboard.Coordinator
	sampler *metrics.Sampler
	spinner spinner.Model

	// Shared across the copies Bubble Tea makes of the model.
	ready     *bool
	resizedAt *time.Time

	width      int
	height     int
	lastUpdate time.Time
	warn       error
	quitting   bool
}

func NewWatchModel(deck *dashboard.Deck, sampler *metrics.Sampler) WatchModel {
	InitCommonStyles(os.Stdout)

	ready := new(bool)
	resizedAt := new(time.Time)

	coord := dashboard.NewCoordinator(func() bool { return *ready }, deck)
	coord.OnEvent(func() { *resizedAt = time.Now() })

	return WatchModel{
		deck:      deck,
		coord:     coord,
		sampler:   sampler,
		spinner:   NewPrimarySpinner(),
		ready:     ready,
		resizedAt: resizedAt,
	}
}

// Coordinator exposes the resize coordinator so the host can register
// additional redraw callbacks before the program starts.
func (m WatchModel) Coordinator() *dashboard.Coordinator {
	return m.coord
}

func (m WatchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, collectCmd(m.sampler), sampleTickCmd(m.sampler.Interval()))
}

func sampleTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return sampleTickMsg(t)
	})
}

func collectCmd(s *metrics.Sampler) tea.Cmd {
	return func() tea.Msg {
		samples, err := s.Collect()
		return samplesMsg{samples: samples, err: err}
	}
}

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			m.deck.TogglePanel(int(key[0]-'1'))
			// Collapsing or expanding a panel changes the layout the same
			// way a resize does.
			m.coord.OnResize(m.width, m.height)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.coord.OnResize(msg.Width, msg.Height)

	case sampleTickMsg:
		return m, tea.Batch(sampleTickCmd(m.sampler.Interval()), collectCmd(m.sampler))

	case samplesMsg:
		m.warn = msg.err
		for _, sample := range msg.samples {
			m.deck.Push(sample.Label, sample.Value)
		}
		m.lastUpdate = time.Now()

		if !*m.ready && len(msg.samples) > 0 {
			*m.ready = true
			// Resize events during loading were dropped; replay the last
			// known dimensions now that drawing is allowed.
			if m.width > 0 && m.height > 0 {
				m.coord.OnResize(m.width, m.height)
			}
		}

	case spinner.TickMsg:
		if !*m.ready {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	if !*m.ready {
		return fmt.Sprintf("%s %s\n", m.spinner.View(), LabelStyle().Render("Waiting for first samples..."))
	}

	var b strings.Builder
	b.WriteString(m.deck.View())
	b.WriteString("\n")

	b.WriteString(TimestampStyle().Render(fmt.Sprintf("Last updated: %s", m.lastUpdate.Format("15:04:05"))))
	if !m.resizedAt.IsZero() {
		b.WriteString(TimestampStyle().Render(fmt.Sprintf("  resized: %s", m.resizedAt.Format("15:04:05"))))
	}
	b.WriteString("\n")

	if m.warn != nil {
		b.WriteString(RenderWarning(m.warn.Error()))
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle().Render("Press 1-9 to toggle panels, 'Q' to quit"))
	b.WriteString("\n")

	return b.String()
}

// RunWatch runs the dashboard until the user quits.
func RunWatch(deck *dashboard.Deck, sampler *metrics.Sampler) error {
	m := NewWatchModel(deck, sampler)
	disableResizeRedraws()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(os.Stdout))
	_, err := p.Run()

	// Leave the terminal usable even if the alt screen exit was messy.
	ResetLine(os.Stdout)
	ShowCursor(os.Stdout)

	if err != nil {
		return fmt.Errorf("error running watch TUI: %w", err)
	}
	return nil
}
