package dashboard

import "strings"

// Deck is an ordered stack of panels filling the terminal. It implements
// Surface for the resize coordinator and routes pushed samples to the plot
// hosting the matching series.
type Deck struct {
	panels []*Panel
}

// NewDeck creates a deck from the given panels.
func NewDeck(panels ...*Panel) *Deck {
	return &Deck{panels: panels}
}

// Add appends a panel. Plots enumerates live, so a panel added between
// resizes is refreshed on the next dispatch without re-registration.
func (d *Deck) Add(p *Panel) {
	d.panels = append(d.panels, p)
}

// Panels returns the panels in display order.
func (d *Deck) Panels() []*Panel {
	return d.panels
}

// Plots implements Surface. The slice is rebuilt on every call.
func (d *Deck) Plots() []Plot {
	plots := make([]Plot, 0, len(d.panels))
	for _, p := range d.panels {
		plots = append(plots, &panelPlot{deck: d, panel: p})
	}
	return plots
}

// TogglePanel collapses or expands the panel at index i. Out-of-range
// indexes are ignored so number keys past the panel count do nothing.
func (d *Deck) TogglePanel(i int) {
	if i < 0 || i >= len(d.panels) {
		return
	}
	d.panels[i].Toggle()
}

// Push appends a sample to the plot whose panel title matches label.
func (d *Deck) Push(label string, v float64) {
	for _, p := range d.panels {
		if p.Title == label {
			p.Plot().Push(v)
			return
		}
	}
}

// slotHeight allots an equal share of the given height to each open panel,
// after reserving one header row per collapsed panel.
func (d *Deck) slotHeight(height int) int {
	open := 0
	collapsed := 0
	for _, p := range d.panels {
		if p.Collapsed {
			collapsed++
		} else {
			open++
		}
	}
	if open == 0 {
		return 0
	}
	h := (height - collapsed) / open
	if h < 3 {
		h = 3
	}
	return h
}

// View renders the panels top to bottom.
func (d *Deck) View() string {
	views := make([]string, 0, len(d.panels))
	for _, p := range d.panels {
		views = append(views, p.View())
	}
	return strings.Join(views, "\n")
}

// panelPlot adapts a panel to the coordinator's Plot interface, computing
// the panel's share of the terminal at resize time.
type panelPlot struct {
	deck  *Deck
	panel *Panel
}

func (s *panelPlot) PanelClosed() bool {
	return s.panel.Collapsed
}

func (s *panelPlot) Resize(width, height int) {
	s.panel.SetSize(width, s.deck.slotHeight(height))
}
