package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles carries the lipgloss styles shared by the deck widgets.
type Styles struct {
	PanelHeader lipgloss.Style
	PanelBorder lipgloss.Style
	Plot        lipgloss.Style
	Legend      lipgloss.Style
}

// DefaultStyles returns unadorned styles, useful in tests and plain output.
func DefaultStyles() Styles {
	return Styles{
		PanelHeader: lipgloss.NewStyle(),
		PanelBorder: lipgloss.NewStyle(),
		Plot:        lipgloss.NewStyle(),
		Legend:      lipgloss.NewStyle(),
	}
}

// Panel is a titled collapsible section hosting a single plot. A collapsed
// panel renders only its header line and reports its plot as closed.
type Panel struct {
	Title     string
	Collapsed bool

	plot   *SparklinePlot
	styles Styles
	width  int
	height int
}

// NewPanel creates an open panel hosting a plot for the labeled series.
func NewPanel(title string, styles Styles) *Panel {
	return &Panel{
		Title:  title,
		plot:   NewSparklinePlot(title, styles.Plot),
		styles: styles,
		height: 6,
	}
}

// Plot returns the hosted plot.
func (p *Panel) Plot() *SparklinePlot {
	return p.plot
}

// Toggle flips the collapsed state.
func (p *Panel) Toggle() {
	p.Collapsed = !p.Collapsed
}

// SetSize re-fits the panel and, when open, its plot. Height includes the
// header and bottom border rows.
func (p *Panel) SetSize(width, height int) {
	p.width = width
	if height > 0 {
		p.height = height
	}
	if !p.Collapsed {
		p.plot.Resize(p.contentWidth(), p.contentHeight())
	}
}

// PreferredHeight reports the rows the panel wants: header only when
// collapsed, header + plot + border when open.
func (p *Panel) PreferredHeight() int {
	if p.Collapsed {
		return 1
	}
	return p.height
}

func (p *Panel) contentWidth() int {
	return p.width - 2
}

func (p *Panel) contentHeight() int {
	return p.height - 2
}

// View renders the header line, then the plot and a legend-bearing bottom
// border when open.
func (p *Panel) View() string {
	marker := "▾"
	if p.Collapsed {
		marker = "▸"
	}
	title := p.styles.PanelHeader.Render(" " + marker + " " + p.Title + " ")
	if pad := p.width - lipgloss.Width(title); pad > 0 {
		title += p.styles.PanelBorder.Render(strings.Repeat("─", pad))
	}

	if p.Collapsed {
		return title
	}

	var parts []string
	parts = append(parts, title)

	plotView := p.plot.View()
	if plotView != "" {
		for _, line := range strings.Split(plotView, "\n") {
			parts = append(parts, " "+line)
		}
	}

	legend := p.styles.Legend.Render(" " + p.plot.Legend() + " ")
	border := legend
	if pad := p.width - lipgloss.Width(legend); pad > 0 {
		border += p.styles.PanelBorder.Render(strings.Repeat("─", pad))
	}
	parts = append(parts, border)

	return strings.Join(parts, "\n")
}
