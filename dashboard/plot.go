package dashboard

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var sparkGlyphs = []rune("▁▂▃▄▅▆▇█")

// SparklinePlot renders a sliding window of samples as a block-glyph
// sparkline. The window capacity tracks the plot width, so the plot must be
// resized whenever its container changes shape.
type SparklinePlot struct {
	label  string
	window []float64
	width  int
	height int
	style  lipgloss.Style
}

// NewSparklinePlot creates an empty plot for the labeled series.
func NewSparklinePlot(label string, style lipgloss.Style) *SparklinePlot {
	return &SparklinePlot{
		label: label,
		style: style,
	}
}

// Label returns the series label.
func (p *SparklinePlot) Label() string {
	return p.label
}

// Push appends a sample, evicting the oldest once the window is full.
func (p *SparklinePlot) Push(v float64) {
	p.window = append(p.window, v)
	if p.width > 0 && len(p.window) > p.width {
		p.window = p.window[len(p.window)-p.width:]
	}
}

// Last returns the most recent sample.
func (p *SparklinePlot) Last() (float64, bool) {
	if len(p.window) == 0 {
		return 0, false
	}
	return p.window[len(p.window)-1], true
}

// Resize re-fits the plot to a new bounding box, trimming the sample window
// to the new width. Resizing to the current size is a no-op. Negative
// dimensions clamp to zero, and a degenerate box keeps the sample window so
// a transient squeeze of the terminal does not discard history.
func (p *SparklinePlot) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == p.width && height == p.height {
		return
	}

	p.width = width
	p.height = height
	if width > 0 && len(p.window) > width {
		p.window = p.window[len(p.window)-width:]
	}
}

// Size returns the current bounding box.
func (p *SparklinePlot) Size() (width, height int) {
	return p.width, p.height
}

// View renders the sparkline, one glyph column per sample, scaled to the
// window's min/max and stacked over height rows.
func (p *SparklinePlot) View() string {
	if p.width <= 0 || p.height <= 0 {
		return ""
	}

	lo, hi := p.bounds()
	span := hi - lo
	levels := p.height * len(sparkGlyphs)

	rows := make([][]rune, p.height)
	for r := range rows {
		rows[r] = make([]rune, p.width)
		for c := range rows[r] {
			rows[r][c] = ' '
		}
	}

	for col, v := range p.window {
		level := levels
		if span > 0 {
			level = int(math.Round((v - lo) / span * float64(levels)))
		}
		if level < 1 {
			level = 1
		}
		for r := 0; r < p.height; r++ {
			// Rows render top-down; fill from the bottom.
			rowLevel := level - (p.height-1-r)*len(sparkGlyphs)
			if rowLevel <= 0 {
				continue
			}
			if rowLevel > len(sparkGlyphs) {
				rowLevel = len(sparkGlyphs)
			}
			rows[r][col] = sparkGlyphs[rowLevel-1]
		}
	}

	var b strings.Builder
	for r, row := range rows {
		b.WriteString(p.style.Render(string(row)))
		if r < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Legend summarizes the current window, e.g. "load 0.42 (min 0.12 max 0.98)".
func (p *SparklinePlot) Legend() string {
	last, ok := p.Last()
	if !ok {
		return p.label
	}
	lo, hi := p.bounds()
	return fmt.Sprintf("%s %.2f (min %.2f max %.2f)", p.label, last, lo, hi)
}

func (p *SparklinePlot) bounds() (lo, hi float64) {
	lo = math.Inf(1)
	hi = math.Inf(-1)
	for _, v := range p.window {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if len(p.window) == 0 {
		return 0, 0
	}
	return lo, hi
}
