package dashboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPanelToggle(t *testing.T) {
	p := NewPanel("load", DefaultStyles())
	assert.False(t, p.Collapsed)

	p.Toggle()
	assert.True(t, p.Collapsed)
	p.Toggle()
	assert.False(t, p.Collapsed)
}

func TestPanelPreferredHeight(t *testing.T) {
	p := NewPanel("load", DefaultStyles())
	p.SetSize(40, 8)
	assert.Equal(t, 8, p.PreferredHeight())

	p.Toggle()
	assert.Equal(t, 1, p.PreferredHeight(), "collapsed panel keeps only its header row")
}

func TestPanelSetSizeResizesPlot(t *testing.T) {
	p := NewPanel("load", DefaultStyles())
	p.SetSize(40, 8)

	w, h := p.Plot().Size()
	assert.Equal(t, 38, w)
	assert.Equal(t, 6, h)
}

func TestPanelSetSizeSkipsHiddenPlot(t *testing.T) {
	p := NewPanel("load", DefaultStyles())
	p.Toggle()
	p.SetSize(40, 8)

	w, h := p.Plot().Size()
	assert.Equal(t, 0, w, "collapsed panel must not touch its plot")
	assert.Equal(t, 0, h)
}

func TestPanelViewCollapsed(t *testing.T) {
	p := NewPanel("load", DefaultStyles())
	p.SetSize(30, 8)
	p.Toggle()

	view := p.View()
	assert.Equal(t, 1, strings.Count(view, "\n")+1, "collapsed view is a single line")
	assert.Contains(t, view, "▸")
	assert.Contains(t, view, "load")
}

func TestPanelViewOpen(t *testing.T) {
	p := NewPanel("load", DefaultStyles())
	p.SetSize(30, 6)
	p.Plot().Push(1)
	p.Plot().Push(2)

	view := p.View()
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 6, "header + plot rows + legend border")
	assert.Contains(t, lines[0], "▾")
	assert.Contains(t, lines[len(lines)-1], "load 2.00")
}
