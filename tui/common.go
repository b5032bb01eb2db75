package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/plotdeck/plotdeck/dashboard"
	"github.com/plotdeck/plotdeck/tui/theme"
)

var (
	helpStyleTUI  lipgloss.Style
	errorStyleTUI lipgloss.Style
	warnStyleTUI  lipgloss.Style
	successStyle  lipgloss.Style

	primaryStyle    lipgloss.Style
	labelStyle      lipgloss.Style
	subtleTextStyle lipgloss.Style
	timestampStyle  lipgloss.Style
)

func InitCommonStyles(out io.Writer) {
	theme.Init(out)

	helpStyleTUI = theme.Neutral().Italic(true)
	errorStyleTUI = theme.Error()
	warnStyleTUI = theme.Warning()
	successStyle = theme.Success()

	primaryStyle = theme.Primary()
	labelStyle = theme.Label()
	subtleTextStyle = theme.Neutral()
	timestampStyle = subtleTextStyle.Italic(true)
}

// DeckStyles returns the widget styles drawn from the shared theme.
func DeckStyles() dashboard.Styles {
	return dashboard.Styles{
		PanelHeader: theme.Primary().Bold(true),
		PanelBorder: theme.Neutral(),
		Plot:        theme.Plot(),
		Legend:      theme.Label(),
	}
}

func RenderWarning(message string) string {
	if message == "" {
		return ""
	}
	return warnStyleTUI.Render("⚠ Warning: " + message)
}

func RenderSuccess(message string) string {
	if message == "" {
		return ""
	}
	return successStyle.Render("✓ " + message)
}

func RenderError(err error) string {
	if err == nil {
		return ""
	}
	return errorStyleTUI.Render("✗ Error: " + err.Error())
}

func PrimaryStyle() lipgloss.Style {
	return primaryStyle
}

func LabelStyle() lipgloss.Style {
	return labelStyle
}

func SubtleTextStyle() lipgloss.Style {
	return subtleTextStyle
}

func TimestampStyle() lipgloss.Style {
	return timestampStyle
}

func HelpStyle() lipgloss.Style {
	return helpStyleTUI
}

func NewPrimarySpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = primaryStyle
	return s
}
