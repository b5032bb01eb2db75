package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/plotdeck/plotdeck/tui/theme"
	"github.com/plotdeck/plotdeck/utils"
)

type exportProgressMsg struct {
	sent  int64
	total int64
}

type exportDoneMsg struct {
	err error
}

// ExportModel renders upload progress for a recording transfer.
type ExportModel struct {
	progress  progress.Model
	localPath string
	dest      string
	percent   float64
	done      bool
	quitting  bool
	err       error
}

func NewExportModel(localPath, dest string) ExportModel {
	InitCommonStyles(os.Stdout)

	p := progress.New(
		progress.WithScaledGradient(theme.PrimaryColor, theme.PlotColor),
		progress.WithWidth(60),
	)

	return ExportModel{
		progress:  p,
		localPath: localPath,
		dest:      dest,
	}
}

func (m ExportModel) Init() tea.Cmd {
	return nil
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exportProgressMsg:
		if msg.total > 0 {
			m.percent = float64(msg.sent) / float64(msg.total)
		}
		return m, nil

	case exportDoneMsg:
		m.done = true
		m.err = msg.err
		if m.err == nil {
			m.percent = 1
		}
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m ExportModel) View() string {
	if m.done || m.quitting {
		return ""
	}

	name := filepath.Base(m.localPath)
	return fmt.Sprintf("%s\n\n  %s\n\n%s\n",
		LabelStyle().Render(fmt.Sprintf("Uploading %s to %s", name, m.dest)),
		m.progress.ViewAs(m.percent),
		HelpStyle().Render("Press ctrl+c to cancel"))
}

// RunExport uploads a recording over the established connection, rendering
// a progress bar while the transfer runs.
func RunExport(ctx context.Context, client *utils.SSHClient, localPath, remotePath, dest string) error {
	m := NewExportModel(localPath, dest)
	p := tea.NewProgram(m, tea.WithOutput(os.Stdout))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		err := utils.UploadFile(ctx, client, localPath, remotePath, func(sent, total int64) {
			p.Send(exportProgressMsg{sent: sent, total: total})
		})
		p.Send(exportDoneMsg{err: err})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running export TUI: %w", err)
	}

	result := finalModel.(ExportModel)
	if result.quitting {
		cancel()
		return fmt.Errorf("export cancelled")
	}
	return result.err
}
