package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/plotdeck/plotdeck/tui"
	"github.com/spf13/cobra"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List built-in sources and recorded sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSources()
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

func runSources() error {
	fmt.Println(tui.LabelStyle().Render("Built-in sources"))
	fmt.Println("  load        one-minute load average (/proc/loadavg)")
	fmt.Println("  goroutines  process goroutine count")
	fmt.Println("  demo        bounded random walk")
	fmt.Println("  <host>      remote command output via --remote")
	fmt.Println()

	dir, err := RecordingsDir()
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		fmt.Println(tui.SubtleTextStyle().Render("No recordings yet. Run 'plotdeck watch --record' to create one."))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read recordings directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".jsonl" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		fmt.Println(tui.SubtleTextStyle().Render("No recordings yet. Run 'plotdeck watch --record' to create one."))
		return nil
	}

	fmt.Println(tui.LabelStyle().Render("Recordings in " + dir))
	for _, name := range names {
		fmt.Println("  " + tui.PrimaryStyle().Render(name))
	}
	return nil
}
