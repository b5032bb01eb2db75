package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/plotdeck/plotdeck/dashboard"
	"github.com/plotdeck/plotdeck/metrics"
	"github.com/plotdeck/plotdeck/tui"
	"github.com/plotdeck/plotdeck/utils"
	"github.com/spf13/cobra"
)

var (
	watchInterval time.Duration
	watchRemote   string
	watchCommand  string
	watchKeyFile  string
	watchRecord   bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch live metric plots in collapsible panels",
	Long: `Render live metric plots in collapsible terminal panels.

By default the dashboard shows the local load average, the process goroutine
count, and a demo series. With --remote it additionally samples a command on
a remote host over SSH.

Examples:
  # Watch local metrics, sampling every 2 seconds
  plotdeck watch --interval 2s

  # Also watch the load average of a remote host
  plotdeck watch --remote ops@build-box --key ~/.ssh/id_ed25519

  # Record the session for later export
  plotdeck watch --record`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch()
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVarP(&watchInterval, "interval", "i", 2*time.Second, "Sampling interval")
	watchCmd.Flags().StringVarP(&watchRemote, "remote", "r", "", "Remote host to sample, as user@host")
	watchCmd.Flags().StringVarP(&watchCommand, "command", "c", "", "Command sampled on the remote host (default: cat /proc/loadavg)")
	watchCmd.Flags().StringVarP(&watchKeyFile, "key", "k", "", "SSH private key file for --remote")
	watchCmd.Flags().BoolVar(&watchRecord, "record", false, "Record samples to the recordings directory")
}

func runWatch() error {
	sources, cleanup, err := buildSources()
	if err != nil {
		return err
	}
	defer cleanup()

	sampler := metrics.NewSampler(watchInterval, sources...)

	if watchRecord {
		path, err := newRecordingPath()
		if err != nil {
			return err
		}
		recorder, err := metrics.NewRecorder(path)
		if err != nil {
			return err
		}
		defer func() {
			_ = recorder.Close()
			PrintSuccess(fmt.Sprintf("Recorded session to %s", recorder.Path()))
		}()
		sampler.SetRecorder(recorder)
	}

	deck := dashboard.NewDeck()
	for _, label := range sampler.Labels() {
		deck.Add(dashboard.NewPanel(label, tui.DeckStyles()))
	}

	return tui.RunWatch(deck, sampler)
}

// buildSources assembles the source set for this run. The returned cleanup
// closes any SSH connection opened for --remote.
func buildSources() ([]metrics.Source, func(), error) {
	sources := []metrics.Source{
		metrics.Goroutines{},
		metrics.NewRandomWalk("demo", time.Now().UnixNano()),
	}
	cleanup := func() {}

	if load := metrics.NewLoadAverage(); loadAvailable(load) {
		sources = append([]metrics.Source{load}, sources...)
	} else {
		PrintWarning("load average unavailable on this system")
	}

	if watchRemote != "" {
		target, err := utils.ParseTarget(watchRemote)
		if err != nil {
			return nil, nil, err
		}
		if target.Path != "" {
			return nil, nil, fmt.Errorf("--remote takes user@host, not a path")
		}
		if watchKeyFile == "" {
			return nil, nil, fmt.Errorf("--remote requires --key")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		client, err := utils.Connect(ctx, target.User, target.Host, watchKeyFile, utils.DefaultSSHPort, 20*time.Second)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() { _ = client.Close() }

		sources = append(sources, metrics.NewRemoteSource(target.Host, client, watchCommand))
	}

	return sources, cleanup, nil
}

func loadAvailable(src metrics.Source) bool {
	_, err := src.Sample()
	return err == nil
}
