package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/plotdeck/plotdeck/tui"
	"github.com/plotdeck/plotdeck/utils"
	"github.com/spf13/cobra"
)

var exportKeyFile string

var exportCmd = &cobra.Command{
	Use:   "export [recording] [user@host:path]",
	Short: "Copy a session recording to a remote host",
	Long: `Upload a recorded session file to a remote host over SCP.

Examples:
  # Upload a recording into the remote home directory
  plotdeck export session-20260830-101500.jsonl ops@archive-box: --key ~/.ssh/id_ed25519

  # Upload under an explicit remote path
  plotdeck export session.jsonl ops@archive-box:/var/lib/plotdeck/session.jsonl --key ~/.ssh/id_ed25519`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportKeyFile, "key", "k", "", "SSH private key file")
	_ = exportCmd.MarkFlagRequired("key")
}

func runExport(recording, destination string) error {
	target, err := utils.ParseTarget(destination)
	if err != nil {
		return err
	}

	localPath := recording
	if _, err := os.Stat(localPath); err != nil {
		// Bare names refer to the recordings directory.
		dir, dirErr := RecordingsDir()
		if dirErr != nil {
			return fmt.Errorf("recording %s not found: %w", recording, err)
		}
		localPath = filepath.Join(dir, recording)
		if _, err := os.Stat(localPath); err != nil {
			return fmt.Errorf("recording %s not found: %w", recording, err)
		}
	}

	remotePath := target.Path
	if remotePath == "" {
		remotePath = filepath.Base(localPath)
	}

	ctx := context.Background()
	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := utils.Connect(connectCtx, target.User, target.Host, exportKeyFile, utils.DefaultSSHPort, 20*time.Second)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := tui.RunExport(ctx, client, localPath, remotePath, target.User+"@"+target.Host); err != nil {
		return err
	}

	info, err := os.Stat(localPath)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", localPath, err)
	}
	remoteSize, err := utils.RemoteFileSize(client, remotePath)
	if err != nil {
		return err
	}
	if remoteSize != info.Size() {
		return fmt.Errorf("size mismatch after upload: local %d bytes, remote %d bytes", info.Size(), remoteSize)
	}

	PrintSuccess(fmt.Sprintf("Exported %s to %s (%d bytes)", filepath.Base(localPath), destination, info.Size()))
	return nil
}
