package cmd

import (
	"os"

	"github.com/plotdeck/plotdeck/internal/version"
	"github.com/plotdeck/plotdeck/sentry"
	"github.com/plotdeck/plotdeck/tui"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "plotdeck",
	Short:         "Terminal metric dashboard",
	Long:          "plotdeck renders live metric plots in collapsible terminal panels.\nUse it to watch local or remote hosts and export recorded sessions.",
	Version:       version.BuildVersion,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		sentry.CaptureError(err, &sentry.EventOptions{
			Tags:  sentry.NewTags().Set("service", "plotdeck").Set("version", version.BuildVersion),
			Extra: sentry.NewExtra().Set("args", os.Args[1:]),
		})
		PrintError(err)
		os.Exit(1)
	}
}

func init() {
	tui.InitCommonStyles(os.Stdout)

	completionCmd := &cobra.Command{
		Use:   "completion [shell]",
		Short: "Generate the autocompletion script for plotdeck for the specified shell",
		Run: func(cmd *cobra.Command, args []string) {
			_ = rootCmd.GenBashCompletionV2(os.Stdout, true) //nolint:errcheck // completion generation error is non-fatal
		},
	}

	completionCmd.AddCommand(&cobra.Command{
		Use:   "bash",
		Short: "Generate the autocompletion script for bash",
		Run: func(cmd *cobra.Command, args []string) {
			_ = rootCmd.GenBashCompletionV2(os.Stdout, true) //nolint:errcheck // completion generation error is non-fatal
		},
	})

	completionCmd.AddCommand(&cobra.Command{
		Use:   "zsh",
		Short: "Generate the autocompletion script for zsh",
		Run: func(cmd *cobra.Command, args []string) {
			_ = rootCmd.GenZshCompletion(os.Stdout) //nolint:errcheck // completion generation error is non-fatal
		},
	})

	completionCmd.AddCommand(&cobra.Command{
		Use:   "fish",
		Short: "Generate the autocompletion script for fish",
		Run: func(cmd *cobra.Command, args []string) {
			_ = rootCmd.GenFishCompletion(os.Stdout, true) //nolint:errcheck // completion generation error is non-fatal
		},
	})

	completionCmd.AddCommand(&cobra.Command{
		Use:   "powershell",
		Short: "Generate the autocompletion script for powershell",
		Run: func(cmd *cobra.Command, args []string) {
			_ = rootCmd.GenPowerShellCompletion(os.Stdout) //nolint:errcheck // completion generation error is non-fatal
		},
	})

	rootCmd.AddCommand(completionCmd)
}
