// Command melt serves and renders the melt component gallery.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/meltui/melt/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	var logOpts logOptions

	rootCmd := &cobra.Command{
		Use:   "melt",
		Short: "Reactive UI components for Go",
		Long: `melt is a component library for server-driven reactive UIs.

The CLI serves a live gallery of every component and renders single
demo pages to HTML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd.ErrOrStderr(), logOpts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logOpts.level, "log-level", "", "Log level: debug, info, warn, error (default from melt.yaml)")
	rootCmd.PersistentFlags().BoolVar(&logOpts.json, "log-json", false, "Log as JSON")
	rootCmd.PersistentFlags().BoolVar(&logOpts.noColor, "no-color", false, "Disable colored error output")

	rootCmd.AddCommand(
		serveCmd(),
		renderCmd(),
		demosCmd(),
		versionCmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(1)
	}
}
