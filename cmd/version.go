package cmd

import (
	"github.com/spf13/cobra"

	"github.com/CircleCI-Public/repo-browser/logger"
	"github.com/CircleCI-Public/repo-browser/version"
)

func newVersionCommand(o *commandOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Args:  cobra.NoArgs,
		// version needs neither configuration nor an API client
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			log := logger.NewLoggerWithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr(), o.cfg.Debug)
			log.Infoln(version.String())
		},
	}
}
