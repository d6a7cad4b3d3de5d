package cmd

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/CircleCI-Public/repo-browser/listing"
	"github.com/CircleCI-Public/repo-browser/logger"
	"github.com/CircleCI-Public/repo-browser/ui"
)

const debugLogFile = "debug.log"

func newBrowseCommand(o *commandOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse repositories in a full-screen view.",
		Long: `Browse repositories in a full-screen view.

Listing keys:
  up/down      move the selection
  enter        open the selected repository
  1-5          sort by name, watchers, forks, issues or last updated
  left/p       previous page
  right/n      next page
  s            change rows per page (10, 25, 50, 100)
  ?            toggle help
  q            quit

Detail keys:
  esc/b        back to the list
  o            open the repository on GitHub`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, o)
		},
	}
}

func runBrowse(cmd *cobra.Command, o *commandOpts) error {
	if !o.isTerminal(os.Stdout) {
		return errors.New("the browser needs an interactive terminal, use `repo-browser list` instead")
	}

	log := logger.Discard()
	if o.cfg.Debug {
		f, err := tea.LogToFile(debugLogFile, "repo-browser")
		if err != nil {
			return errors.Wrap(err, "could not open debug log")
		}
		defer f.Close()
		log = logger.NewFileLogger(f, true)
	}

	b, err := listing.New(listing.NewSource(o.client, o.cfg.Org), o.cfg.PageSize)
	if err != nil {
		return err
	}

	model := ui.New(cmd.Context(), b, ui.WithLogger(log), ui.WithOpenURL(o.openURL))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "browser exited")
	}
	return nil
}
