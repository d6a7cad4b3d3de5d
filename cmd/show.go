package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/CircleCI-Public/repo-browser/api/repository"
	"github.com/CircleCI-Public/repo-browser/listing"
	"github.com/CircleCI-Public/repo-browser/ui"
)

func newShowCommand(o *commandOpts) *cobra.Command {
	var web bool

	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Print one repository's details.",
		Long: `Print one repository's details.

When no name is given you are asked for one, and offered to open the
repository on GitHub afterwards.

Examples:
  repo-browser show tartufo
  repo-browser show tartufo --web`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompted := len(args) == 0
			var name string
			if prompted {
				n, err := o.ui.ReadStringFromUser("Repository name", "")
				if err != nil {
					return errors.Wrap(err, "no repository name given")
				}
				name = n
			} else {
				name = args[0]
			}

			stop := o.startSpinner(cmd, fmt.Sprintf(" Fetching %s...", name))
			o.log.Debug("fetching repository %s/%s", o.cfg.Org, name)
			res := listing.NewSource(o.client, o.cfg.Org).FetchDetail(cmd.Context(), listing.DetailRequest{Name: name})
			stop()

			r, ok := res.State.Data()
			if !ok {
				return errors.New(res.State.Message())
			}
			printRepository(cmd.OutOrStdout(), r)

			if web || (prompted && o.ui.AskUserToConfirm("Open on GitHub?")) {
				if err := o.openURL(r.HTMLURL); err != nil {
					return errors.Wrapf(err, "could not open %s", r.HTMLURL)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&web, "web", false, "open the repository on GitHub")

	return cmd
}

var nameColor = color.New(color.Bold)

func printRepository(w io.Writer, r repository.Repository) {
	fmt.Fprintln(w, nameColor.Sprint(r.Name))
	fmt.Fprintln(w, r.DescriptionOrDefault())
	fmt.Fprintln(w)

	field := func(label, value string) {
		fmt.Fprintf(w, "%-16s%s\n", label+":", value)
	}
	field("View on GitHub", r.HTMLURL)
	field("Language", r.LanguageOrDefault())
	field("Watchers", ui.FormatCount(r.WatchersCount))
	field("Forks", ui.FormatCount(r.ForksCount))
	field("Open Issues", ui.FormatCount(r.OpenIssuesCount))
	field("Last Updated", ui.FormatDate(r))
	field("Status", statusText(r))
}
