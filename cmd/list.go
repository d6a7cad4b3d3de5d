package cmd

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/CircleCI-Public/repo-browser/api/repository"
	"github.com/CircleCI-Public/repo-browser/listing"
	"github.com/CircleCI-Public/repo-browser/ui"
)

type listOptions struct {
	page     int
	pageSize int
	sort     string
	asc      bool
}

func newListCommand(o *commandOpts) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of repositories as a table.",
		Long: `Print one page of repositories as a table.

Pages are fetched from the API in its own order and then sorted locally, so
--sort only orders the repositories of the requested page.

Examples:
  repo-browser list
  repo-browser list --page 2 --page-size 25 --sort updated`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, o, opts)
		},
	}

	cmd.Flags().IntVar(&opts.page, "page", 1, "page to print")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", 0, "rows per page: 10, 25, 50 or 100 (defaults to the configured page size)")
	cmd.Flags().StringVar(&opts.sort, "sort", listing.DefaultDirective.Key.String(), "sort key: name, watchers, forks, issues or updated")
	cmd.Flags().BoolVar(&opts.asc, "asc", false, "sort ascending instead of descending")

	return cmd
}

func runList(cmd *cobra.Command, o *commandOpts, opts listOptions) error {
	key, err := listing.ParseSortKey(opts.sort)
	if err != nil {
		return err
	}
	direction := listing.Descending
	if opts.asc {
		direction = listing.Ascending
	}

	size := o.cfg.PageSize
	if opts.pageSize != 0 {
		size = opts.pageSize
	}

	b, err := listing.New(listing.NewSource(o.client, o.cfg.Org), size)
	if err != nil {
		return err
	}
	if _, err := b.GoTo(opts.page); err != nil {
		return err
	}
	b.SetDirective(listing.Directive{Key: key, Direction: direction})

	stop := o.startSpinner(cmd, " Fetching repositories...")
	err = fetchList(cmd.Context(), b, o)
	stop()
	if err != nil {
		return err
	}

	snap := b.Snapshot()
	out := cmd.OutOrStdout()
	if len(snap.Rows) == 0 {
		o.log.Infoln("No repositories found.")
	} else {
		renderRepositories(out, snap)
	}
	o.log.Infof("Page %d of %d", snap.Page, snap.TotalPages)
	return nil
}

// fetchList runs list fetch cycles until one lands without moving the page.
func fetchList(ctx context.Context, b *listing.Browser, o *commandOpts) error {
	req := b.Start()
	for {
		o.log.Debug("fetching page %d (%d per page)", req.Page, req.PageSize)
		_, follow := b.ApplyList(b.Source().FetchList(ctx, req))
		if follow == nil {
			break
		}
		o.log.Debug("page %d is out of range", req.Page)
		req = *follow
	}

	if state := b.Snapshot().List; state.Status() == listing.Failed {
		return errors.New(state.Message())
	}
	return nil
}

var columnTitles = []string{"Name", "Watchers", "Forks", "Issues", "Last Updated", "Language", "Status"}

func renderRepositories(w io.Writer, snap listing.Snapshot) {
	header := make([]string, len(columnTitles))
	copy(header, columnTitles)
	for i, k := range listing.SortKeys {
		if k == snap.Directive.Key {
			header[i] += sortArrow(snap.Directive.Direction)
		}
	}

	table := tablewriter.NewWriter(w)
	defer table.Render()
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, r := range snap.Rows {
		table.Append([]string{
			r.Name,
			ui.FormatCount(r.WatchersCount),
			ui.FormatCount(r.ForksCount),
			ui.FormatCount(r.OpenIssuesCount),
			ui.FormatDate(r),
			r.LanguageOrDefault(),
			statusText(r),
		})
	}
}

func sortArrow(d listing.Direction) string {
	if d == listing.Ascending {
		return " ↑"
	}
	return " ↓"
}

var (
	archivedColor = color.New(color.FgYellow)
	activeColor   = color.New(color.FgGreen)
)

func statusText(r repository.Repository) string {
	if r.Archived {
		return archivedColor.Sprint(r.Status())
	}
	return activeColor.Sprint(r.Status())
}

// startSpinner shows a spinner on stderr while a fetch runs, but only when
// stderr is a terminal. The returned func stops it.
func (o *commandOpts) startSpinner(cmd *cobra.Command, suffix string) func() {
	if !o.isTerminal(os.Stderr) {
		return func() {}
	}
	spr := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
	spr.Suffix = suffix
	spr.Start()
	return spr.Stop
}
