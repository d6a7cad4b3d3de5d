package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/CircleCI-Public/repo-browser/api/repository"
	"github.com/CircleCI-Public/repo-browser/listing"
	"github.com/CircleCI-Public/repo-browser/settings"
)

var orbitSpinner = spinner.Spinner{
	Frames: []string{"ο◉  ", " ◉ο ", " ◉ ο", " ◉ο ", "ο◉  ", "◉ο  "},
	FPS:    time.Second / 8,
}

// column titles and widths in display order; the first five line up with
// listing.SortKeys.
var columnSpecs = []struct {
	title string
	width int
}{
	{"Name", 28},
	{"Watchers", 10},
	{"Forks", 8},
	{"Issues", 8},
	{"Last Updated", 15},
	{"Language", 12},
	{"Status", 9},
}

func columns(d listing.Directive, width int) []table.Column {
	cols := make([]table.Column, len(columnSpecs))
	fixed := 0
	for i, spec := range columnSpecs {
		title := spec.title
		if i < len(listing.SortKeys) && listing.SortKeys[i] == d.Key {
			title += " " + arrow(d.Direction)
		}
		cols[i] = table.Column{Title: title, Width: spec.width}
		if i > 0 {
			fixed += spec.width + 2
		}
	}
	if width > 0 {
		frame, _ := appStyle.GetFrameSize()
		cols[0].Width = max(width-frame-fixed-2, columnSpecs[0].width)
	}
	return cols
}

// tableWidth is the rendered width of cols, cell padding included.
func tableWidth(cols []table.Column) int {
	w := 0
	for _, c := range cols {
		w += c.Width + 2
	}
	return w
}

func rows(repos []repository.Repository) []table.Row {
	out := make([]table.Row, 0, len(repos))
	for _, r := range repos {
		out = append(out, table.Row{
			r.Name,
			FormatCount(r.WatchersCount),
			FormatCount(r.ForksCount),
			FormatCount(r.OpenIssuesCount),
			FormatDate(r),
			r.LanguageOrDefault(),
			r.Status(),
		})
	}
	return out
}

func (m Model) View() string {
	snap := m.browser.Snapshot()

	var body string
	if d, ok := snap.View.(listing.Detail); ok {
		body = m.detailView(snap, d)
	} else {
		body = m.listingView(snap)
	}
	return appStyle.Render(body)
}

func (m Model) title(snap listing.Snapshot) string {
	return titleStyle.Render(snap.OrgName + " Repositories")
}

func (m Model) listingView(snap listing.Snapshot) string {
	var b strings.Builder
	b.WriteString(m.title(snap))
	b.WriteString("\n\n")

	switch snap.List.Status() {
	case listing.Loading:
		b.WriteString(panelStyle.Render(m.spinner.View() + " Loading..."))
	case listing.Failed:
		b.WriteString(errorPanel(snap.List.Message()))
	default:
		if len(snap.Rows) == 0 {
			b.WriteString(subtleStyle.Render("No repositories."))
		} else {
			b.WriteString(m.table.View())
		}
	}

	b.WriteString("\n\n")
	b.WriteString(footer(snap))
	if m.status != "" {
		b.WriteString("\n" + statusMessageStyle.Render(m.status))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(listingHelp{m.keys}))
	return b.String()
}

func errorPanel(message string) string {
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		errorTitleStyle.Render("Error Fetching Data"),
		"",
		message,
		"",
		subtleStyle.Render("Please check your network connection and try again."),
	))
}

func footer(snap listing.Snapshot) string {
	prev, next := subtleStyle.Render("‹ prev"), subtleStyle.Render("next ›")
	if snap.HasPrevious {
		prev = "‹ prev"
	}
	if snap.HasNext {
		next = "next ›"
	}

	sizes := make([]string, 0, len(settings.PageSizes))
	for _, n := range settings.PageSizes {
		s := fmt.Sprint(n)
		if n == snap.PageSize {
			s = "[" + s + "]"
		}
		sizes = append(sizes, s)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		prev,
		fmt.Sprintf("  Page %d of %d  ", snap.Page, snap.TotalPages),
		next,
		subtleStyle.Render("    Rows per page: "),
		strings.Join(sizes, " "),
	)
}
