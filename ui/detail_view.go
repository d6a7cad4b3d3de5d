package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CircleCI-Public/repo-browser/api/repository"
	"github.com/CircleCI-Public/repo-browser/listing"
)

func (m Model) detailView(snap listing.Snapshot, d listing.Detail) string {
	var b strings.Builder
	b.WriteString(m.title(snap))
	b.WriteString("\n\n")

	switch snap.Detail.Status() {
	case listing.Loading:
		b.WriteString(panelStyle.Render(m.spinner.View() + " Loading " + d.Name() + "..."))
	case listing.Failed:
		b.WriteString(errorPanel(snap.Detail.Message()))
	default:
		r, _ := snap.Detail.Data()
		b.WriteString(detailPanel(r))
	}

	if m.status != "" {
		b.WriteString("\n" + statusMessageStyle.Render(m.status))
	}
	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render("‹ Back to List"))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(detailHelp{m.keys}))
	return b.String()
}

func detailPanel(r repository.Repository) string {
	status := activeStyle.Render(r.Status())
	if r.Archived {
		status = archivedStyle.Render(r.Status())
	}

	field := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
	}

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(r.Name),
		"",
		r.DescriptionOrDefault(),
		"",
		linkStyle.Render("View on GitHub")+subtleStyle.Render(" "+r.HTMLURL),
		"",
		field("Language", r.LanguageOrDefault()),
		field("Watchers", FormatCount(r.WatchersCount)),
		field("Forks", FormatCount(r.ForksCount)),
		field("Open Issues", FormatCount(r.OpenIssuesCount)),
		field("Last Updated", FormatDate(r)),
		field("Status", status),
	))
}
