package ui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/CircleCI-Public/repo-browser/api/repository"
	"github.com/CircleCI-Public/repo-browser/listing"
)

var printer = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatDate renders the last-updated date as M/D/YYYY in the timestamp's
// own zone.
func FormatDate(r repository.Repository) string {
	t, ok := r.UpdatedTime()
	if !ok {
		return "Invalid Date"
	}
	return t.Format("1/2/2006")
}

func arrow(d listing.Direction) string {
	if d == listing.Ascending {
		return "↑"
	}
	return "↓"
}
