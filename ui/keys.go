package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CircleCI-Public/repo-browser/listing"
)

type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	Open         key.Binding
	SortName     key.Binding
	SortWatchers key.Binding
	SortForks    key.Binding
	SortIssues   key.Binding
	SortUpdated  key.Binding
	PrevPage     key.Binding
	NextPage     key.Binding
	PageSize     key.Binding
	Back         key.Binding
	Browse       key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		SortName: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "sort by name"),
		),
		SortWatchers: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "sort by watchers"),
		),
		SortForks: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "sort by forks"),
		),
		SortIssues: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "sort by issues"),
		),
		SortUpdated: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "sort by updated"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "p"),
			key.WithHelp("←/p", "previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "n"),
			key.WithHelp("→/n", "next page"),
		),
		PageSize: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "rows per page"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "backspace"),
			key.WithHelp("esc/b", "back to list"),
		),
		Browse: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "view on GitHub"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// sortKeyFor maps the numeric sort bindings to their columns.
func (k keyMap) sortKeyFor(msg tea.KeyMsg) (listing.SortKey, bool) {
	switch {
	case key.Matches(msg, k.SortName):
		return listing.SortByName, true
	case key.Matches(msg, k.SortWatchers):
		return listing.SortByWatchers, true
	case key.Matches(msg, k.SortForks):
		return listing.SortByForks, true
	case key.Matches(msg, k.SortIssues):
		return listing.SortByOpenIssues, true
	case key.Matches(msg, k.SortUpdated):
		return listing.SortByUpdated, true
	}
	return 0, false
}

// listingHelp satisfies help.KeyMap for the listing view.
type listingHelp struct{ keyMap }

func (h listingHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.Open, h.PrevPage, h.NextPage, h.PageSize, h.Help, h.Quit}
}

func (h listingHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.Up, h.Down, h.Open},
		{h.SortName, h.SortWatchers, h.SortForks, h.SortIssues, h.SortUpdated},
		{h.PrevPage, h.NextPage, h.PageSize},
		{h.Help, h.Quit},
	}
}

// detailHelp satisfies help.KeyMap for the detail view.
type detailHelp struct{ keyMap }

func (h detailHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.Back, h.Browse, h.Help, h.Quit}
}

func (h detailHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{{h.Back, h.Browse}, {h.Help, h.Quit}}
}
