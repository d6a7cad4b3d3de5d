// Package ui is the full-screen repository browser. It renders
// listing.Snapshots and turns key presses into listing.Browser operations;
// remote reads run as commands and come back as messages.
package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"

	"github.com/CircleCI-Public/repo-browser/listing"
	"github.com/CircleCI-Public/repo-browser/logger"
)

type listResultMsg listing.ListResult

type detailResultMsg listing.DetailResult

type openedMsg struct {
	url string
	err error
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sends fetch and navigation events to l.
func WithLogger(l *logger.Logger) Option {
	return func(m *Model) { m.log = l }
}

// WithOpenURL replaces the function used to open repository pages.
func WithOpenURL(open func(url string) error) Option {
	return func(m *Model) { m.openURL = open }
}

type Model struct {
	ctx     context.Context
	browser *listing.Browser
	log     *logger.Logger
	openURL func(url string) error

	keys    keyMap
	table   table.Model
	spinner spinner.Model
	help    help.Model

	width  int
	height int
	status string
}

func New(ctx context.Context, b *listing.Browser, opts ...Option) Model {
	m := Model{
		ctx:     ctx,
		browser: b,
		log:     logger.Discard(),
		openURL: browser.OpenURL,
		keys:    newKeyMap(),
		spinner: spinner.New(spinner.WithSpinner(orbitSpinner), spinner.WithStyle(statusMessageStyle)),
		help:    help.New(),
	}
	cols := columns(b.Snapshot().Directive, 0)
	m.table = table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight(b.Snapshot().PageSize)),
		table.WithWidth(tableWidth(cols)),
		table.WithStyles(tableStyles()),
	)
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	req := m.browser.Start()
	m.log.Debug("list fetch %d: page %d, %d per page", req.Seq, req.Page, req.PageSize)
	return tea.Batch(m.spinner.Tick, m.fetchList(req))
}

func (m Model) fetchList(req listing.ListRequest) tea.Cmd {
	source := m.browser.Source()
	ctx := m.ctx
	return func() tea.Msg {
		return listResultMsg(source.FetchList(ctx, req))
	}
}

func (m Model) fetchDetail(req listing.DetailRequest) tea.Cmd {
	source := m.browser.Source()
	ctx := m.ctx
	return func() tea.Msg {
		return detailResultMsg(source.FetchDetail(ctx, req))
	}
}

func (m Model) open(url string) tea.Cmd {
	open := m.openURL
	return func() tea.Msg {
		return openedMsg{url: url, err: open(url)}
	}
}

// startList logs and runs a new list fetch cycle, when there is one.
func (m *Model) startList(req *listing.ListRequest) tea.Cmd {
	if req == nil {
		return nil
	}
	m.log.Debug("list fetch %d: page %d, %d per page", req.Seq, req.Page, req.PageSize)
	m.refreshTable()
	return tea.Batch(m.fetchList(*req), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.refreshTable()
		return m, nil

	case listResultMsg:
		applied, follow := m.browser.ApplyList(listing.ListResult(msg))
		if !applied {
			m.log.Debug("list fetch %d: discarded stale result", msg.Request.Seq)
			return m, nil
		}
		if state := msg.State; state.Status() == listing.Failed {
			m.log.Debug("list fetch %d: %s", msg.Request.Seq, state.Message())
		}
		if follow != nil {
			m.log.Debug("page out of range, moving to page %d", follow.Page)
		}
		cmd := m.startList(follow)
		m.refreshTable()
		return m, cmd

	case detailResultMsg:
		if !m.browser.ApplyDetail(listing.DetailResult(msg)) {
			m.log.Debug("detail fetch %d (%s): discarded stale result", msg.Request.Seq, msg.Request.Name)
		}
		return m, nil

	case openedMsg:
		if msg.err != nil {
			m.log.Error("could not open browser: ", msg.err)
			m.status = "Could not open " + msg.url
		} else {
			m.status = "Opened " + msg.url
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.refreshTable()
			return m, nil
		}
		if _, ok := m.browser.Snapshot().View.(listing.Detail); ok {
			return m.updateDetail(msg)
		}
		return m.updateListing(msg)
	}

	return m, nil
}

func (m Model) updateListing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	if sortKey, ok := m.keys.sortKeyFor(msg); ok {
		d := m.browser.ToggleSort(sortKey)
		m.log.Debug("sort by %s %s", d.Key, d.Direction)
		m.refreshTable()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Open):
		rows := m.browser.Snapshot().Rows
		i := m.table.Cursor()
		if i < 0 || i >= len(rows) {
			return m, nil
		}
		req, err := m.browser.SelectRepo(rows[i].Name)
		if err != nil {
			m.log.Error("could not open details: ", err)
			return m, nil
		}
		m.log.Debug("detail fetch %d: %s", req.Seq, req.Name)
		return m, tea.Batch(m.fetchDetail(req), m.spinner.Tick)

	case key.Matches(msg, m.keys.NextPage):
		return m, m.startList(m.browser.NextPage())

	case key.Matches(msg, m.keys.PrevPage):
		return m, m.startList(m.browser.PreviousPage())

	case key.Matches(msg, m.keys.PageSize):
		m.table.SetCursor(0)
		return m, m.startList(m.browser.CyclePageSize())

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.status = ""
		if m.browser.Back() {
			m.log.Debug("back to list")
		}
		m.refreshTable()
		return m, nil

	case key.Matches(msg, m.keys.Browse):
		if r, ok := m.browser.Snapshot().Detail.Data(); ok && r.HTMLURL != "" {
			return m, m.open(r.HTMLURL)
		}
	}
	return m, nil
}

func (m Model) loading() bool {
	snap := m.browser.Snapshot()
	if _, ok := snap.View.(listing.Detail); ok {
		return snap.Detail.Status() == listing.Loading
	}
	return snap.List.Status() == listing.Loading
}

// refreshTable copies the current snapshot into the table widget.
func (m *Model) refreshTable() {
	snap := m.browser.Snapshot()
	cols := columns(snap.Directive, m.width)
	m.table.SetColumns(cols)
	m.table.SetWidth(tableWidth(cols))
	m.table.SetRows(rows(snap.Rows))
	m.table.SetHeight(m.tableHeight(snap.PageSize))
	// The table clamps SetCursor to the row count, so an empty page would
	// leave it at -1.
	if c := m.table.Cursor(); len(snap.Rows) > 0 && (c < 0 || c >= len(snap.Rows)) {
		m.table.SetCursor(min(max(c, 0), len(snap.Rows)-1))
	}
}

// tableHeight fits the table to the window once its size is known, leaving
// room for the title, footer and help. The header takes two lines.
func (m Model) tableHeight(pageSize int) int {
	h := pageSize + 2
	if m.height == 0 {
		return h
	}
	chrome := 9
	if m.help.ShowAll {
		chrome += 4
	}
	if avail := m.height - chrome; avail < h {
		h = max(avail, 3)
	}
	return h
}
