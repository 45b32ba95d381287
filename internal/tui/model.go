// Package tui is the interactive list built on Bubble Tea. It renders store
// state and forwards user intents (add, toggle, edit, delete) to the store;
// the only state it owns is the transient text buffer used while adding or
// editing.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/ItsArsalanMD/todo/internal/store"
)

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeAdd
	ModeEdit
	ModeConfirmDelete
)

// Options tune TUI behavior from config.
type Options struct {
	ConfirmDelete bool
}

// Model is the main TUI model.
type Model struct {
	store *store.Store
	opts  Options

	list  list.Model
	input textinput.Model // shared buffer for add and edit

	mode     Mode
	editID   int64 // todo being edited while in ModeEdit
	deleteID int64 // todo awaiting confirmation while in ModeConfirmDelete
	inputErr string
	status   string

	width  int
	height int
}

// NewModel builds the TUI around a hydrated store.
func NewModel(s *store.Store, opts Options) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	deleteBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	extra := func() []key.Binding { return []key.Binding{addBind, editBind, toggleBind, deleteBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New todo..."
	ti.CharLimit = 200

	m := Model{
		store: s,
		opts:  opts,
		list:  l,
		input: ti,
	}
	m.reload()
	return m
}

// reload rebuilds the visible list from store state, keeping the cursor in
// range. Called after every mutation so the view always reflects the store.
func (m *Model) reload() {
	todos := m.store.Todos()
	items := make([]list.Item, 0, len(todos))
	for _, t := range todos {
		items = append(items, listItem{todo: t})
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx < 0 {
		idx = 0
	}
	m.list.Select(idx)
	m.list.Title = headerLine(m.store)
}

// selected returns the todo under the cursor.
func (m *Model) selected() (int64, bool) {
	it, okItem := m.list.SelectedItem().(listItem)
	if !okItem {
		return 0, false
	}
	return it.todo.ID, true
}
