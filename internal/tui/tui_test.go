package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ItsArsalanMD/todo/internal/storage"
	"github.com/ItsArsalanMD/todo/internal/store"
)

func newTestModel(t *testing.T, opts Options, seed ...string) (Model, *store.Store) {
	t.Helper()
	s, err := store.Open(storage.NewAdapter(storage.NewFileKV(t.TempDir())))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	for _, text := range seed {
		if _, _, err := s.Add(text); err != nil {
			t.Fatalf("seed store: %v", err)
		}
	}
	m := NewModel(s, opts)
	return press(t, m, tea.WindowSizeMsg{Width: 80, Height: 24}), s
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var okModel bool
		m, okModel = next.(Model)
		if !okModel {
			t.Fatalf("Update returned unexpected model type %T", next)
		}
	}
	return m
}

func keyRunes(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyPress(t tea.KeyType) tea.Msg {
	return tea.KeyMsg{Type: t}
}

func TestAddFlow(t *testing.T) {
	m, s := newTestModel(t, Options{})

	m = press(t, m, keyRunes("a"))
	if m.mode != ModeAdd {
		t.Fatalf("mode: got %v, want ModeAdd", m.mode)
	}
	m = press(t, m, keyRunes("  buy milk  "), keyPress(tea.KeyEnter))

	if m.mode != ModeNormal {
		t.Errorf("mode after enter: got %v, want ModeNormal", m.mode)
	}
	todos := s.Todos()
	if len(todos) != 1 || todos[0].Text != "buy milk" {
		t.Errorf("store after add: got %v", todos)
	}
}

func TestAddRejectsEmptyAndStaysInAddMode(t *testing.T) {
	m, s := newTestModel(t, Options{})

	m = press(t, m, keyRunes("a"), keyRunes("   "), keyPress(tea.KeyEnter))
	if m.mode != ModeAdd {
		t.Errorf("mode: got %v, want ModeAdd (kept open for correction)", m.mode)
	}
	if m.inputErr == "" {
		t.Error("inputErr: expected a validation message")
	}
	if s.Len() != 0 {
		t.Errorf("store: got %d todos, want 0", s.Len())
	}
}

func TestAddCancelledWithEscLeavesStoreUnchanged(t *testing.T) {
	m, s := newTestModel(t, Options{})

	m = press(t, m, keyRunes("a"), keyRunes("half-typed"), keyPress(tea.KeyEsc))
	if m.mode != ModeNormal {
		t.Errorf("mode: got %v, want ModeNormal", m.mode)
	}
	if s.Len() != 0 {
		t.Errorf("store: got %d todos, want 0", s.Len())
	}
	if m.input.Value() != "" {
		t.Errorf("input buffer not cleared: %q", m.input.Value())
	}
}

func TestSpaceTogglesSelected(t *testing.T) {
	m, s := newTestModel(t, Options{}, "A")

	m = press(t, m, keyPress(tea.KeySpace))
	if got := s.Todos()[0]; !got.Completed {
		t.Error("first space: want completed")
	}
	press(t, m, keyPress(tea.KeySpace))
	if got := s.Todos()[0]; got.Completed {
		t.Error("second space: want pending again")
	}
}

func TestEditReplacesText(t *testing.T) {
	m, s := newTestModel(t, Options{}, "original")

	m = press(t, m, keyRunes("e"))
	if m.mode != ModeEdit {
		t.Fatalf("mode: got %v, want ModeEdit", m.mode)
	}
	if m.input.Value() != "original" {
		t.Errorf("edit buffer: got %q, want original text", m.input.Value())
	}
	m.input.SetValue("new text")
	m = press(t, m, keyPress(tea.KeyEnter))

	if got := s.Todos()[0].Text; got != "new text" {
		t.Errorf("text after edit: got %q, want %q", got, "new text")
	}
	if m.mode != ModeNormal {
		t.Errorf("mode after enter: got %v, want ModeNormal", m.mode)
	}
}

func TestEmptyEditIsAbandoned(t *testing.T) {
	m, s := newTestModel(t, Options{}, "original")

	m = press(t, m, keyRunes("e"))
	m.input.SetValue("   ")
	m = press(t, m, keyPress(tea.KeyEnter))

	if got := s.Todos()[0].Text; got != "original" {
		t.Errorf("text after empty edit: got %q, want original retained", got)
	}
	if m.mode != ModeNormal {
		t.Errorf("mode: got %v, want ModeNormal (edit abandoned)", m.mode)
	}
}

func TestEditCancelledWithEscRetainsOriginal(t *testing.T) {
	m, s := newTestModel(t, Options{}, "original")

	m = press(t, m, keyRunes("e"))
	m.input.SetValue("discarded draft")
	press(t, m, keyPress(tea.KeyEsc))

	if got := s.Todos()[0].Text; got != "original" {
		t.Errorf("text after cancelled edit: got %q, want %q", got, "original")
	}
}

func TestDeleteRemovesSelected(t *testing.T) {
	m, s := newTestModel(t, Options{}, "A", "B")

	press(t, m, keyRunes("d"))
	todos := s.Todos()
	if len(todos) != 1 || todos[0].Text != "B" {
		t.Errorf("store after delete: got %v", todos)
	}
}

func TestDeleteWithConfirmation(t *testing.T) {
	m, s := newTestModel(t, Options{ConfirmDelete: true}, "A")

	m = press(t, m, keyRunes("d"))
	if m.mode != ModeConfirmDelete {
		t.Fatalf("mode: got %v, want ModeConfirmDelete", m.mode)
	}
	if s.Len() != 1 {
		t.Fatal("delete must wait for confirmation")
	}

	// Declining keeps the todo.
	m = press(t, m, keyRunes("n"))
	if s.Len() != 1 {
		t.Error("declined delete must keep the todo")
	}

	m = press(t, m, keyRunes("d"), keyRunes("y"))
	if s.Len() != 0 {
		t.Error("confirmed delete must remove the todo")
	}
	if m.mode != ModeNormal {
		t.Errorf("mode: got %v, want ModeNormal", m.mode)
	}
}
