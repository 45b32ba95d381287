// Package store owns the in-memory todo collection and its mutation rules.
//
// The collection is insertion-ordered and mutated only through Add, Toggle,
// Update and Delete. Every mutation that changes state is followed by a
// synchronous write of the full collection through the persistence adapter.
// All calls happen on one goroutine (the UI event loop or a CLI command), so
// the store does no locking.
package store

import (
	"strings"
	"time"

	"github.com/ItsArsalanMD/todo/internal/model"
	"github.com/ItsArsalanMD/todo/internal/storage"
)

// Store holds the ordered todo collection for the lifetime of the process.
type Store struct {
	adapter *storage.Adapter
	todos   []model.Todo
	nextID  int64

	now func() time.Time
}

// Open hydrates a store from the adapter. Called once at startup.
func Open(adapter *storage.Adapter) (*Store, error) {
	todos, err := adapter.Load()
	if err != nil {
		return nil, err
	}
	s := &Store{
		adapter: adapter,
		todos:   todos,
		nextID:  1,
		now:     time.Now,
	}
	for _, t := range todos {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	return s, nil
}

// Todos returns a copy of the collection in display order.
func (s *Store) Todos() []model.Todo {
	out := make([]model.Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

// Len returns the number of todos.
func (s *Store) Len() int { return len(s.todos) }

// CompletedCount returns how many todos are marked completed.
func (s *Store) CompletedCount() int {
	n := 0
	for _, t := range s.todos {
		if t.Completed {
			n++
		}
	}
	return n
}

// Get returns the todo with the given id.
func (s *Store) Get(id int64) (model.Todo, bool) {
	for _, t := range s.todos {
		if t.ID == id {
			return t, true
		}
	}
	return model.Todo{}, false
}

// Add appends a new todo with a fresh id. Whitespace-only text is rejected
// silently: nothing is added and nothing is written.
func (s *Store) Add(text string) (model.Todo, bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Todo{}, false, nil
	}
	t := model.Todo{
		ID:        s.nextID,
		Text:      text,
		Completed: false,
		CreatedAt: s.now(),
	}
	s.nextID++
	s.todos = append(s.todos, t)
	if err := s.adapter.Save(s.todos); err != nil {
		return model.Todo{}, false, err
	}
	return t, true, nil
}

// Toggle flips the completed flag of the matching todo. Absent ids are a
// silent no-op.
func (s *Store) Toggle(id int64) (bool, error) {
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos[i].Completed = !s.todos[i].Completed
			if err := s.adapter.Save(s.todos); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Update replaces the text of the matching todo. An empty or whitespace-only
// replacement abandons the edit: the original text stays and nothing is
// written. Absent ids are a silent no-op.
func (s *Store) Update(id int64, text string) (bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return false, nil
	}
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos[i].Text = text
			if err := s.adapter.Save(s.todos); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Delete removes the matching todo, preserving the order of the rest.
// Absent ids are a silent no-op.
func (s *Store) Delete(id int64) (bool, error) {
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			if err := s.adapter.Save(s.todos); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
