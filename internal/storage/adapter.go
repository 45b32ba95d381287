package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/ItsArsalanMD/todo/internal/model"
)

// todosKey is the single fixed key the whole collection lives under.
const todosKey = "todos"

// Adapter serializes the todo collection to and from a KV store. Load is
// called once at startup, Save after every mutation.
type Adapter struct {
	kv KV
}

func NewAdapter(kv KV) *Adapter {
	return &Adapter{kv: kv}
}

// Load reads the persisted collection. An absent key yields an empty
// collection; so does a malformed value, which is logged and overwritten on
// the next Save rather than treated as fatal.
func (a *Adapter) Load() ([]model.Todo, error) {
	b, err := a.kv.Get(todosKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []model.Todo{}, nil
		}
		return nil, fmt.Errorf("load todos: %w", err)
	}
	var todos []model.Todo
	if err := json.Unmarshal(b, &todos); err != nil {
		log.Warn("persisted todos are malformed, starting empty", "error", err)
		return []model.Todo{}, nil
	}
	return todos, nil
}

// Save overwrites the full collection under the fixed key.
func (a *Adapter) Save(todos []model.Todo) error {
	b, err := json.MarshalIndent(todos, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal todos: %w", err)
	}
	if err := a.kv.Set(todosKey, b); err != nil {
		return fmt.Errorf("save todos: %w", err)
	}
	return nil
}

// Close releases the underlying store.
func (a *Adapter) Close() error { return a.kv.Close() }
