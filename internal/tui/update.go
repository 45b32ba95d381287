package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func (m Model) Init() tea.Cmd { return nil }

// Update handles messages. Mutations go through the store, which persists
// synchronously, and the list is rebuilt afterwards.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, okSize := msg.(tea.WindowSizeMsg); okSize {
		m.width = size.Width
		m.height = size.Height
		return m, nil
	}

	switch m.mode {
	case ModeAdd:
		return m.updateAdd(msg)
	case ModeEdit:
		return m.updateEdit(msg)
	case ModeConfirmDelete:
		return m.updateConfirmDelete(msg)
	}
	return m.updateNormal(msg)
}

func (m Model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, okKey := msg.(tea.KeyMsg); okKey {
		switch keyMsg.String() {
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				m.inputErr = "Text cannot be empty"
				return m, nil
			}
			if _, _, err := m.store.Add(text); err != nil {
				m.status = "save failed: " + err.Error()
				log.Error("add failed", "error", err)
			}
			m.leaveInput()
			m.reload()
			return m, nil
		case "esc":
			m.leaveInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, okKey := msg.(tea.KeyMsg); okKey {
		switch keyMsg.String() {
		case "enter":
			// An empty buffer abandons the edit; the original text stays.
			text := strings.TrimSpace(m.input.Value())
			if text != "" {
				if _, err := m.store.Update(m.editID, text); err != nil {
					m.status = "save failed: " + err.Error()
					log.Error("edit failed", "error", err, "id", m.editID)
				}
			}
			m.leaveInput()
			m.reload()
			return m, nil
		case "esc":
			m.leaveInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, okKey := msg.(tea.KeyMsg); okKey {
		switch keyMsg.String() {
		case "y", "Y", "enter":
			m.deleteSelected(m.deleteID)
			m.mode = ModeNormal
			return m, nil
		case "n", "N", "esc":
			m.mode = ModeNormal
			return m, nil
		}
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, okKey := msg.(tea.KeyMsg); okKey && m.list.FilterState() != list.Filtering {
		switch keyMsg.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			if id, okSel := m.selected(); okSel {
				if _, err := m.store.Toggle(id); err != nil {
					m.status = "save failed: " + err.Error()
					log.Error("toggle failed", "error", err, "id", id)
				}
				m.reload()
			}
			return m, nil
		case "d":
			if id, okSel := m.selected(); okSel {
				if m.opts.ConfirmDelete {
					m.deleteID = id
					m.mode = ModeConfirmDelete
					return m, nil
				}
				m.deleteSelected(id)
			}
			return m, nil
		case "a":
			m.mode = ModeAdd
			m.inputErr = ""
			m.input.SetValue("")
			m.input.Placeholder = "New todo..."
			m.input.Focus()
			return m, nil
		case "e":
			if id, okSel := m.selected(); okSel {
				t, found := m.store.Get(id)
				if !found {
					return m, nil
				}
				m.mode = ModeEdit
				m.editID = id
				m.inputErr = ""
				m.input.SetValue(t.Text)
				m.input.CursorEnd()
				m.input.Placeholder = "Edit todo..."
				m.input.Focus()
				return m, nil
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) deleteSelected(id int64) {
	if _, err := m.store.Delete(id); err != nil {
		m.status = "save failed: " + err.Error()
		log.Error("delete failed", "error", err, "id", id)
	}
	m.reload()
}

func (m *Model) leaveInput() {
	m.mode = ModeNormal
	m.inputErr = ""
	m.input.SetValue("")
	m.input.Blur()
}
