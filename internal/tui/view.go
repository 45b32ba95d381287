package tui

func (m Model) View() string {
	w, h := m.width, m.height
	if w == 0 {
		w, h = 80, 24
	}
	listHeight := h - 4
	if m.mode == ModeAdd || m.mode == ModeEdit || m.mode == ModeConfirmDelete {
		listHeight = h - 6
	}
	m.list.SetSize(w-4, listHeight)

	content := m.list.View()

	switch m.mode {
	case ModeAdd, ModeEdit:
		title := "Add todo"
		if m.mode == ModeEdit {
			title = "Edit todo"
		}
		if m.inputErr != "" {
			title += "  " + errorStyle.Render(m.inputErr)
		}
		content += "\n" + panelStyle.Render(title+"\n"+m.input.View())
	case ModeConfirmDelete:
		prompt := "Delete this todo? " + mutedStyle.Render("(y/n)")
		content += "\n" + panelStyle.Render(prompt)
	}

	if m.status != "" {
		content += "\n" + errorStyle.Render(m.status)
	}
	return panelStyle.Render(content)
}
