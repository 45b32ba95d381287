package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ItsArsalanMD/todo/internal/model"
)

var listGroup bool

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List todos",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	listCmd.Flags().BoolVar(&listGroup, "group", false, "group output by pending/done")
}

func runList(cmd *cobra.Command, args []string) error {
	s, closer, err := openStore()
	if err != nil {
		return err
	}
	defer closer()

	todos := s.Todos()
	done := s.CompletedCount()
	pending := len(todos) - done

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), pending,
		accentStyle.Render("Total"), len(todos),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, mutedStyle.Render(progressBar(done, len(todos), 28)))
	lines = append(lines, "")
	if listGroup {
		lines = append(lines, groupLines(todos)...)
	} else {
		lines = append(lines, flatLines(todos)...)
	}
	lines = append(lines, "")
	lines = append(lines, mutedStyle.Render("Tip: add with `todo add \"Buy milk\"`"))
	panel(lines)
	return nil
}

func flatLines(todos []model.Todo) []string {
	if len(todos) == 0 {
		return []string{mutedStyle.Render("no todos")}
	}
	out := make([]string, 0, len(todos))
	for _, t := range todos {
		box := mutedStyle.Render(boxUnchecked)
		text := t.Text
		if t.Completed {
			box = successStyle.Render(boxChecked)
			text = doneStyle.Render(text)
		}
		if len(text) > 80 {
			text = text[:77] + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			mutedStyle.Render(fmt.Sprintf("%3d.", t.ID)), box, text))
	}
	return out
}

func groupLines(todos []model.Todo) []string {
	var pend, done []model.Todo
	for _, t := range todos {
		if t.Completed {
			done = append(done, t)
		} else {
			pend = append(pend, t)
		}
	}
	var lines []string
	lines = append(lines, accentStyle.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, mutedStyle.Render("(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, accentStyle.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, mutedStyle.Render("(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
