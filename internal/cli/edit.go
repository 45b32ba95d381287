package cli

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [id] [text...]",
	Short: "Replace the text of a todo",
	Long: `Replace the text of the todo with the given id. An empty replacement
leaves the todo unchanged.

Examples:
  todo edit 2 "Buy oat milk"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	s, closer, err := openStore()
	if err != nil {
		return err
	}
	defer closer()

	text := strings.Join(args[1:], " ")
	changed, err := s.Update(id, text)
	if err != nil {
		return err
	}
	if !changed {
		if strings.TrimSpace(text) == "" {
			log.Debug("empty edit ignored", "id", id)
		} else {
			note("no todo with id " + args[0])
		}
		return nil
	}
	t, _ := s.Get(id)
	ok("updated #" + args[0] + ": " + t.Text)
	return nil
}
