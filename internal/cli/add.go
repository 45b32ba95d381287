package cli

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Add a new todo",
	Long: `Add a new todo. The text may span multiple arguments.

Examples:
  todo add "Buy milk"
  todo add Water the plants`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, closer, err := openStore()
	if err != nil {
		return err
	}
	defer closer()

	t, added, err := s.Add(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if !added {
		// Whitespace-only input is dropped without complaint.
		log.Debug("empty add ignored")
		return nil
	}
	ok("added #" + formatID(t.ID) + ": " + t.Text)
	return nil
}
