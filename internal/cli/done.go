package cli

import (
	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done [id]",
	Short: "Toggle a todo between done and pending",
	Long: `Toggle the completed flag of the todo with the given id.

Examples:
  todo done 2`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

func runDone(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	s, closer, err := openStore()
	if err != nil {
		return err
	}
	defer closer()

	changed, err := s.Toggle(id)
	if err != nil {
		return err
	}
	if !changed {
		note("no todo with id " + args[0])
		return nil
	}
	t, _ := s.Get(id)
	if t.Completed {
		ok("done: " + t.Text)
	} else {
		ok("pending again: " + t.Text)
	}
	return nil
}
