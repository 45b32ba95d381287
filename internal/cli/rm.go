package cli

import (
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm [id]",
	Aliases: []string{"delete"},
	Short:   "Delete a todo",
	Long: `Delete the todo with the given id.

Examples:
  todo rm 3`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	s, closer, err := openStore()
	if err != nil {
		return err
	}
	defer closer()

	changed, err := s.Delete(id)
	if err != nil {
		return err
	}
	if !changed {
		note("no todo with id " + args[0])
		return nil
	}
	ok("removed")
	return nil
}
