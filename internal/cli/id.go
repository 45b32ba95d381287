package cli

import (
	"fmt"
	"strconv"
)

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a todo id: %s", arg)
	}
	return id, nil
}
