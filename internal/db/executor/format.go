package executor

import (
	"database/sql"
	"strconv"
	"strings"
)

// formatArgs renders bound arguments for humans. The output is never executed.
func formatArgs(args []any) string {
	parts := make([]string, 0, len(args))

	for _, a := range args {
		switch v := a.(type) {
		case sql.NullString:
			if !v.Valid {
				parts = append(parts, "NULL")
				continue
			}

			parts = append(parts, strconv.Quote(v.String))
		case string:
			parts = append(parts, strconv.Quote(v))
		case int:
			parts = append(parts, strconv.Itoa(v))
		case nil:
			parts = append(parts, "NULL")
		default:
			parts = append(parts, "?")
		}
	}

	return strings.Join(parts, ", ")
}
