package usersetting

import (
	"database/sql"
	"strings"
)

// Table is the name of the table the statements target.
const Table = "user_setting"

// Column names of the user_setting table.
const (
	ColumnKey            = "key"
	ColumnUserValue      = "userValue"
	ColumnDefaultValue   = "defaultValue"
	ColumnLinuxDefault   = "linuxDefault"
	ColumnMacDefault     = "macDefault"
	ColumnWindowsDefault = "windowsDefault"
	ColumnValueType      = "valueType"
)

// Dialect selects identifier quoting and the ignore-on-conflict syntax.
type Dialect string

const (
	// DialectSQLite renders INSERT OR IGNORE.
	DialectSQLite Dialect = "sqlite"
	// DialectMySQL renders ON DUPLICATE KEY UPDATE with a no-op assignment.
	DialectMySQL Dialect = "mysql"
	// DialectPostgres renders ON CONFLICT ... DO NOTHING.
	DialectPostgres Dialect = "postgres"
)

// ParseDialect maps a gorm dialector name to a Dialect.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "sqlite", "sqlite3":
		return DialectSQLite, nil
	case "mysql", "mariadb":
		return DialectMySQL, nil
	case "postgres", "postgresql", "pgx":
		return DialectPostgres, nil
	}

	return "", ErrUnknownDialect
}

func (d Dialect) quote(ident string) string {
	if d == DialectMySQL {
		return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
	}

	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

// Statement is a complete write instruction. SQL uses ? placeholders which
// are bound to Args in order.
type Statement struct {
	SQL  string
	Args []any
}

// Build validates the setting and renders its insert statement for d.
func Build(d Dialect, key string, opts Options) (Statement, error) {
	if err := Validate(key, opts); err != nil {
		return Statement{}, err
	}

	return render(d, key, opts)
}

func render(d Dialect, key string, opts Options) (Statement, error) {
	if d != DialectSQLite && d != DialectMySQL && d != DialectPostgres {
		return Statement{}, ErrUnknownDialect
	}

	var (
		columns []string
		args    []any
	)

	switch ShapeOf(opts) {
	case ShapeFull:
		userValue := sql.NullString{}
		if opts.UserValue != nil {
			userValue = sql.NullString{String: *opts.UserValue, Valid: true}
		}

		columns = []string{
			ColumnKey,
			ColumnUserValue,
			ColumnDefaultValue,
			ColumnLinuxDefault,
			ColumnMacDefault,
			ColumnWindowsDefault,
			ColumnValueType,
		}
		args = []any{
			key,
			userValue,
			*opts.DefaultValue,
			opts.LinuxDefault,
			opts.MacDefault,
			opts.WindowsDefault,
			int(*opts.ValueType),
		}
	default:
		columns = []string{ColumnKey, ColumnDefaultValue, ColumnValueType}
		args = []any{key, *opts.DefaultValue, int(*opts.ValueType)}
	}

	var b strings.Builder

	if opts.InsertOrIgnore && d == DialectSQLite {
		b.WriteString("INSERT OR IGNORE INTO ")
	} else {
		b.WriteString("INSERT INTO ")
	}

	b.WriteString(d.quote(Table))
	b.WriteString(" (")

	for i, c := range columns {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(d.quote(c))
	}

	b.WriteString(") VALUES (")
	b.WriteString(strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", "))
	b.WriteString(")")

	if opts.InsertOrIgnore {
		switch d {
		case DialectPostgres:
			b.WriteString(" ON CONFLICT (" + d.quote(ColumnKey) + ") DO NOTHING")
		case DialectMySQL:
			// INSERT IGNORE would also turn truncation and range errors into warnings
			b.WriteString(" ON DUPLICATE KEY UPDATE " + d.quote(ColumnKey) + " = " + d.quote(ColumnKey))
		}
	}

	return Statement{SQL: b.String(), Args: args}, nil
}
