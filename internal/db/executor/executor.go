// Package executor provides usersetting.Executor implementations.
package executor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/settings-seeder/internal/usersetting"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// Gorm executes statements on a gorm session. Pass a transaction to make a
// batch atomic.
type Gorm struct {
	db      *gorm.DB
	dialect usersetting.Dialect
}

// NewGorm creates an executor for db. The dialect is taken from the gorm
// dialector.
func NewGorm(db *gorm.DB) (*Gorm, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	dialect, err := usersetting.ParseDialect(db.Dialector.Name())
	if err != nil {
		return nil, fmt.Errorf("dialector %q: %w", db.Dialector.Name(), err)
	}

	return &Gorm{db: db, dialect: dialect}, nil
}

// Dialect implements usersetting.Executor.
func (g *Gorm) Dialect() usersetting.Dialect {
	return g.dialect
}

// Exec implements usersetting.Executor. Driver errors are returned as is.
func (g *Gorm) Exec(ctx context.Context, stmt usersetting.Statement) error {
	return g.db.WithContext(ctx).Exec(stmt.SQL, stmt.Args...).Error
}

// DryRun collects statements instead of executing them.
type DryRun struct {
	dialect    usersetting.Dialect
	out        io.Writer
	Statements []usersetting.Statement
}

// NewDryRun creates a dry run executor. Statements are printed to out when it
// is not nil.
func NewDryRun(dialect usersetting.Dialect, out io.Writer) *DryRun {
	return &DryRun{dialect: dialect, out: out}
}

// Dialect implements usersetting.Executor.
func (d *DryRun) Dialect() usersetting.Dialect {
	return d.dialect
}

// Exec implements usersetting.Executor.
func (d *DryRun) Exec(_ context.Context, stmt usersetting.Statement) error {
	d.Statements = append(d.Statements, stmt)

	log.Trace().Str("sql", stmt.SQL).Interface("args", stmt.Args).Msg("dry run")

	if d.out == nil {
		return nil
	}

	_, err := fmt.Fprintf(d.out, "%s; -- %s\n", stmt.SQL, formatArgs(stmt.Args))

	return err //nolint:wrapcheck
}
