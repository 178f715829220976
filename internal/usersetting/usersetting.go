package usersetting

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Executor runs a single write against the store and waits for it to finish.
// The executor owns the connection and any surrounding transaction.
type Executor interface {
	// Dialect reports which SQL flavour the store speaks.
	Dialect() Dialect
	// Exec runs stmt.
	Exec(ctx context.Context, stmt Statement) error
}

// AddUserSetting inserts one setting row.
//
// Missing required fields are reported as a *ValidationError without touching
// the executor. Otherwise exactly one statement is dispatched and the executor
// error, including a duplicate key in strict mode, is returned unchanged.
func AddUserSetting(ctx context.Context, exec Executor, key string, opts Options) error {
	if err := Validate(key, opts); err != nil {
		return err
	}

	if exec == nil {
		return ErrExecutorNil
	}

	stmt, err := render(exec.Dialect(), key, opts)
	if err != nil {
		return err
	}

	log.Debug().
		Str("key", key).
		Stringer("shape", ShapeOf(opts)).
		Bool("insertOrIgnore", opts.InsertOrIgnore).
		Msg("insert user setting")

	return exec.Exec(ctx, stmt)
}

// AddUserSettings inserts the given settings one after another in the given
// order. It stops at the first failing entry and returns a *BatchError.
// Entries applied before the failure are not rolled back here; that is up to
// the transaction behind exec.
//
// The loop must stay sequential: later entries may rely on earlier ones and
// the executor is not safe for concurrent use.
func AddUserSettings(ctx context.Context, exec Executor, settings []Config) error {
	for i, s := range settings {
		if err := AddUserSetting(ctx, exec, s.Key, s.Options); err != nil {
			return &BatchError{Index: i, Key: s.Key, Err: err}
		}
	}

	return nil
}
