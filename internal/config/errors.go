package config

import (
	"errors"
)

var (
	// ErrUnknownGormEngine error if config db.gormengine is not supported.
	ErrUnknownGormEngine = errors.New("toml config db.gormengine must be sqlite, mysql or postgres")

	// ErrSQLitePathEmpty error if the sqlite engine is used without db.path.
	ErrSQLitePathEmpty = errors.New("toml config db.path can not be empty for sqlite")

	// ErrDBHostEmpty error if a network engine is used without db.host.
	ErrDBHostEmpty = errors.New("toml config db.host can not be empty")
)
