// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"errors"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/settings-seeder/internal/config"
)

// ErrUnsupportedEngine is returned for a gorm engine that has no driver wired in.
var ErrUnsupportedEngine = errors.New("unsupported gorm engine")

// Create builds the Data Source Name from the configuration.
func Create(cfg *config.Config) string {
	switch strings.ToLower(cfg.DB.GormEngine) {
	case config.EnginePostgres:
		out := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Name,
		)

		if cfg.DB.Extras != "" {
			out += " " + cfg.DB.Extras
		}

		return out
	case config.EngineSQLite:
		if cfg.DB.Extras != "" {
			return cfg.DB.Path + "?" + cfg.DB.Extras
		}

		return cfg.DB.Path
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.Name,
			cfg.DB.Extras,
		)
	}
}

// Dialector returns the gorm dialector for the configured engine.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.DB.GormEngine) {
	case config.EngineSQLite:
		return sqlite.Open(Create(cfg)), nil
	case config.EngineMySQL:
		return gormmysql.Open(Create(cfg)), nil
	case config.EnginePostgres:
		return gormpostgres.Open(Create(cfg)), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedEngine, cfg.DB.GormEngine)
}
