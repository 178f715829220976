package seed

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/settings-seeder/internal/config"
	"github.com/GoPowerDNS-Admin/settings-seeder/internal/db/dsn"
	"github.com/GoPowerDNS-Admin/settings-seeder/internal/db/executor"
	"github.com/GoPowerDNS-Admin/settings-seeder/internal/db/models"
	gormadapter "github.com/GoPowerDNS-Admin/settings-seeder/internal/logger/adapter/gorm"
	"github.com/GoPowerDNS-Admin/settings-seeder/internal/usersetting"
)

// ErrConfigNil is returned when no configuration was passed in.
var ErrConfigNil = errors.New("config is nil")

// Result describes a finished Run.
type Result struct {
	RunID string
	// Dispatched is the number of insert statements sent to the store. It
	// includes ignore-on-conflict inserts that left an existing row in place.
	Dispatched int
	Skipped    bool
	Checksum   string
}

// Seeder applies definitions files to a database.
type Seeder struct {
	db *gorm.DB
}

// Open connects to the configured database.
func Open(cfg *config.Config) (*gorm.DB, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	dialector, err := dsn.Dialector(cfg)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return gorm.Open(dialector, &gorm.Config{ //nolint:wrapcheck
		Logger: gormadapter.New(gormadapter.Config{
			Level:         cfg.Log.SQLLevel,
			SlowThreshold: gormadapter.ConfigDefault.SlowThreshold,
		}),
	})
}

// New creates a seeder on db.
func New(db *gorm.DB) (*Seeder, error) {
	if db == nil {
		return nil, executor.ErrDBNil
	}

	return &Seeder{db: db}, nil
}

// Migrate creates the user_setting and run history tables if needed.
func (s *Seeder) Migrate() error {
	return s.db.AutoMigrate(&models.UserSetting{}, &models.SeedRun{}) //nolint:wrapcheck
}

// Applied reports whether src with the same checksum was applied before.
func (s *Seeder) Applied(ctx context.Context, src Source) (bool, error) {
	var count int64

	err := s.db.WithContext(ctx).
		Model(&models.SeedRun{}).
		Where("source = ? AND checksum = ?", src.Name, src.Checksum).
		Count(&count).Error

	return count > 0, err //nolint:wrapcheck
}

// Run applies src in one transaction. A file already recorded with the same
// checksum is skipped unless force is set. On failure nothing of src is kept.
func (s *Seeder) Run(ctx context.Context, src Source, force bool) (Result, error) {
	res := Result{Checksum: src.Checksum}

	if !force {
		applied, err := s.Applied(ctx, src)
		if err != nil {
			return res, err
		}

		if applied {
			log.Info().Str("source", src.Name).Str("checksum", src.Checksum).Msg("definitions already applied, skipping")

			res.Skipped = true

			return res, nil
		}
	}

	run := models.SeedRun{
		ID:       uuid.NewString(),
		Source:   src.Name,
		Checksum: src.Checksum,
		Settings: len(src.Settings),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exec, err := executor.NewGorm(tx)
		if err != nil {
			return err
		}

		if err = usersetting.AddUserSettings(ctx, exec, src.Settings); err != nil {
			return err //nolint:wrapcheck
		}

		return tx.Create(&run).Error
	})
	if err != nil {
		log.Error().Err(err).Str("source", src.Name).Msg("seeding user settings failed, transaction rolled back")

		return res, err //nolint:wrapcheck
	}

	res.RunID = run.ID
	res.Dispatched = len(src.Settings)

	log.Info().
		Str("source", src.Name).
		Str("run", run.ID).
		Int("dispatched", res.Dispatched).
		Msg("user setting inserts dispatched")

	return res, nil
}

// Plan renders the statements for src without executing them.
func Plan(ctx context.Context, dialect usersetting.Dialect, src Source, out io.Writer) ([]usersetting.Statement, error) {
	dry := executor.NewDryRun(dialect, out)

	err := usersetting.AddUserSettings(ctx, dry, src.Settings)

	return dry.Statements, err //nolint:wrapcheck
}
