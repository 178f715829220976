package models

import "time"

// SeedRun records a definitions file that was applied to user_setting.
type SeedRun struct {
	// ID is a random UUID of the run.
	ID string `gorm:"primaryKey;size:36"`
	// Source is the path of the definitions file as given on the command line.
	Source string `gorm:"size:512;not null;index:idx_seed_run_source_checksum"`
	// Checksum is the hex encoded xxhash of the file contents.
	Checksum string `gorm:"size:16;not null;index:idx_seed_run_source_checksum"`
	// Settings is the number of definitions in the file.
	Settings int `gorm:"not null"`
	// AppliedAt is set by gorm on create.
	AppliedAt time.Time `gorm:"autoCreateTime"`
}

// TableName overrides the pluralized gorm default.
func (SeedRun) TableName() string {
	return "user_setting_seed_run"
}
