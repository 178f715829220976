package config

import (
	"github.com/GoPowerDNS-Admin/settings-seeder/internal/logger"
)

// Seed settings.
type Seed struct {
	File   string // definitions file, overridden by --file
	Force  bool   // apply a file even if its checksum was recorded before
	DryRun bool   // print statements instead of executing them
}

// Config overall data structure.
type Config struct {
	DevMode bool // enable dev mode for development
	DB      DB
	Log     logger.Log
	Title   string
	Seed    Seed
}
