package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleConfig = `
Title = "seeder test"

[DB]
GormEngine = "sqlite"
Path = "data/test.db"

[Log]
LogLevel = "debug"
AppName = "seeder"
ServiceName = "seeder"

[Log.Console]
Enabled = true

[Seed]
File = "etc/settings.yaml"
Force = true
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "main.toml"), []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return dir + string(filepath.Separator)
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Title != "seeder test" {
		t.Errorf("Title = %q, want %q", cfg.Title, "seeder test")
	}

	if cfg.DB.GormEngine != EngineSQLite {
		t.Errorf("DB.GormEngine = %q, want %q", cfg.DB.GormEngine, EngineSQLite)
	}

	if cfg.DB.Path != "data/test.db" {
		t.Errorf("DB.Path = %q, want %q", cfg.DB.Path, "data/test.db")
	}

	if cfg.Log.LogLevel != "debug" {
		t.Errorf("Log.LogLevel = %q, want %q", cfg.Log.LogLevel, "debug")
	}

	if !cfg.Log.Console.Enabled {
		t.Error("Log.Console.Enabled should be true")
	}

	if cfg.Seed.File != "etc/settings.yaml" || !cfg.Seed.Force {
		t.Errorf("Seed = %+v, want file etc/settings.yaml and force", cfg.Seed)
	}
}

func TestReadConfigDefaults(t *testing.T) {
	cfg, err := ReadConfig(writeConfig(t, `Title = "defaults"`))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.DB.GormEngine != EngineSQLite {
		t.Errorf("DB.GormEngine = %q, want %q", cfg.DB.GormEngine, EngineSQLite)
	}

	if cfg.DB.Path == "" {
		t.Error("DB.Path should have a default")
	}

	if cfg.Log.ServiceName == "" || cfg.Log.AppName == "" {
		t.Error("Log names should have defaults")
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	if _, err := ReadConfig(t.TempDir() + string(filepath.Separator)); err == nil {
		t.Error("ReadConfig() expected error for missing main.toml")
	}
}

func TestReadConfigWithJSONOverride(t *testing.T) {
	t.Setenv(EnvConfigJSON, `{"Title":"Test Override","DB":{"GormEngine":"postgres","Host":"db","Port":5432}}`)

	cfg, err := ReadConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Title != "Test Override" {
		t.Errorf("Title = %v, want %v", cfg.Title, "Test Override")
	}

	if cfg.DB.GormEngine != EnginePostgres || cfg.DB.Port != 5432 {
		t.Errorf("DB = %+v, want postgres on 5432", cfg.DB)
	}

	// untouched values survive the merge
	if cfg.Seed.File != "etc/settings.yaml" {
		t.Errorf("Seed.File = %q, want %q", cfg.Seed.File, "etc/settings.yaml")
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "valid sqlite",
			config: Config{DB: DB{GormEngine: "sqlite", Path: "x.db"}},
		},
		{
			name:    "sqlite without path",
			config:  Config{DB: DB{GormEngine: "sqlite"}},
			wantErr: true,
		},
		{
			name:   "valid mysql",
			config: Config{DB: DB{GormEngine: "mysql", Host: "localhost"}},
		},
		{
			name:    "postgres without host",
			config:  Config{DB: DB{GormEngine: "postgres"}},
			wantErr: true,
		},
		{
			name:    "unknown engine",
			config:  Config{DB: DB{GormEngine: "oracle", Host: "localhost"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDumpConfigJSON(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		DB: DB{
			GormEngine: "mysql",
			Host:       "localhost",
			Password:   "topsecret",
		},
	}

	jsonStr, err := DumpConfigJSON(&cfg)
	if err != nil {
		t.Fatalf("DumpConfigJSON() error = %v", err)
	}

	if !strings.Contains(jsonStr, "Test") {
		t.Error("DumpConfigJSON() output should contain Title")
	}

	if strings.Contains(jsonStr, "topsecret") {
		t.Error("DumpConfigJSON() must not leak the database password")
	}

	if cfg.DB.Password != "topsecret" {
		t.Error("DumpConfigJSON() must not modify the passed config")
	}
}
