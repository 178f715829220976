package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash"
	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/GoPowerDNS-Admin/settings-seeder/internal/usersetting"
)

// ErrNoSettings is returned for a definitions file without settings.
var ErrNoSettings = errors.New("definitions file contains no settings")

// Definition is one entry of a definitions file. Pointer fields distinguish a
// missing value from an empty one.
type Definition struct {
	Key            string  `yaml:"key"`
	DefaultValue   *string `yaml:"defaultValue"`
	ValueType      *string `yaml:"valueType"`
	UserValue      *string `yaml:"userValue"`
	LinuxDefault   string  `yaml:"linuxDefault"`
	MacDefault     string  `yaml:"macDefault"`
	WindowsDefault string  `yaml:"windowsDefault"`
	InsertOrIgnore bool    `yaml:"insertOrIgnore"`
}

type document struct {
	Settings []Definition `yaml:"settings"`
}

// Source is a parsed definitions file.
type Source struct {
	Name     string
	Checksum string
	Settings []usersetting.Config
}

// Load reads and parses the definitions file at path.
func Load(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, pkgerrors.Wrap(err, "failed to read definitions file")
	}

	src, err := Parse(data)
	if err != nil {
		return Source{}, pkgerrors.Wrapf(err, "definitions file %s", path)
	}

	src.Name = path

	return src, nil
}

// Parse parses a definitions document. Unknown fields are rejected so that a
// typo like "macDefualt" does not silently drop an override.
func Parse(data []byte) (Source, error) {
	var doc document

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Source{}, pkgerrors.Wrap(err, "failed to decode yaml")
	}

	if len(doc.Settings) == 0 {
		return Source{}, ErrNoSettings
	}

	settings := make([]usersetting.Config, 0, len(doc.Settings))

	for i, d := range doc.Settings {
		cfg, err := d.Config()
		if err != nil {
			return Source{}, fmt.Errorf("setting #%d (%q): %w", i, d.Key, err)
		}

		settings = append(settings, cfg)
	}

	return Source{
		Checksum: Checksum(data),
		Settings: settings,
	}, nil
}

// Config converts the definition into the batch entry consumed by
// usersetting.AddUserSettings. Missing required fields are left nil so that
// the builder reports them.
func (d Definition) Config() (usersetting.Config, error) {
	opts := usersetting.Options{
		DefaultValue:   d.DefaultValue,
		UserValue:      d.UserValue,
		LinuxDefault:   d.LinuxDefault,
		MacDefault:     d.MacDefault,
		WindowsDefault: d.WindowsDefault,
		InsertOrIgnore: d.InsertOrIgnore,
	}

	if d.ValueType != nil {
		vt, err := usersetting.ParseValueType(*d.ValueType)
		if err != nil {
			return usersetting.Config{}, err //nolint:wrapcheck
		}

		opts.ValueType = &vt
	}

	return usersetting.Config{Key: d.Key, Options: opts}, nil
}

// Checksum returns the hex encoded xxhash of data.
func Checksum(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
