package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoPowerDNS-Admin/settings-seeder/internal/usersetting"
)

const sampleDefinitions = `
settings:
  - key: theme
    defaultValue: dark
    valueType: string
  - key: keymap
    defaultValue: default
    valueType: string
    macDefault: mac
    insertOrIgnore: true
  - key: zoomLevel
    defaultValue: 0
    valueType: 2
    userValue: "1.5"
  - key: proxy
    defaultValue: ""
    valueType: string
`

func TestParse(t *testing.T) {
	src, err := Parse([]byte(sampleDefinitions))
	require.NoError(t, err)
	require.Len(t, src.Settings, 4)

	assert.Len(t, src.Checksum, 16)
	assert.Equal(t, Checksum([]byte(sampleDefinitions)), src.Checksum)

	theme := src.Settings[0]
	assert.Equal(t, "theme", theme.Key)
	require.NotNil(t, theme.Options.DefaultValue)
	assert.Equal(t, "dark", *theme.Options.DefaultValue)
	assert.Equal(t, usersetting.TypeString, *theme.Options.ValueType)
	assert.Nil(t, theme.Options.UserValue)
	assert.False(t, theme.Options.InsertOrIgnore)
	assert.Equal(t, usersetting.ShapeSimple, usersetting.ShapeOf(theme.Options))

	keymap := src.Settings[1]
	assert.Equal(t, "mac", keymap.Options.MacDefault)
	assert.True(t, keymap.Options.InsertOrIgnore)
	assert.Equal(t, usersetting.ShapeFull, usersetting.ShapeOf(keymap.Options))

	zoom := src.Settings[2]
	assert.Equal(t, "0", *zoom.Options.DefaultValue)
	assert.Equal(t, usersetting.TypeFloat, *zoom.Options.ValueType)
	require.NotNil(t, zoom.Options.UserValue)
	assert.Equal(t, "1.5", *zoom.Options.UserValue)

	proxy := src.Settings[3]
	require.NotNil(t, proxy.Options.DefaultValue)
	assert.Empty(t, *proxy.Options.DefaultValue)
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{name: "empty document", doc: ""},
		{name: "no settings", doc: "settings: []"},
		{name: "unknown field", doc: "settings:\n  - key: a\n    defaultValue: b\n    valueType: string\n    macDefualt: c\n"},
		{name: "unknown value type", doc: "settings:\n  - key: a\n    defaultValue: b\n    valueType: date\n"},
		{name: "not yaml", doc: "settings: [\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			require.Error(t, err)
		})
	}
}

func TestParseKeepsMissingRequiredFields(t *testing.T) {
	// validation is left to the builder so the batch reports the failing entry
	src, err := Parse([]byte("settings:\n  - key: a\n    valueType: string\n  - key: b\n    defaultValue: x\n"))
	require.NoError(t, err)
	require.Len(t, src.Settings, 2)

	assert.Nil(t, src.Settings[0].Options.DefaultValue)
	assert.Nil(t, src.Settings[1].Options.ValueType)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDefinitions), 0o600))

	src, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, src.Name)
	assert.Len(t, src.Settings, 4)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestChecksum(t *testing.T) {
	assert.Equal(t, Checksum([]byte("a")), Checksum([]byte("a")))
	assert.NotEqual(t, Checksum([]byte("a")), Checksum([]byte("b")))
}
