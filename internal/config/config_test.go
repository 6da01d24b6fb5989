package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clowdy/clowdy/internal/core/observability/log"
)

func TestLoadYAMLEmptyYieldsDefaults(t *testing.T) {
	c, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadYAML(t *testing.T) {
	c, err := LoadYAML(strings.NewReader(`
log:
  level: debug
  encoding: json
scene: scenes/demo.yaml
tick_rate: 30
ticks: 90
census: false
`))
	require.NoError(t, err)

	assert.Equal(t, "scenes/demo.yaml", c.Scene)
	assert.Equal(t, 30, c.TickRate)
	assert.Equal(t, 90, c.Ticks)
	assert.False(t, c.Census)
	assert.Equal(t, log.Config{Level: log.LevelDebug, Encoding: "json"}, c.Logger())
}

func TestLoadYAMLKeepsDefaultsForMissingKeys(t *testing.T) {
	c, err := LoadYAML(strings.NewReader("ticks: 5\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultTickRate, c.TickRate)
	assert.Equal(t, "info", c.Log.Level)
	assert.True(t, c.Census)
}

func TestLoadYAMLRejectsUnknownKeys(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("tick_rat: 5\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]string{
		"level":        "log: {level: loud}\n",
		"encoding":     "log: {encoding: xml}\n",
		"zero rate":    "tick_rate: 0\n",
		"huge rate":    "tick_rate: 5000\n",
		"negative run": "ticks: -1\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(doc))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestTickInterval(t *testing.T) {
	c := Default()
	c.TickRate = 50
	assert.Equal(t, 20*time.Millisecond, c.TickInterval())
}

func TestLoadFileResolvesScene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sandbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scene: demo.yaml\n"), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "demo.yaml"), c.Scene)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
