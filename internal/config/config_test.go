package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kiryu-dev/boardgames/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestMissingFileUsesDefaults(t *testing.T) {
	cfg, err := New(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestYaml(t *testing.T) {
	path := writeFile(t, "config.yml", `
game: connect4
seed: 12
players:
  - name: Ada
  - name: Bot
    ai: heuristic
connect4:
  width: 8
  height: 6
  rotation: true
  rotations: 2
`)
	cfg, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, ConnectFour, cfg.Game)
	assert.Equal(t, int64(12), cfg.Seed)
	assert.Equal(t, []PlayerConfig{{Name: "Ada"}, {Name: "Bot", AI: HeuristicStrategy}}, cfg.Players)
	assert.Equal(t, ConnectFourConfig{Width: 8, Height: 6, Rotation: true, Rotations: 2}, cfg.ConnectFour)
	assert.Equal(t, 4, cfg.Nim.Piles)
}

func TestJson(t *testing.T) {
	path := writeFile(t, "config.json", `{"game":"nim","nim":{"piles":6,"cap":3},"players":[{"ai":"optimal"}]}`)
	cfg, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, NimConfig{Piles: 6, Cap: 3}, cfg.Nim)
	require.Len(t, cfg.Players, 2)
	assert.Equal(t, OptimalStrategy, cfg.Players[0].AI)
	assert.Equal(t, Human, cfg.Players[1].AI)
}

func TestUnknownFieldsAreRejected(t *testing.T) {
	_, err := New(writeFile(t, "config.yml", "gmae: nim\n"))
	assert.Error(t, err)
	_, err = New(writeFile(t, "config.json", `{"gmae":"nim"}`))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BOARDGAMES_GAME", "connect4")
	t.Setenv("BOARDGAMES_CONNECT4_ROTATION", "true")
	t.Setenv("BOARDGAMES_CONNECT4_WIDTH", "5")
	t.Setenv("BOARDGAMES_NIM_CAP", "2")
	t.Setenv("BOARDGAMES_LOG_LEVEL", "debug")

	cfg, err := New(writeFile(t, "config.yml", "connect4:\n  width: 9\n"))
	require.NoError(t, err)
	assert.Equal(t, ConnectFour, cfg.Game)
	assert.True(t, cfg.ConnectFour.Rotation)
	assert.Equal(t, 5, cfg.ConnectFour.Width)
	assert.Equal(t, 2, cfg.Nim.Cap)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown game", func(c *Config) { c.Game = "chess" }},
		{"no piles", func(c *Config) { c.Nim.Piles = 0 }},
		{"negative cap", func(c *Config) { c.Nim.Cap = -1 }},
		{"flat grid", func(c *Config) { c.ConnectFour.Height = 0 }},
		{"negative rotations", func(c *Config) { c.ConnectFour.Rotations = -2 }},
		{"strategy of the other game", func(c *Config) { c.Players[1].AI = HeuristicStrategy }},
		{"three players", func(c *Config) { c.Players = append(c.Players, PlayerConfig{}) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.True(t, errors.Is(cfg.Validate(), domain.ErrInvalidConfig))
		})
	}
	assert.NoError(t, Default().Validate())
}

func TestPlayerEnvOverrides(t *testing.T) {
	t.Setenv("BOARDGAMES_PLAYER_1_AI", "random")
	t.Setenv("BOARDGAMES_PLAYER_1_NAME", "Dice")

	cfg, err := New(writeFile(t, "config.yml", "players:\n  - name: Ada\n"))
	require.NoError(t, err)
	assert.Equal(t, []PlayerConfig{{Name: "Ada"}, {Name: "Dice", AI: RandomStrategy}}, cfg.Players)
}

func TestEmptyFile(t *testing.T) {
	cfg, err := New(writeFile(t, "config.yml", ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
