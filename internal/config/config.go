package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/kiryu-dev/boardgames/internal/domain"
	"github.com/kiryu-dev/boardgames/pkg/utils"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	Nim         = "nim"
	ConnectFour = "connect4"

	Human             = ""
	OptimalStrategy   = "optimal"
	RandomStrategy    = "random"
	HeuristicStrategy = "heuristic"
	RotationStrategy  = "rotation"

	envPrefix   = "BOARDGAMES_"
	playerCount = 2
)

var strategies = map[string][]string{
	Nim:         {Human, OptimalStrategy, RandomStrategy},
	ConnectFour: {Human, HeuristicStrategy, RotationStrategy},
}

type PlayerConfig struct {
	Name string `yaml:"name" json:"name" env:"NAME"`
	AI   string `yaml:"ai" json:"ai" env:"AI"`
}

type NimConfig struct {
	Piles int `yaml:"piles" json:"piles" env:"PILES"`
	Cap   int `yaml:"cap" json:"cap" env:"CAP"`
}

type ConnectFourConfig struct {
	Width     int  `yaml:"width" json:"width" env:"WIDTH"`
	Height    int  `yaml:"height" json:"height" env:"HEIGHT"`
	Rotation  bool `yaml:"rotation" json:"rotation" env:"ROTATION"`
	Rotations int  `yaml:"rotations" json:"rotations" env:"ROTATIONS"`
}

type LogConfig struct {
	Level       string `yaml:"level" json:"level" env:"LEVEL"`
	Development bool   `yaml:"development" json:"development" env:"DEVELOPMENT"`
}

type Config struct {
	Game        string            `yaml:"game" json:"game" env:"GAME"`
	Seed        int64             `yaml:"seed" json:"seed" env:"SEED"`
	Color       bool              `yaml:"color" json:"color" env:"COLOR"`
	Log         LogConfig         `yaml:"log" json:"log" envPrefix:"LOG_"`
	Players     []PlayerConfig    `yaml:"players" json:"players" envPrefix:"PLAYER_"`
	Nim         NimConfig         `yaml:"nim" json:"nim" envPrefix:"NIM_"`
	ConnectFour ConnectFourConfig `yaml:"connect4" json:"connect4" envPrefix:"CONNECT4_"`
}

func Default() Config {
	return Config{
		Game:    Nim,
		Color:   true,
		Log:     LogConfig{Level: "warn"},
		Players: make([]PlayerConfig, playerCount),
		Nim:     NimConfig{Piles: 4},
		ConnectFour: ConnectFourConfig{
			Width:     7,
			Height:    7,
			Rotations: 4,
		},
	}
}

// New reads cfgPath on top of the defaults, then applies BOARDGAMES_*
// environment variables. A missing file leaves the defaults in place.
func New(cfgPath string) (Config, error) {
	cfg := Default()
	if err := decodeFile(cfgPath, &cfg); err != nil {
		return Config{}, err
	}
	for len(cfg.Players) < playerCount {
		cfg.Players = append(cfg.Players, PlayerConfig{})
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, errors.WithMessage(err, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeFile(cfgPath string, cfg *Config) error {
	file, err := os.Open(cfgPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.WithMessagef(err, "open config '%s'", cfgPath)
	}
	defer func() {
		_ = file.Close()
	}()
	switch strings.ToLower(filepath.Ext(cfgPath)) {
	case ".json":
		err = utils.DecodeJsonStrict(file, cfg)
	default:
		decoder := yaml.NewDecoder(file)
		decoder.KnownFields(true)
		err = decoder.Decode(cfg)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return errors.WithMessagef(err, "decode config '%s'", cfgPath)
	}
	return nil
}

func (c Config) Validate() error {
	allowed, ok := strategies[c.Game]
	if !ok {
		return errors.WithMessagef(domain.ErrInvalidConfig, "unknown game '%s'", c.Game)
	}
	if len(c.Players) != playerCount {
		return errors.WithMessagef(domain.ErrInvalidConfig, "expected %d players, got %d", playerCount, len(c.Players))
	}
	for i, p := range c.Players {
		if !contains(allowed, p.AI) {
			return errors.WithMessagef(domain.ErrInvalidConfig,
				"player %d: strategy '%s' is not available for %s", i+1, p.AI, c.Game)
		}
	}
	switch {
	case c.Nim.Piles < 1:
		return errors.WithMessagef(domain.ErrInvalidConfig, "nim.piles must be at least 1, got %d", c.Nim.Piles)
	case c.Nim.Cap < 0:
		return errors.WithMessagef(domain.ErrInvalidConfig, "nim.cap must not be negative, got %d", c.Nim.Cap)
	case c.ConnectFour.Width < 1 || c.ConnectFour.Height < 1:
		return errors.WithMessagef(domain.ErrInvalidConfig, "connect4 grid %dx%d is too small",
			c.ConnectFour.Width, c.ConnectFour.Height)
	case c.ConnectFour.Rotations < 0:
		return errors.WithMessagef(domain.ErrInvalidConfig,
			"connect4.rotations must not be negative, got %d", c.ConnectFour.Rotations)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
