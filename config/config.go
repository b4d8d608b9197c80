package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gridsnake/game/types"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

const (
	FrontendGUI = "gui" // raylib window
	FrontendTUI = "tui" // bubbletea terminal
)

// Config holds everything the drivers need to start a game.
type Config struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	TickRate int    `yaml:"tick_rate"` // ticks per second
	Seed     uint64 `yaml:"seed"`      // 0 seeds from the clock
	Frontend string `yaml:"frontend"`
	Sound    bool   `yaml:"sound"`
	CellSize int    `yaml:"cell_size"` // window pixels per cell
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// Default returns the configuration of the classic 800x600 board.
func Default() *Config {
	return &Config{
		Width:    types.DefaultWidth,
		Height:   types.DefaultHeight,
		TickRate: types.DefaultTPS,
		Frontend: FrontendGUI,
		Sound:    true,
		CellSize: 20,
		LogLevel: "info",
	}
}

// Load builds a config from defaults, an optional YAML file and the environment.
// A .env file in the working directory is read first when present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv("SNAKE_CONFIG")
	}
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the values present in a YAML file.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	var err error
	if c.Width, err = envInt("SNAKE_WIDTH", c.Width); err != nil {
		return err
	}
	if c.Height, err = envInt("SNAKE_HEIGHT", c.Height); err != nil {
		return err
	}
	if c.TickRate, err = envInt("SNAKE_TICK_RATE", c.TickRate); err != nil {
		return err
	}
	if c.CellSize, err = envInt("SNAKE_CELL_SIZE", c.CellSize); err != nil {
		return err
	}
	if c.Sound, err = envBool("SNAKE_SOUND", c.Sound); err != nil {
		return err
	}
	if v, ok := os.LookupEnv("SNAKE_SEED"); ok {
		seed, perr := strconv.ParseUint(v, 10, 64)
		if perr != nil {
			return fmt.Errorf("SNAKE_SEED must be an unsigned integer: %w", perr)
		}
		c.Seed = seed
	}
	c.Frontend = envStr("SNAKE_FRONTEND", c.Frontend)
	c.LogLevel = envStr("SNAKE_LOG_LEVEL", c.LogLevel)
	c.LogFile = envStr("SNAKE_LOG_FILE", c.LogFile)
	return nil
}

// Validate rejects values the game cannot start with.
func (c *Config) Validate() error {
	if c.Width < types.MinWidth {
		return fmt.Errorf("%w: width must be at least %d, got %d", ErrInvalidConfig, types.MinWidth, c.Width)
	}
	if c.Height < 1 {
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidConfig, c.Height)
	}
	if c.Width*c.Height < types.MinArea {
		return fmt.Errorf("%w: grid needs at least %d cells, got %dx%d", ErrInvalidConfig, types.MinArea, c.Width, c.Height)
	}
	if c.TickRate < 1 || c.TickRate > 120 {
		return fmt.Errorf("%w: tick rate must be between 1 and 120, got %d", ErrInvalidConfig, c.TickRate)
	}
	if c.CellSize < 4 {
		return fmt.Errorf("%w: cell size must be at least 4, got %d", ErrInvalidConfig, c.CellSize)
	}
	switch c.Frontend {
	case FrontendGUI, FrontendTUI:
	default:
		return fmt.Errorf("%w: unknown frontend %q", ErrInvalidConfig, c.Frontend)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// TickInterval is the wall-clock time between two ticks.
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Grid returns the board described by the config.
func (c *Config) Grid() types.Grid {
	return types.NewGrid(c.Width, c.Height)
}

func envStr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func envBool(key string, fallback bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}
