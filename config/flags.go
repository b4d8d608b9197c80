package config

import "github.com/spf13/pflag"

// Flags holds command-line overrides. Only flags the user actually set are applied,
// so flag defaults never mask values from the file or the environment.
type Flags struct {
	fs         *pflag.FlagSet
	values     Config
	configPath string
}

// RegisterFlags adds the game flags to fs.
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	d := Default()
	f := &Flags{fs: fs}

	fs.StringVarP(&f.configPath, "config", "c", "", "path to a YAML config file")
	fs.IntVar(&f.values.Width, "width", d.Width, "grid width in cells")
	fs.IntVar(&f.values.Height, "height", d.Height, "grid height in cells")
	fs.IntVar(&f.values.TickRate, "tick-rate", d.TickRate, "ticks per second")
	fs.Uint64Var(&f.values.Seed, "seed", d.Seed, "random seed for food placement (0 = clock)")
	fs.StringVarP(&f.values.Frontend, "frontend", "f", d.Frontend, "frontend to run: gui or tui")
	fs.BoolVar(&f.values.Sound, "sound", d.Sound, "play sound effects")
	fs.IntVar(&f.values.CellSize, "cell-size", d.CellSize, "window pixels per cell (gui)")
	fs.StringVar(&f.values.LogLevel, "log-level", d.LogLevel, "debug, info, warn or error")
	fs.StringVar(&f.values.LogFile, "log-file", d.LogFile, "write logs to this file")
	return f
}

func (f *Flags) ConfigPath() string {
	return f.configPath
}

// Apply copies every changed flag into cfg.
func (f *Flags) Apply(cfg *Config) {
	if f.fs.Changed("width") {
		cfg.Width = f.values.Width
	}
	if f.fs.Changed("height") {
		cfg.Height = f.values.Height
	}
	if f.fs.Changed("tick-rate") {
		cfg.TickRate = f.values.TickRate
	}
	if f.fs.Changed("seed") {
		cfg.Seed = f.values.Seed
	}
	if f.fs.Changed("frontend") {
		cfg.Frontend = f.values.Frontend
	}
	if f.fs.Changed("sound") {
		cfg.Sound = f.values.Sound
	}
	if f.fs.Changed("cell-size") {
		cfg.CellSize = f.values.CellSize
	}
	if f.fs.Changed("log-level") {
		cfg.LogLevel = f.values.LogLevel
	}
	if f.fs.Changed("log-file") {
		cfg.LogFile = f.values.LogFile
	}
}
