package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gridsnake/audio"
	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/logging"
	"gridsnake/tui"
	"gridsnake/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	// tuiLogFile receives logs when the terminal frontend owns stderr.
	tuiLogFile  = "gridsnake.log"
	soundVolume = 0.6
)

var (
	version = "0.3.0"
	flags   *config.Flags

	rootCmd = &cobra.Command{
		Use:           "gridsnake",
		Short:         "Classic single-player snake on a fixed grid",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg)
		},
	}

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig()
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of gridsnake",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gridsnake version %s\n", version)
		},
	}
)

func init() {
	flags = config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig layers defaults, the config file, the environment and flags.
func resolveConfig() (*config.Config, error) {
	cfg, err := config.Load(flags.ConfigPath())
	if err != nil {
		return nil, err
	}
	flags.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Frontend == config.FrontendTUI && cfg.LogFile == "" {
		cfg.LogFile = tuiLogFile
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	logger, closer, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	var sound *audio.System
	if cfg.Sound {
		sound, err = audio.New(soundVolume)
		if err != nil {
			logger.Warn("audio unavailable, continuing without sound", "error", err)
			sound = nil
		}
	}

	session, err := game.NewSession(cfg.Grid(),
		game.WithSeed(cfg.Seed),
		game.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	logger.Info("starting",
		"frontend", cfg.Frontend,
		"width", cfg.Width,
		"height", cfg.Height,
		"tick_rate", cfg.TickRate,
		"seed", cfg.Seed,
	)

	switch cfg.Frontend {
	case config.FrontendTUI:
		err = runTUI(ctx, session, cfg, sound, logger)
	default:
		err = ui.Run(ctx, session, ui.Options{
			Title:        "gridsnake",
			CellSize:     cfg.CellSize,
			TickInterval: cfg.TickInterval(),
			Sound:        sound,
			Logger:       logger,
		})
	}
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	stats := session.Stats()
	logger.Info("exiting",
		"games", stats.GamesPlayed(),
		"best", stats.BestScore(),
		"average", stats.AverageScore(),
	)
	return err
}

func runTUI(ctx context.Context, session *game.Session, cfg *config.Config, sound *audio.System, logger *slog.Logger) error {
	model := tui.New(session, tui.Options{
		TickInterval: cfg.TickInterval(),
		Sound:        sound,
		Logger:       logger,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
