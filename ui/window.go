package ui

import (
	"context"
	"log/slog"
	"time"

	"gridsnake/audio"
	"gridsnake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Options configures the window frontend.
type Options struct {
	Title        string
	CellSize     int
	TickInterval time.Duration
	Sound        *audio.System
	Logger       *slog.Logger
}

// Run opens a window and drives the session until the player quits, the window
// is closed or ctx is cancelled.
func Run(ctx context.Context, session *game.Session, opts Options) error {
	renderer := NewRenderer(session.Grid(), opts.CellSize)
	w, h := renderer.WindowSize()

	rl.InitWindow(w, h, opts.Title)
	defer rl.CloseWindow()
	rl.SetExitKey(rl.KeyNull) // ESC goes through the quit command instead
	rl.SetTargetFPS(60)

	if opts.Logger != nil {
		opts.Logger.Info("window opened", "width", w, "height", h, "tick", opts.TickInterval.String())
	}

	lastUpdate := time.Now()
	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		for _, cmd := range PollCommands() {
			from := session.State()
			session.Apply(cmd)
			opts.Sound.PlayTransition(from, session.State())
		}
		if session.QuitRequested() {
			break
		}

		// Update game state at fixed interval
		if time.Since(lastUpdate) >= opts.TickInterval {
			opts.Sound.PlayTick(session.Tick())
			lastUpdate = time.Now()
		}

		renderer.Draw(session.Snapshot())
	}
	return nil
}
