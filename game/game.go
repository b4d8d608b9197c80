package game

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// ErrGridTooSmall is returned when the starting snake does not fit on the grid.
var ErrGridTooSmall = errors.New("grid too small for the starting snake")

// State is the session-level state machine position.
type State int

const (
	StateActive State = iota
	StatePaused
	StateTerminal
)

func (s State) String() string {
	switch s {
	case StatePaused:
		return "paused"
	case StateTerminal:
		return "terminal"
	default:
		return "active"
	}
}

// TickResult tells the driver what a tick did.
type TickResult int

const (
	TickSkipped TickResult = iota // paused or terminal, nothing changed
	TickMoved
	TickAte
	TickCollided
)

func (r TickResult) String() string {
	switch r {
	case TickMoved:
		return "moved"
	case TickAte:
		return "ate"
	case TickCollided:
		return "collided"
	default:
		return "skipped"
	}
}

// Session is one running game. It is not safe for concurrent use: the driver
// loop mutates it and renders from it on the same goroutine.
type Session struct {
	grid         types.Grid
	snake        *entity.Snake
	direction    types.Direction
	pending      types.Direction
	food         types.Point
	score        int
	gameOver     bool
	paused       bool
	quit         bool
	lastCause    types.CollisionType
	roundID      string
	startTime    time.Time
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stats        *manager.StatsManager
	logger       *slog.Logger
	now          func() time.Time
}

// Option configures a Session.
type Option func(*sessionOptions)

type sessionOptions struct {
	rng    *rand.Rand
	logger *slog.Logger
	stats  *manager.StatsManager
	now    func() time.Time
}

// WithRand sets the random source used for food placement.
func WithRand(rng *rand.Rand) Option {
	return func(o *sessionOptions) { o.rng = rng }
}

// WithSeed seeds food placement. Zero picks a seed from the clock.
func WithSeed(seed uint64) Option {
	return func(o *sessionOptions) {
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		o.rng = rand.New(rand.NewSource(seed))
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *sessionOptions) { o.logger = logger }
}

// WithStats shares a statistics manager, so history can outlive the session.
func WithStats(stats *manager.StatsManager) Option {
	return func(o *sessionOptions) { o.stats = stats }
}

func WithClock(now func() time.Time) Option {
	return func(o *sessionOptions) { o.now = now }
}

// NewSession creates a session in its fresh-start configuration.
func NewSession(grid types.Grid, opts ...Option) (*Session, error) {
	if grid.Width <= 0 || grid.Height <= 0 {
		panic(fmt.Sprintf("game: invalid grid dimensions %dx%d", grid.Width, grid.Height))
	}
	if grid.Width < types.MinWidth || grid.Area() < types.MinArea {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridTooSmall, grid.Width, grid.Height)
	}

	o := sessionOptions{}
	WithSeed(0)(&o)
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.stats == nil {
		o.stats = manager.NewStatsManager()
	}
	if o.now == nil {
		o.now = time.Now
	}

	s := &Session{
		grid:         grid,
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      manager.NewFoodManager(grid, o.rng),
		stats:        o.stats,
		logger:       o.logger,
		now:          o.now,
	}
	s.reset()
	return s, nil
}

// reset puts the session back into its fresh-start configuration.
func (s *Session) reset() {
	cx, cy := s.grid.Width/2, s.grid.Height/2
	cells := make([]types.Point, types.InitialLength)
	for i := range cells {
		cells[i] = types.Point{X: cx - i, Y: cy}
	}
	s.snake = entity.NewSnake(cells...)
	s.direction = types.Right
	s.pending = types.Right
	s.score = 0
	s.gameOver = false
	s.paused = false
	s.lastCause = types.NoCollision
	// MinArea guarantees a free cell for the first food.
	s.food, _ = s.foodMgr.Place(s.snake)
	s.roundID = uuid.New().String()
	s.startTime = s.now()

	s.logger.Debug("round started", "round", s.roundID, "food", s.food.String())
}

// Tick advances the game by one movement step.
func (s *Session) Tick() TickResult {
	if s.gameOver || s.paused {
		return TickSkipped
	}

	s.direction = s.pending
	newHead := s.snake.GetHead().Add(s.direction.ToPoint())

	if cause := s.collisionMgr.CheckCollision(newHead, s.snake); cause != types.NoCollision {
		s.gameOver = true
		s.lastCause = cause
		s.finishRound(cause)
		return TickCollided
	}

	s.snake.Move(newHead)

	if newHead == s.food {
		s.score += types.FoodReward
		food, ok := s.foodMgr.Place(s.snake)
		if !ok {
			s.gameOver = true
			s.lastCause = types.BoardFilled
			s.finishRound(types.BoardFilled)
			return TickAte
		}
		s.food = food
		return TickAte
	}

	s.snake.RemoveTail()
	return TickMoved
}

func (s *Session) finishRound(cause types.CollisionType) {
	record := manager.RoundRecord{
		ID:        s.roundID,
		Score:     s.score,
		Length:    s.snake.Len(),
		Cause:     cause,
		StartTime: s.startTime,
		EndTime:   s.now(),
	}
	s.stats.Record(record)

	s.logger.Info("round over",
		"round", record.ID,
		"score", record.Score,
		"length", record.Length,
		"cause", cause.String(),
		"duration", record.Duration().String())
}

// SetPendingDirection queues d for the next tick. It is ignored once the game is
// over and when d would reverse the current heading.
func (s *Session) SetPendingDirection(d types.Direction) bool {
	if s.gameOver {
		return false
	}
	if d == s.direction.Opposite() {
		s.logger.Debug("reversal ignored", "current", s.direction.String(), "requested", d.String())
		return false
	}
	s.pending = d
	return true
}

// TogglePause flips the paused flag while the game is running.
func (s *Session) TogglePause() bool {
	if s.gameOver {
		return false
	}
	s.paused = !s.paused
	s.logger.Debug("pause toggled", "paused", s.paused)
	return true
}

// Restart starts a new round. Only valid after game over.
func (s *Session) Restart() bool {
	if !s.gameOver {
		return false
	}
	s.reset()
	return true
}

// RequestQuit asks the driver to stop its loop. Game state is untouched.
func (s *Session) RequestQuit() {
	s.quit = true
}

func (s *Session) QuitRequested() bool {
	return s.quit
}

func (s *Session) Grid() types.Grid {
	return s.grid
}

// Snake returns the body cells, head first.
func (s *Session) Snake() []types.Point {
	return s.snake.Cells()
}

func (s *Session) Food() types.Point {
	return s.food
}

func (s *Session) Score() int {
	return s.score
}

func (s *Session) Paused() bool {
	return s.paused
}

func (s *Session) GameOver() bool {
	return s.gameOver
}

func (s *Session) Direction() types.Direction {
	return s.direction
}

// Cause is the collision that ended the round, NoCollision while playing.
func (s *Session) Cause() types.CollisionType {
	return s.lastCause
}

func (s *Session) RoundID() string {
	return s.roundID
}

func (s *Session) Stats() *manager.StatsManager {
	return s.stats
}

func (s *Session) State() State {
	switch {
	case s.gameOver:
		return StateTerminal
	case s.paused:
		return StatePaused
	default:
		return StateActive
	}
}
