package game

import (
	"testing"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, w, h int, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession(types.NewGrid(w, h), append([]Option{WithSeed(12345)}, opts...)...)
	require.NoError(t, err)
	return s
}

// placeSnake overrides body, heading and food for scenario tests.
func placeSnake(s *Session, dir types.Direction, food types.Point, cells ...types.Point) {
	s.snake = entity.NewSnake(cells...)
	s.direction = dir
	s.pending = dir
	s.food = food
}

func TestNewSessionInitialConfiguration(t *testing.T) {
	s := newTestSession(t, 10, 10)

	assert.Equal(t, []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, s.Snake())
	assert.Equal(t, types.Right, s.Direction())
	assert.Equal(t, 0, s.Score())
	assert.False(t, s.Paused())
	assert.False(t, s.GameOver())
	assert.Equal(t, StateActive, s.State())
	assert.NotEmpty(t, s.RoundID())
	assert.True(t, s.Grid().InBounds(s.Food()))
	assert.NotContains(t, s.Snake(), s.Food())
}

func TestNewSessionRejectsTinyGrid(t *testing.T) {
	_, err := NewSession(types.NewGrid(3, 10))
	assert.ErrorIs(t, err, ErrGridTooSmall)

	// one free cell: the first meal would fill the board
	_, err = NewSession(types.NewGrid(4, 1))
	assert.ErrorIs(t, err, ErrGridTooSmall)

	_, err = NewSession(types.NewGrid(5, 1))
	assert.NoError(t, err)
	_, err = NewSession(types.NewGrid(4, 2))
	assert.NoError(t, err)
}

func TestTickFillingBoardEndsRound(t *testing.T) {
	s := newTestSession(t, 5, 1)
	placeSnake(s, types.Right, types.Point{X: 4, Y: 0}, types.Point{X: 3, Y: 0}, types.Point{X: 2, Y: 0}, types.Point{X: 1, Y: 0}, types.Point{X: 0, Y: 0})

	assert.Equal(t, TickAte, s.Tick())
	assert.True(t, s.GameOver())
	assert.Equal(t, types.BoardFilled, s.Cause())
	assert.Equal(t, types.FoodReward, s.Score())
	assert.Len(t, s.Snake(), 5)
	assert.Equal(t, 1, s.Stats().GamesPlayed())
	assert.Equal(t, TickSkipped, s.Tick())

	assert.True(t, s.Restart())
	assert.Equal(t, StateActive, s.State())
}

func TestSmallestBoardPlaysToTheEnd(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		s, err := NewSession(types.NewGrid(5, 1), WithSeed(seed))
		require.NoError(t, err)

		for i := 0; i < 3 && !s.GameOver(); i++ {
			s.Tick()
		}
		assert.True(t, s.GameOver(), "seed %d", seed)
	}
}

func TestNewSessionPanicsOnNonPositiveGrid(t *testing.T) {
	assert.Panics(t, func() { _, _ = NewSession(types.Grid{Width: 0, Height: 5}) })
}

func TestTickEatsFood(t *testing.T) {
	s := newTestSession(t, 10, 10)
	placeSnake(s, types.Right, types.Point{X: 6, Y: 5}, types.Point{X: 5, Y: 5}, types.Point{X: 4, Y: 5}, types.Point{X: 3, Y: 5})

	res := s.Tick()

	assert.Equal(t, TickAte, res)
	assert.Equal(t, []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, s.Snake())
	assert.Equal(t, 10, s.Score())
	assert.NotContains(t, s.Snake(), s.Food())
	assert.True(t, s.Grid().InBounds(s.Food()))
}

func TestTickEatingGrowsByOne(t *testing.T) {
	s := newTestSession(t, 10, 10)
	placeSnake(s, types.Right, types.Point{X: 6, Y: 5}, types.Point{X: 5, Y: 5}, types.Point{X: 4, Y: 5}, types.Point{X: 3, Y: 5})
	before := len(s.Snake())

	s.Tick()

	assert.Len(t, s.Snake(), before+1)
	assert.Equal(t, types.Point{X: 6, Y: 5}, s.Snake()[0])
}

func TestTickPureShift(t *testing.T) {
	s := newTestSession(t, 10, 10)
	placeSnake(s, types.Down, types.Point{X: 0, Y: 0}, types.Point{X: 5, Y: 5}, types.Point{X: 5, Y: 4}, types.Point{X: 5, Y: 3})

	before := s.Snake()
	res := s.Tick()

	require.Equal(t, TickMoved, res)
	after := s.Snake()
	require.Len(t, after, len(before))

	// The new body is the old head moved down, followed by all but the old tail.
	assert.Equal(t, types.Point{X: 5, Y: 6}, after[0])
	assert.Equal(t, before[:len(before)-1], after[1:])
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, types.Point{X: 0, Y: 0}, s.Food())
}

func TestTickStraightLineShiftTranslatesEveryCell(t *testing.T) {
	s := newTestSession(t, 10, 10)
	placeSnake(s, types.Right, types.Point{X: 0, Y: 0}, types.Point{X: 5, Y: 5}, types.Point{X: 4, Y: 5}, types.Point{X: 3, Y: 5})

	before := s.Snake()
	s.Tick()

	want := make([]types.Point, len(before))
	for i, p := range before {
		want[i] = p.Add(types.Right.ToPoint())
	}
	assert.ElementsMatch(t, want, s.Snake())
}

func TestTickWallCollision(t *testing.T) {
	s := newTestSession(t, 10, 10)
	placeSnake(s, types.Left, types.Point{X: 9, Y: 9}, types.Point{X: 0, Y: 5}, types.Point{X: 1, Y: 5}, types.Point{X: 2, Y: 5})
	before := s.Snake()

	res := s.Tick()

	assert.Equal(t, TickCollided, res)
	assert.True(t, s.GameOver())
	assert.Equal(t, StateTerminal, s.State())
	assert.Equal(t, types.WallCollision, s.Cause())
	assert.Equal(t, before, s.Snake())
	assert.Equal(t, types.Point{X: 9, Y: 9}, s.Food())
	assert.Equal(t, 0, s.Score())
}

func TestTickSelfCollision(t *testing.T) {
	s := newTestSession(t, 10, 10)
	// Head at (5,5) heading up into its own body at (5,4).
	placeSnake(s, types.Up, types.Point{X: 0, Y: 0},
		types.Point{X: 5, Y: 5}, types.Point{X: 6, Y: 5}, types.Point{X: 6, Y: 4}, types.Point{X: 5, Y: 4}, types.Point{X: 4, Y: 4})
	before := s.Snake()

	assert.Equal(t, TickCollided, s.Tick())
	assert.Equal(t, types.SelfCollision, s.Cause())
	assert.Equal(t, before, s.Snake())
}

func TestTickIntoVacatingTailCollides(t *testing.T) {
	s := newTestSession(t, 10, 10)
	// A 2x2 loop: the head's next cell is the current tail.
	placeSnake(s, types.Up, types.Point{X: 0, Y: 0},
		types.Point{X: 5, Y: 5}, types.Point{X: 6, Y: 5}, types.Point{X: 6, Y: 4}, types.Point{X: 5, Y: 4})
	before := s.Snake()

	assert.Equal(t, TickCollided, s.Tick())
	assert.True(t, s.GameOver())
	assert.Equal(t, before, s.Snake())
}

func TestTickNoOpWhenTerminal(t *testing.T) {
	s := newTestSession(t, 10, 10)
	placeSnake(s, types.Left, types.Point{X: 9, Y: 9}, types.Point{X: 0, Y: 5}, types.Point{X: 1, Y: 5}, types.Point{X: 2, Y: 5})
	require.Equal(t, TickCollided, s.Tick())
	require.Equal(t, 1, s.Stats().GamesPlayed())

	before := s.Snapshot()
	assert.Equal(t, TickSkipped, s.Tick())
	assert.Equal(t, before, s.Snapshot())
	assert.Equal(t, 1, s.Stats().GamesPlayed())
}

func TestTickNoOpWhenPaused(t *testing.T) {
	s := newTestSession(t, 10, 10)
	require.True(t, s.TogglePause())
	before := s.Snapshot()

	for i := 0; i < 5; i++ {
		assert.Equal(t, TickSkipped, s.Tick())
	}
	assert.Equal(t, before, s.Snapshot())

	require.True(t, s.TogglePause())
	assert.NotEqual(t, TickSkipped, s.Tick())
}

func TestSetPendingDirectionRejectsReversal(t *testing.T) {
	s := newTestSession(t, 10, 10)

	assert.False(t, s.SetPendingDirection(types.Left))
	assert.Equal(t, types.Right, s.pending)

	assert.True(t, s.SetPendingDirection(types.Up))
	assert.Equal(t, types.Up, s.pending)
}

func TestSetPendingDirectionLastWriteWins(t *testing.T) {
	s := newTestSession(t, 10, 10)
	placeSnake(s, types.Right, types.Point{X: 0, Y: 0}, types.Point{X: 5, Y: 5}, types.Point{X: 4, Y: 5}, types.Point{X: 3, Y: 5})

	s.SetPendingDirection(types.Up)
	s.SetPendingDirection(types.Down)
	s.Tick()

	assert.Equal(t, types.Down, s.Direction())
	assert.Equal(t, types.Point{X: 5, Y: 6}, s.Snake()[0])
}

// Two turns within one tick cannot add up to a reversal: the check is made
// against the committed direction.
func TestSetPendingDirectionNoDoubleTurnReversal(t *testing.T) {
	s := newTestSession(t, 10, 10)
	placeSnake(s, types.Right, types.Point{X: 0, Y: 0}, types.Point{X: 5, Y: 5}, types.Point{X: 4, Y: 5}, types.Point{X: 3, Y: 5})

	assert.True(t, s.SetPendingDirection(types.Up))
	assert.False(t, s.SetPendingDirection(types.Left))
	assert.Equal(t, TickMoved, s.Tick())
	assert.Equal(t, types.Point{X: 5, Y: 4}, s.Snake()[0])
}

func TestSetPendingDirectionIgnoredWhenTerminal(t *testing.T) {
	s := newTestSession(t, 10, 10)
	placeSnake(s, types.Left, types.Point{X: 9, Y: 9}, types.Point{X: 0, Y: 5}, types.Point{X: 1, Y: 5}, types.Point{X: 2, Y: 5})
	s.Tick()

	assert.False(t, s.SetPendingDirection(types.Up))
	assert.Equal(t, types.Left, s.pending)
}

func TestTogglePauseIgnoredWhenTerminal(t *testing.T) {
	s := newTestSession(t, 10, 10)
	placeSnake(s, types.Left, types.Point{X: 9, Y: 9}, types.Point{X: 0, Y: 5}, types.Point{X: 1, Y: 5}, types.Point{X: 2, Y: 5})
	s.Tick()

	assert.False(t, s.TogglePause())
	assert.False(t, s.Paused())
}

func TestRestart(t *testing.T) {
	s := newTestSession(t, 10, 10)
	assert.False(t, s.Restart(), "restart is only accepted after game over")

	placeSnake(s, types.Up, types.Point{X: 5, Y: 1}, types.Point{X: 5, Y: 2}, types.Point{X: 5, Y: 3}, types.Point{X: 5, Y: 4})
	require.Equal(t, TickAte, s.Tick())
	s.food = types.Point{X: 9, Y: 9}
	require.Equal(t, TickMoved, s.Tick())
	require.Equal(t, TickCollided, s.Tick())
	firstRound := s.RoundID()

	require.True(t, s.Restart())

	assert.Len(t, s.Snake(), 3)
	assert.Equal(t, []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, s.Snake())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, types.Right, s.Direction())
	assert.False(t, s.GameOver())
	assert.False(t, s.Paused())
	assert.Equal(t, StateActive, s.State())
	assert.NotEqual(t, firstRound, s.RoundID())
	assert.NotContains(t, s.Snake(), s.Food())

	records := s.Stats().Records()
	require.Len(t, records, 1)
	assert.Equal(t, firstRound, records[0].ID)
	assert.Equal(t, 10, records[0].Score)
	assert.Equal(t, 4, records[0].Length)
	assert.Equal(t, types.WallCollision, records[0].Cause)
}

func TestRoundDurationUsesClock(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	s := newTestSession(t, 10, 10, WithClock(clock))

	placeSnake(s, types.Left, types.Point{X: 9, Y: 9}, types.Point{X: 0, Y: 5}, types.Point{X: 1, Y: 5}, types.Point{X: 2, Y: 5})
	now = now.Add(90 * time.Second)
	s.Tick()

	records := s.Stats().Records()
	require.Len(t, records, 1)
	assert.Equal(t, 90*time.Second, records[0].Duration())
}

func TestSharedStatsSurviveSessions(t *testing.T) {
	stats := manager.NewStatsManager()
	for i := 0; i < 2; i++ {
		s := newTestSession(t, 10, 10, WithStats(stats))
		placeSnake(s, types.Left, types.Point{X: 9, Y: 9}, types.Point{X: 0, Y: 5}, types.Point{X: 1, Y: 5}, types.Point{X: 2, Y: 5})
		s.Tick()
	}
	assert.Equal(t, 2, stats.GamesPlayed())
}

func TestSameSeedSameGame(t *testing.T) {
	a := newTestSession(t, 20, 20)
	b := newTestSession(t, 20, 20)

	moves := []types.Direction{types.Up, types.Left, types.Down, types.Right}
	for i := 0; i < 60; i++ {
		if i%7 == 0 {
			a.SetPendingDirection(moves[(i/7)%len(moves)])
			b.SetPendingDirection(moves[(i/7)%len(moves)])
		}
		assert.Equal(t, a.Tick(), b.Tick())
	}
	assert.Equal(t, a.Snake(), b.Snake())
	assert.Equal(t, a.Food(), b.Food())
	assert.Equal(t, a.Score(), b.Score())
}

func TestSnakeAccessorReturnsCopy(t *testing.T) {
	s := newTestSession(t, 10, 10)
	cells := s.Snake()
	cells[0] = types.Point{X: -5, Y: -5}
	assert.Equal(t, types.Point{X: 5, Y: 5}, s.Snake()[0])
}
