package game

import "gridsnake/game/types"

// Snapshot is a read-only copy of everything a renderer draws.
type Snapshot struct {
	RoundID     string
	Grid        types.Grid
	Snake       []types.Point
	Direction   types.Direction
	Food        types.Point
	Score       int
	BestScore   int
	GamesPlayed int
	State       State
	Cause       types.CollisionType
}

func (s *Session) Snapshot() Snapshot {
	best := s.stats.BestScore()
	if s.score > best {
		best = s.score
	}
	return Snapshot{
		RoundID:     s.roundID,
		Grid:        s.grid,
		Snake:       s.snake.Cells(),
		Direction:   s.direction,
		Food:        s.food,
		Score:       s.score,
		BestScore:   best,
		GamesPlayed: s.stats.GamesPlayed(),
		State:       s.State(),
		Cause:       s.lastCause,
	}
}

// Paused and GameOver mirror the session flags for renderers.
func (sn Snapshot) Paused() bool   { return sn.State == StatePaused }
func (sn Snapshot) GameOver() bool { return sn.State == StateTerminal }
