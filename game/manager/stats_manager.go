package manager

import (
	"sort"
	"sync"
	"time"

	"gridsnake/game/types"
)

// RoundRecord describes one finished round.
type RoundRecord struct {
	ID        string              `json:"id"`
	Score     int                 `json:"score"`
	Length    int                 `json:"length"`
	Cause     types.CollisionType `json:"cause"`
	StartTime time.Time           `json:"startTime"`
	EndTime   time.Time           `json:"endTime"`
}

// Duration is how long the round lasted.
func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StatsManager keeps the rounds played during this process. Nothing is written to disk.
type StatsManager struct {
	mutex   sync.RWMutex
	records []RoundRecord
}

func NewStatsManager() *StatsManager {
	return &StatsManager{
		records: make([]RoundRecord, 0),
	}
}

func (sm *StatsManager) Record(r RoundRecord) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()
	sm.records = append(sm.records, r)
}

// Records returns the finished rounds, oldest first.
func (sm *StatsManager) Records() []RoundRecord {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	out := make([]RoundRecord, len(sm.records))
	copy(out, sm.records)
	return out
}

func (sm *StatsManager) GamesPlayed() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return len(sm.records)
}

func (sm *StatsManager) BestScore() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	best := 0
	for _, r := range sm.records {
		if r.Score > best {
			best = r.Score
		}
	}
	return best
}

func (sm *StatsManager) AverageScore() float64 {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if len(sm.records) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.records {
		total += r.Score
	}
	return float64(total) / float64(len(sm.records))
}

func (sm *StatsManager) MedianScore() float64 {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if len(sm.records) == 0 {
		return 0
	}
	scores := make([]int, len(sm.records))
	for i, r := range sm.records {
		scores[i] = r.Score
	}
	sort.Ints(scores)

	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

func (sm *StatsManager) AverageDuration() time.Duration {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if len(sm.records) == 0 {
		return 0
	}
	var total time.Duration
	for _, r := range sm.records {
		total += r.Duration()
	}
	return total / time.Duration(len(sm.records))
}
