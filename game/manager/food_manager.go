package manager

import (
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// Occupied is anything that can tell whether a cell is taken.
type Occupied interface {
	Contains(p types.Point) bool
}

type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// Place samples uniformly over the whole grid until it hits a free cell.
// After Area() misses it picks uniformly among the remaining free cells, and
// it reports false when the grid is full.
func (fm *FoodManager) Place(occupied Occupied) (types.Point, bool) {
	for i := 0; i < fm.grid.Area(); i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}

		if occupied == nil || !occupied.Contains(food) {
			return food, true
		}
	}

	var free []types.Point
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			if p := (types.Point{X: x, Y: y}); !occupied.Contains(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}
