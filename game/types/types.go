package types

import "fmt"

// Point is a single grid cell: X is the column, Y the row.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// NewGrid builds a grid. Non-positive dimensions are a programming error and panic.
func NewGrid(width, height int) Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("types: invalid grid dimensions %dx%d", width, height))
	}
	return Grid{Width: width, Height: height}
}

// InBounds reports whether p lies inside the grid.
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Area is the number of cells on the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Game constants
const (
	FoodReward    = 10 // Score gained per food eaten
	InitialLength = 3  // Snake length at round start
	MinWidth      = 4  // Narrowest grid the starting snake fits on
	DefaultWidth  = 40 // 800px window / 20px cells
	DefaultHeight = 30 // 600px window / 20px cells
	DefaultTPS    = 10 // Ticks per second
)

// MinArea is the smallest board that holds the starting snake, its food and one free move.
const MinArea = InitialLength + 2

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	BoardFilled // not a collision: the snake covers every cell
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case BoardFilled:
		return "board filled"
	default:
		return "none"
	}
}
