package ui

import (
	"fmt"

	"gridsnake/game"
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
	headerHeight  = 40 // Score line above the grid
)

var (
	snakeColor = rl.Color{R: 0, G: 200, B: 0, A: 255}
	headColor  = rl.Color{R: 0, G: 255, B: 0, A: 255}
	foodColor  = rl.Red
	gridColor  = rl.Color{R: 30, G: 30, B: 30, A: 255}
)

type Renderer struct {
	cellSize        int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
	fontSize        int32
}

func NewRenderer(grid types.Grid, cellSize int) *Renderer {
	r := &Renderer{
		cellSize: int32(cellSize),
		offsetX:  borderPadding,
		offsetY:  borderPadding + headerHeight,
		fontSize: 20,
	}
	r.totalGridWidth = r.cellSize * int32(grid.Width)
	r.totalGridHeight = r.cellSize * int32(grid.Height)
	return r
}

// WindowSize is the window needed to show the whole grid plus the header.
func (r *Renderer) WindowSize() (int32, int32) {
	return r.totalGridWidth + borderPadding*2, r.totalGridHeight + headerHeight + borderPadding*2
}

func (r *Renderer) Draw(snap game.Snapshot) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	// Grid background
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, gridColor)

	if !snap.GameOver() {
		r.drawSnake(snap.Snake, snap.Direction)
		r.drawCell(snap.Food, foodColor)
	}

	r.drawHeader(snap)

	if snap.Paused() {
		r.drawBanner([]string{"Paused - press SPACE to continue"})
	}
	if snap.GameOver() {
		r.drawBanner([]string{
			fmt.Sprintf("Game over! (%s)", snap.Cause),
			"Press SPACE to restart",
			"Press ESC to quit",
		})
	}

	rl.EndDrawing()
}

func (r *Renderer) drawSnake(body []types.Point, direction types.Direction) {
	for i, p := range body {
		color := snakeColor
		if i == 0 {
			color = headColor
		}
		r.drawCell(p, color)
	}
	if len(body) > 0 {
		r.drawDirection(body[0], direction)
	}
}

func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	x := r.offsetX + int32(p.X)*r.cellSize
	y := r.offsetY + int32(p.Y)*r.cellSize
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
	rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, rl.White)
}

// drawDirection puts a small arrow on the head pointing where it moves.
func (r *Renderer) drawDirection(head types.Point, direction types.Direction) {
	headX := float32(r.offsetX + int32(head.X)*r.cellSize)
	headY := float32(r.offsetY + int32(head.Y)*r.cellSize)
	cell := float32(r.cellSize)
	half := cell / 2

	var a, b, c rl.Vector2
	switch direction {
	case types.Right:
		a = rl.Vector2{X: headX + cell, Y: headY + half}
		b = rl.Vector2{X: headX + half, Y: headY}
		c = rl.Vector2{X: headX + half, Y: headY + cell}
	case types.Left:
		a = rl.Vector2{X: headX, Y: headY + half}
		b = rl.Vector2{X: headX + half, Y: headY + cell}
		c = rl.Vector2{X: headX + half, Y: headY}
	case types.Down:
		a = rl.Vector2{X: headX + half, Y: headY + cell}
		b = rl.Vector2{X: headX + cell, Y: headY + half}
		c = rl.Vector2{X: headX, Y: headY + half}
	default:
		a = rl.Vector2{X: headX + half, Y: headY}
		b = rl.Vector2{X: headX, Y: headY + half}
		c = rl.Vector2{X: headX + cell, Y: headY + half}
	}
	// raylib expects counter-clockwise vertex order.
	rl.DrawTriangle(a, b, c, rl.Yellow)
}

func (r *Renderer) drawHeader(snap game.Snapshot) {
	y := int32(borderPadding)
	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), r.offsetX, y, r.fontSize, rl.White)
	rl.DrawText(fmt.Sprintf("Best: %d", snap.BestScore), r.offsetX+160, y, r.fontSize, rl.Green)
	rl.DrawText(fmt.Sprintf("Games: %d", snap.GamesPlayed), r.offsetX+300, y, r.fontSize, rl.Purple)
}

func (r *Renderer) drawBanner(lines []string) {
	lineHeight := r.fontSize + 20
	startY := r.offsetY + r.totalGridHeight/2 - int32(len(lines)-1)*lineHeight/2
	for i, line := range lines {
		textWidth := rl.MeasureText(line, r.fontSize)
		rl.DrawText(line,
			r.offsetX+(r.totalGridWidth-textWidth)/2,
			startY+int32(i)*lineHeight,
			r.fontSize, rl.White)
	}
}
