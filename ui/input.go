package ui

import (
	"gridsnake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// keyCommands lists every key the window frontend reacts to.
var keyCommands = []struct {
	key int32
	cmd game.Command
}{
	{rl.KeyUp, game.CmdUp},
	{rl.KeyW, game.CmdUp},
	{rl.KeyDown, game.CmdDown},
	{rl.KeyS, game.CmdDown},
	{rl.KeyLeft, game.CmdLeft},
	{rl.KeyA, game.CmdLeft},
	{rl.KeyRight, game.CmdRight},
	{rl.KeyD, game.CmdRight},
	{rl.KeySpace, game.CmdConfirm},
	{rl.KeyEnter, game.CmdConfirm},
	{rl.KeyEscape, game.CmdQuit},
	{rl.KeyQ, game.CmdQuit},
}

// CommandForKey maps a raylib key code to a game command.
func CommandForKey(key int32) game.Command {
	for _, kc := range keyCommands {
		if kc.key == key {
			return kc.cmd
		}
	}
	return game.CmdNone
}

// PollCommands returns the commands for keys pressed since the last frame,
// in the order raylib queued them.
func PollCommands() []game.Command {
	var cmds []game.Command
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if cmd := CommandForKey(key); cmd != game.CmdNone {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}
