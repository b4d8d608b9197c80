package game

import "gridsnake/game/types"

// Command is a driver intent decoded from raw input.
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdConfirm // pause while playing, restart after game over
	CmdQuit
)

// Apply routes a command to the matching handler.
func (s *Session) Apply(cmd Command) {
	switch cmd {
	case CmdUp:
		s.SetPendingDirection(types.Up)
	case CmdDown:
		s.SetPendingDirection(types.Down)
	case CmdLeft:
		s.SetPendingDirection(types.Left)
	case CmdRight:
		s.SetPendingDirection(types.Right)
	case CmdConfirm:
		if s.gameOver {
			s.Restart()
		} else {
			s.TogglePause()
		}
	case CmdQuit:
		s.RequestQuit()
	}
}
