package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"gridsnake/audio"
	"gridsnake/game"
	"gridsnake/game/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	cellEmpty = "· "
	cellBody  = "██"
	cellFood  = "◆ "
)

var headGlyphs = map[types.Direction]string{
	types.Up:    "▲ ",
	types.Right: "▶ ",
	types.Down:  "▼ ",
	types.Left:  "◀ ",
}

type tickMsg time.Time

// Options configures the terminal frontend.
type Options struct {
	TickInterval time.Duration
	Sound        *audio.System
	Logger       *slog.Logger
}

// Model is the bubbletea model driving a game session in the terminal.
type Model struct {
	session  *game.Session
	keys     KeyMap
	help     help.Model
	interval time.Duration
	sound    *audio.System
	logger   *slog.Logger

	width  int
	height int
}

// New creates a terminal model for session.
func New(session *game.Session, opts Options) Model {
	interval := opts.TickInterval
	if interval <= 0 {
		interval = time.Second / types.DefaultTPS
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return Model{
		session:  session,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		interval: interval,
		sound:    opts.Sound,
		logger:   logger,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles ticks, key presses and terminal resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.sound.PlayTick(m.session.Tick())
		return m, m.tick()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		cmd := m.keys.Command(msg)
		if cmd == game.CmdNone {
			return m, nil
		}
		from := m.session.State()
		m.session.Apply(cmd)
		m.sound.PlayTransition(from, m.session.State())
		if m.session.QuitRequested() {
			m.logger.Debug("quit requested", "round", m.session.RoundID())
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

// View renders the header, board, banners and help.
func (m Model) View() string {
	snap := m.session.Snapshot()

	header := HeaderStyle.Render(fmt.Sprintf("Score: %d   Best: %d   Games: %d",
		snap.Score, snap.BestScore, snap.GamesPlayed))

	var status string
	switch snap.State {
	case game.StatePaused:
		status = BannerStyle.Render("PAUSED - press space to resume")
	case game.StateTerminal:
		status = GameOverStyle.Render(fmt.Sprintf("GAME OVER (%s) - space to restart, esc to quit", snap.Cause))
	default:
		status = " "
	}

	board := BoardStyle.Render(renderBoard(snap))
	helpView := HelpStyle.Render(m.help.View(m.keys))

	view := lipgloss.JoinVertical(lipgloss.Left, header, board, status, helpView)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// renderBoard draws the grid as text, two terminal columns per cell.
func renderBoard(snap game.Snapshot) string {
	body := make(map[types.Point]bool, len(snap.Snake))
	for _, p := range snap.Snake {
		body[p] = true
	}
	var head types.Point
	hasHead := len(snap.Snake) > 0
	if hasHead {
		head = snap.Snake[0]
	}

	var b strings.Builder
	for y := 0; y < snap.Grid.Height; y++ {
		for x := 0; x < snap.Grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			switch {
			case hasHead && p == head:
				b.WriteString(HeadStyle.Render(headGlyphs[snap.Direction]))
			case body[p]:
				b.WriteString(BodyStyle.Render(cellBody))
			case p == snap.Food && !snap.GameOver():
				b.WriteString(FoodStyle.Render(cellFood))
			default:
				b.WriteString(EmptyStyle.Render(cellEmpty))
			}
		}
		if y < snap.Grid.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
