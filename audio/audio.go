package audio

import (
	"io"
	"time"

	"gridsnake/game"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundEat SoundKind = iota
	SoundGameOver
	SoundPause
	SoundRestart
)

// System plays procedurally generated effects. A nil *System is silent,
// which is how sound is switched off.
type System struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
}

// New opens the audio device. oto allows a single context per process.
func New(volume float64) (*System, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	return &System{ctx: ctx, ready: ready, volume: clampF(volume, 0, 1)}, nil
}

// Play starts kind in the background. Sounds requested before the device is
// ready are dropped.
func (s *System) Play(kind SoundKind) {
	if s == nil {
		return
	}
	select {
	case <-s.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := s.ctx.NewPlayer(reader)
		player.SetVolume(s.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// PlayTick plays the effect matching a tick outcome, if any.
func (s *System) PlayTick(res game.TickResult) {
	if kind, ok := SoundFor(res); ok {
		s.Play(kind)
	}
}

// SoundFor maps a tick outcome to its effect.
func SoundFor(res game.TickResult) (SoundKind, bool) {
	switch res {
	case game.TickAte:
		return SoundEat, true
	case game.TickCollided:
		return SoundGameOver, true
	default:
		return 0, false
	}
}

// PlayTransition plays the effect for a command-driven state change.
func (s *System) PlayTransition(from, to game.State) {
	if kind, ok := SoundForTransition(from, to); ok {
		s.Play(kind)
	}
}

// SoundForTransition maps a state change caused by a command to its effect.
func SoundForTransition(from, to game.State) (SoundKind, bool) {
	switch {
	case from == game.StateTerminal && to == game.StateActive:
		return SoundRestart, true
	case from == game.StateActive && to == game.StatePaused,
		from == game.StatePaused && to == game.StateActive:
		return SoundPause, true
	default:
		return 0, false
	}
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
