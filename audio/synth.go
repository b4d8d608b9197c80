package audio

import (
	"encoding/binary"
	"math"
)

// tone is one voice of an effect: a wave gliding from one pitch to another.
type tone struct {
	start  float64 // seconds
	length float64 // seconds
	from   float64 // Hz
	to     float64 // Hz
	wave   func(phase float64) float64
	gain   float64
}

func triangle(phase float64) float64 {
	f := phase - math.Floor(phase)
	return 1 - 4*math.Abs(f-0.5)
}

func square(phase float64) float64 {
	if phase-math.Floor(phase) < 0.5 {
		return 1
	}
	return -1
}

// envelope ramps up over attack and down over release, both fractions of the voice length.
func envelope(p, attack, release float64) float64 {
	switch {
	case p < attack:
		return p / attack
	case p > 1-release:
		return (1 - p) / release
	default:
		return 1
	}
}

// render mixes tones into stereo float32 LE frames, squashed into [-1,1] with tanh.
func render(tones ...tone) []byte {
	var total float64
	for _, tn := range tones {
		total = math.Max(total, tn.start+tn.length)
	}
	n := int(total * SampleRate)
	mix := make([]float64, n)

	for _, tn := range tones {
		start := int(tn.start * SampleRate)
		count := int(tn.length * SampleRate)
		phase := 0.0
		for i := 0; i < count && start+i < n; i++ {
			p := float64(i) / float64(count)
			phase += (tn.from + (tn.to-tn.from)*p) / SampleRate
			mix[start+i] += tn.wave(phase) * envelope(p, 0.05, 0.4) * tn.gain
		}
	}

	buf := make([]byte, n*ChannelCount*4)
	for i, s := range mix {
		bits := math.Float32bits(float32(math.Tanh(s)))
		for c := 0; c < ChannelCount; c++ {
			binary.LittleEndian.PutUint32(buf[(i*ChannelCount+c)*4:], bits)
		}
	}
	return buf
}

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundEat:
		// two-step chomp, C5 then a G5 slide up
		return render(
			tone{start: 0, length: 0.045, from: 523, to: 523, wave: triangle, gain: 0.6},
			tone{start: 0.04, length: 0.06, from: 784, to: 880, wave: triangle, gain: 0.6},
		)
	case SoundGameOver:
		// falling buzz with a soft octave below
		return render(
			tone{start: 0, length: 0.55, from: 392, to: 98, wave: square, gain: 0.2},
			tone{start: 0, length: 0.6, from: 196, to: 49, wave: triangle, gain: 0.4},
		)
	case SoundPause:
		return render(tone{start: 0, length: 0.06, from: 660, to: 660, wave: triangle, gain: 0.5})
	case SoundRestart:
		return render(tone{start: 0, length: 0.12, from: 440, to: 880, wave: triangle, gain: 0.5})
	}
	return nil
}
