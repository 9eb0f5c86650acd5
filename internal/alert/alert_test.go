package alert

import (
	"errors"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/session"
)

func countSamples(streamer beep.Streamer) (int, float64) {
	buffer := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := streamer.Stream(buffer)
		for _, sample := range buffer[:n] {
			if sample[0] > peak {
				peak = sample[0]
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestStreamerLength(t *testing.T) {
	tones := []Tone{{Frequency: 440, Length: 100 * time.Millisecond}, {Frequency: 880, Length: 50 * time.Millisecond}}

	total, peak := countSamples(Streamer(tones))
	assert.Equal(t, sampleRate.N(100*time.Millisecond)+sampleRate.N(50*time.Millisecond), total)
	assert.InDelta(t, 0.4, peak, 0.01)
}

func TestMelodyDiffersPerKind(t *testing.T) {
	focus := Melody(session.KindFocusing)
	rest := Melody(session.KindOnBreak)

	require.Len(t, focus, 2)
	require.Len(t, rest, 2)
	assert.Less(t, focus[0].Frequency, focus[1].Frequency)
	assert.Greater(t, rest[0].Frequency, rest[1].Frequency)
}

func TestNotifySkipsWhenDisabled(t *testing.T) {
	player := NewPlayer(Config{Enabled: false})
	played := 0
	player.play = func(beep.Streamer) error {
		played++
		return nil
	}

	require.NoError(t, player.Notify(session.Alert{Ended: session.KindFocusing, Next: session.KindOnBreak}))
	assert.Equal(t, 0, played)

	player.UpdateConfig(Config{Enabled: true})
	require.NoError(t, player.Notify(session.Alert{Ended: session.KindOnBreak, Next: session.KindFocusing}))
	assert.Equal(t, 1, played)
}

func TestNotifyReturnsPlaybackError(t *testing.T) {
	player := NewPlayer(Config{Enabled: true})
	player.play = func(beep.Streamer) error {
		return errors.New("no device")
	}

	err := player.Notify(session.Alert{Ended: session.KindFocusing, Next: session.KindOnBreak})
	assert.EqualError(t, err, "no device")
}
