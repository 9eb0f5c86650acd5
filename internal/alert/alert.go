// Package alert plays the audible signal when a session expires.
package alert

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"pomodoro/internal/core/session"
)

const sampleRate = beep.SampleRate(44100)

// Config controls alert playback.
type Config struct {
	Enabled bool
	// Volume is a base-2 exponent: 0 is unchanged, -1 is half, 1 is double.
	Volume float64
}

// Tone is a single sine segment of an alert.
type Tone struct {
	Frequency float64
	Length    time.Duration
}

// Melody returns the tones played when a session of kind ended ends.
// Focus ending rises, break ending falls.
func Melody(ended session.Kind) []Tone {
	if ended == session.KindFocusing {
		return []Tone{{Frequency: 660, Length: 180 * time.Millisecond}, {Frequency: 880, Length: 320 * time.Millisecond}}
	}
	return []Tone{{Frequency: 880, Length: 180 * time.Millisecond}, {Frequency: 660, Length: 320 * time.Millisecond}}
}

// Player is a timekeeper.Notifier backed by the system speaker.
type Player struct {
	mu      sync.Mutex
	config  Config
	once    sync.Once
	initErr error
	play    func(beep.Streamer) error
}

// NewPlayer creates a Player. The speaker is initialised lazily on the first
// alert so that machines without audio only fail when an alert is due.
func NewPlayer(config Config) *Player {
	player := &Player{config: config}
	player.play = player.playSpeaker
	return player
}

// UpdateConfig replaces playback settings.
func (player *Player) UpdateConfig(config Config) {
	player.mu.Lock()
	player.config = config
	player.mu.Unlock()
}

// Notify plays the melody for alert. It returns without waiting for playback.
func (player *Player) Notify(alert session.Alert) error {
	player.mu.Lock()
	config := player.config
	player.mu.Unlock()
	if !config.Enabled {
		return nil
	}

	streamer := &effects.Volume{
		Streamer: Streamer(Melody(alert.Ended)),
		Base:     2,
		Volume:   config.Volume,
	}
	return player.play(streamer)
}

func (player *Player) playSpeaker(streamer beep.Streamer) error {
	player.once.Do(func() {
		player.initErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})
	if player.initErr != nil {
		return fmt.Errorf("init speaker: %w", player.initErr)
	}
	speaker.Play(streamer)
	return nil
}

// Streamer renders tones back to back as a finite stereo stream.
func Streamer(tones []Tone) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, tone := range tones {
		parts = append(parts, beep.Take(sampleRate.N(tone.Length), sine(tone.Frequency)))
	}
	return beep.Seq(parts...)
}

func sine(frequency float64) beep.Streamer {
	position := 0
	step := 2 * math.Pi * frequency / float64(sampleRate)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			value := 0.4 * math.Sin(step*float64(position))
			samples[i][0] = value
			samples[i][1] = value
			position++
		}
		return len(samples), true
	})
}
