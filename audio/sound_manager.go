// Package audio plays short synthesized cues for pick-up and drop results
package audio

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/robot-snack/catalog"
	"github.com/lixenwraith/robot-snack/game"
)

const (
	sampleRate = beep.SampleRate(48000)

	pickUpFreq = 660
	chimeLow   = 523.25 // C5
	chimeHigh  = 783.99 // G5
	buzzFreq   = 120
)

// SoundManager manages all game audio
// Every Play method is a no-op until Initialize succeeds or while disabled
type SoundManager struct {
	mu          sync.Mutex
	initialized bool
	enabled     atomic.Bool
}

// NewSoundManager creates a new sound manager, enabled by default
func NewSoundManager() *SoundManager {
	sm := &SoundManager{}
	sm.enabled.Store(true)
	return sm
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Enabled reports whether cues are played
func (sm *SoundManager) Enabled() bool {
	return sm.enabled.Load()
}

// SetEnabled turns cues on or off without touching the device
func (sm *SoundManager) SetEnabled(on bool) {
	sm.enabled.Store(on)
}

// Toggle flips the enabled flag and returns the new value
func (sm *SoundManager) Toggle() bool {
	for {
		cur := sm.enabled.Load()
		if sm.enabled.CompareAndSwap(cur, !cur) {
			return !cur
		}
	}
}

// PickedUp plays the pick-up blip
func (sm *SoundManager) PickedUp(catalog.Item) {
	sm.PlayPickUp()
}

// Dropped plays the cue matching a drop result
func (sm *SoundManager) Dropped(out game.Outcome) {
	switch {
	case !out.Hit:
		sm.PlayMiss()
	case out.Item.IsBeneficial:
		sm.PlayGood()
	default:
		sm.PlayBad()
	}
}

// PlayPickUp plays a short high blip
func (sm *SoundManager) PlayPickUp() {
	sm.play(func() beep.Streamer {
		return tone(pickUpFreq, 60*time.Millisecond)
	})
}

// PlayGood plays a rising two-note chime
func (sm *SoundManager) PlayGood() {
	sm.play(func() beep.Streamer {
		return beep.Seq(
			tone(chimeLow, 90*time.Millisecond),
			tone(chimeHigh, 160*time.Millisecond),
		)
	})
}

// PlayBad plays a low harsh buzz
func (sm *SoundManager) PlayBad() {
	sm.play(func() beep.Streamer {
		return beep.Take(sampleRate.N(time.Millisecond*200), NewBuzzGenerator(sampleRate, buzzFreq))
	})
}

// PlayMiss plays a dull thud
func (sm *SoundManager) PlayMiss() {
	sm.play(func() beep.Streamer {
		return beep.Take(sampleRate.N(time.Millisecond*250), NewThudGenerator(sampleRate))
	})
}

func (sm *SoundManager) play(build func() beep.Streamer) {
	if !sm.enabled.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Play(build())
}

// tone returns a quiet sine of the given length
func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(d), sine),
		Base:     2,
		Volume:   -2,
	}
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus two harmonics
		sample := 0.3*math.Sin(2*math.Pi*g.freq*t) +
			0.15*math.Sin(2*math.Pi*g.freq*2*t) +
			0.075*math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms fade in
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// ThudGenerator generates a falling low tone with fast decay
type ThudGenerator struct {
	sr    beep.SampleRate
	pos   int
	phase float64
}

// NewThudGenerator creates a thud sound generator
func NewThudGenerator(sr beep.SampleRate) *ThudGenerator {
	return &ThudGenerator{sr: sr}
}

func (g *ThudGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Pitch drops from 160Hz towards 50Hz
		freq := 50 + 110*math.Exp(-t*12)
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		sample := 0.35 * math.Exp(-t*10) * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThudGenerator) Err() error {
	return nil
}
