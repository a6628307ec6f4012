package systems

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"wavebreaker/event"
)

const audioSampleRate = beep.SampleRate(44100)

// AudioSystem plays synthesized cue tones for gameplay notifications
// Initialization failure is non-fatal: the system stays registered and
// silently drops cues
type AudioSystem struct {
	ready bool
}

// NewAudioSystem creates the cue player
// With enable false (tests, headless) the speaker is never initialized
func NewAudioSystem(enable bool) *AudioSystem {
	s := &AudioSystem{}
	if !enable {
		return s
	}
	if err := speaker.Init(audioSampleRate, audioSampleRate.N(time.Second/10)); err != nil {
		log.Printf("audio: init failed, running silent: %v", err)
		return s
	}
	s.ready = true
	return s
}

// EventTypes returns the notifications the cue player reacts to
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEnemySpawned,
		event.EventEnemyKilled,
		event.EventWaveStarted,
		event.EventWaveCleared,
		event.EventPlayerDied,
		event.EventVictory,
	}
}

// HandleEvent maps a notification to its cue tone
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventEnemySpawned:
		s.playTone(220, 30*time.Millisecond)
	case event.EventEnemyKilled:
		s.playTone(880, 50*time.Millisecond)
	case event.EventWaveStarted:
		s.playTone(440, 120*time.Millisecond)
	case event.EventWaveCleared:
		s.playTone(660, 120*time.Millisecond)
	case event.EventPlayerDied:
		s.playTone(110, 400*time.Millisecond)
	case event.EventVictory:
		s.playTone(990, 300*time.Millisecond)
	}
}

// playTone plays a sine burst at the given frequency
func (s *AudioSystem) playTone(freq float64, d time.Duration) {
	if !s.ready {
		return
	}
	sine, err := generators.SineTone(audioSampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(audioSampleRate.N(d), sine))
}
