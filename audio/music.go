package audio

import (
	"fmt"
	"log"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Music loops one soundtrack forever with pause and volume control.
type Music struct {
	mu     sync.Mutex
	ctrl   *beep.Ctrl
	volume *effects.Volume
	level  float64
	source beep.StreamSeekCloser
	live   bool // attached to the speaker
}

// newMusic builds the loop chain without touching the output device.
func newMusic(s beep.StreamSeeker, format beep.Format, level float64) *Music {
	var out beep.Streamer = beep.Loop(-1, s)
	if format.SampleRate != sampleRate {
		out = beep.Resample(4, format.SampleRate, sampleRate, out)
	}

	m := &Music{ctrl: &beep.Ctrl{Streamer: out}}
	m.volume = &effects.Volume{Streamer: m.ctrl, Base: 2}
	m.applyLevel(level)
	return m
}

// Open decodes an MP3 file and starts it on the speaker.
func Open(path string, level float64) (*Music, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open soundtrack: %w", err)
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		streamer.Close()
		return nil, fmt.Errorf("failed to initialize speaker: %w", err)
	}

	m := newMusic(streamer, format, level)
	m.source = streamer
	m.live = true
	speaker.Play(m.volume)

	log.Printf("[Audio] Playing %s (%d Hz, %d ch)", path, format.SampleRate, format.NumChannels)
	return m, nil
}

func (m *Music) lock() {
	m.mu.Lock()
	if m.live {
		speaker.Lock()
	}
}

func (m *Music) unlock() {
	if m.live {
		speaker.Unlock()
	}
	m.mu.Unlock()
}

// Toggle flips between playing and paused and reports the new state.
func (m *Music) Toggle() (playing bool) {
	m.lock()
	defer m.unlock()
	m.ctrl.Paused = !m.ctrl.Paused
	return !m.ctrl.Paused
}

// SetPlaying pauses or resumes explicitly.
func (m *Music) SetPlaying(playing bool) {
	m.lock()
	defer m.unlock()
	m.ctrl.Paused = !playing
}

func (m *Music) Playing() bool {
	m.lock()
	defer m.unlock()
	return !m.ctrl.Paused
}

// SetVolume sets a linear level in [0, 1]; zero is silent.
func (m *Music) SetVolume(level float64) {
	m.lock()
	defer m.unlock()
	m.applyLevel(level)
}

func (m *Music) Volume() float64 {
	m.lock()
	defer m.unlock()
	return m.level
}

func (m *Music) applyLevel(level float64) {
	level = math.Max(0, math.Min(1, level))
	m.level = level
	if level == 0 {
		m.volume.Silent = true
		m.volume.Volume = 0
		return
	}
	m.volume.Silent = false
	m.volume.Volume = math.Log2(level)
}

// Close stops playback and releases the decoder.
func (m *Music) Close() error {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.live {
		speaker.Clear()
		speaker.Close()
		m.live = false
	}
	if m.source != nil {
		err := m.source.Close()
		m.source = nil
		return err
	}
	return nil
}
