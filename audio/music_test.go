package audio

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep"
)

func testTrack(rate beep.SampleRate) (beep.StreamSeeker, beep.Format) {
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(format)
	buf.Append(beep.Silence(1000))
	return buf.Streamer(0, buf.Len()), format
}

func TestMusicToggle(t *testing.T) {
	s, format := testTrack(sampleRate)
	m := newMusic(s, format, 0.5)

	if !m.Playing() {
		t.Fatal("new music is paused")
	}
	if m.Toggle() {
		t.Error("first toggle did not pause")
	}
	if !m.Toggle() {
		t.Error("second toggle did not resume")
	}
	m.SetPlaying(false)
	if m.Playing() {
		t.Error("SetPlaying(false) left it playing")
	}
}

func TestMusicLoops(t *testing.T) {
	s, format := testTrack(sampleRate)
	m := newMusic(s, format, 1)

	// stream well past the 1000-sample track
	samples := make([][2]float64, 512)
	for i := 0; i < 10; i++ {
		n, ok := m.volume.Stream(samples)
		if !ok || n != len(samples) {
			t.Fatalf("chunk %d: n=%d ok=%v, loop ended", i, n, ok)
		}
	}
}

func TestMusicResamples(t *testing.T) {
	s, format := testTrack(22050)
	m := newMusic(s, format, 1)

	samples := make([][2]float64, 256)
	if n, ok := m.volume.Stream(samples); !ok || n == 0 {
		t.Errorf("resampled stream: n=%d ok=%v", n, ok)
	}
}

func TestMusicVolume(t *testing.T) {
	s, format := testTrack(sampleRate)
	m := newMusic(s, format, 0.7)

	tests := []struct {
		in, want float64
		silent   bool
	}{
		{0.5, 0.5, false},
		{1.0, 1.0, false},
		{0, 0, true},
		{-3, 0, true},
		{4, 1, false},
	}
	for _, tt := range tests {
		m.SetVolume(tt.in)
		if got := m.Volume(); got != tt.want {
			t.Errorf("SetVolume(%v): level %v, want %v", tt.in, got, tt.want)
		}
		if m.volume.Silent != tt.silent {
			t.Errorf("SetVolume(%v): silent %v", tt.in, m.volume.Silent)
		}
		if !tt.silent && m.volume.Volume != math.Log2(tt.want) {
			t.Errorf("SetVolume(%v): gain %v", tt.in, m.volume.Volume)
		}
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "none.mp3"), 1); err == nil {
		t.Error("opened a missing file")
	}
}

func TestCloseNil(t *testing.T) {
	var m *Music
	if err := m.Close(); err != nil {
		t.Error(err)
	}
	s, format := testTrack(sampleRate)
	if err := newMusic(s, format, 1).Close(); err != nil {
		t.Error(err)
	}
}
