// Package audio plays the background track.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player is the fire-and-forget music contract the game depends on.
type Player interface {
	Play()
	Stop()
}

// Mute satisfies Player without producing sound (SSH sessions, tests).
type Mute struct{}

func (Mute) Play() {}
func (Mute) Stop() {}

// Music loops the dungeon theme through the system speaker.
type Music struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	track       *beep.Ctrl
	initialized bool
}

// NewMusic creates an uninitialised music player. Play and Stop are safe
// to call before Init; they do nothing until the speaker is up.
func NewMusic() *Music {
	return &Music{mixer: &beep.Mixer{}}
}

// Init opens the speaker. Failure is not fatal for the game: callers log it
// and keep running silently.
func (m *Music) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Play starts the theme, or resumes it if paused.
func (m *Music) Play() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if m.track != nil {
		m.track.Paused = false
		return
	}
	m.track = &beep.Ctrl{Streamer: NewMelody(sampleRate, DungeonTheme), Paused: false}
	m.mixer.Add(m.track)
}

// Stop pauses the theme.
func (m *Music) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.track == nil {
		return
	}
	speaker.Lock()
	m.track.Paused = true
	speaker.Unlock()
}

// Close silences everything. The speaker itself stays open; beep has no
// way to close it.
func (m *Music) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.track = nil
	m.initialized = false
}

// Note is a pitch held for a number of beats. Freq 0 is a rest.
type Note struct {
	Freq  float64
	Beats float64
}

// DungeonTheme is a slow minor arpeggio.
var DungeonTheme = []Note{
	{220.00, 1}, {261.63, 1}, {329.63, 1}, {261.63, 1},
	{196.00, 1}, {246.94, 1}, {293.66, 1}, {246.94, 1},
	{174.61, 1}, {220.00, 1}, {261.63, 1}, {220.00, 1},
	{164.81, 2}, {0, 2},
}

// beat is the length of one beat at 90 BPM.
const beat = time.Minute / 90

// Melody streams a note sequence forever, looping at the end.
type Melody struct {
	sr     beep.SampleRate
	notes  []Note
	idx    int
	pos    int // Sample position within the current note
	length int // Samples in the current note
	phase  float64
}

// NewMelody creates an endless streamer over notes.
func NewMelody(sr beep.SampleRate, notes []Note) *Melody {
	m := &Melody{sr: sr, notes: notes}
	m.length = m.noteLength(0)
	return m
}

func (m *Melody) noteLength(i int) int {
	if len(m.notes) == 0 {
		return 0
	}
	return m.sr.N(time.Duration(m.notes[i].Beats * float64(beat)))
}

// Stream fills samples with a soft square-ish tone with a short decay.
func (m *Melody) Stream(samples [][2]float64) (n int, ok bool) {
	if len(m.notes) == 0 {
		return 0, false
	}
	for i := range samples {
		if m.pos >= m.length {
			m.idx = (m.idx + 1) % len(m.notes)
			m.pos = 0
			m.length = m.noteLength(m.idx)
		}

		note := m.notes[m.idx]
		sample := 0.0
		if note.Freq > 0 {
			t := float64(m.pos) / float64(m.sr)
			envelope := math.Exp(-t * 3)
			sample = 0.12 * envelope * (math.Sin(2*math.Pi*m.phase) + 0.3*math.Sin(6*math.Pi*m.phase))
			m.phase += note.Freq / float64(m.sr)
			m.phase -= math.Floor(m.phase)
		}

		samples[i][0] = sample
		samples[i][1] = sample
		m.pos++
	}
	return len(samples), true
}

// Err always returns nil; the melody cannot fail.
func (m *Melody) Err() error {
	return nil
}

var (
	_ Player        = (*Music)(nil)
	_ Player        = Mute{}
	_ beep.Streamer = (*Melody)(nil)
)
