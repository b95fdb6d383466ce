//go:build !ci

package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// Manager owns the speaker and the decoded cue buffers.
type Manager struct {
	buffers map[Cue]*beep.Buffer
	enabled bool
}

func NewManager() *Manager {
	return &Manager{buffers: make(map[Cue]*beep.Buffer)}
}

// Init opens the speaker and decodes the cue files. When enabled is
// false the manager stays silent and Init does nothing.
func (m *Manager) Init(enabled bool) error {
	if !enabled {
		return nil
	}

	sampleRate := beep.SampleRate(44100)
	// Small buffer keeps the cue close to the keypress.
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	m.enabled = true

	return m.loadCueFiles(sampleRate)
}

func (m *Manager) loadCueFiles(sampleRate beep.SampleRate) error {
	soundDir := "assets/sounds"
	files, err := os.ReadDir(soundDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read sound directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		name := file.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".mp3" && ext != ".wav" {
			continue
		}
		cue := Cue(strings.TrimSuffix(name, filepath.Ext(name)))

		// Keep going when one file fails to decode.
		if err := m.loadCueFile(soundDir, name, cue, ext, sampleRate); err != nil {
			continue
		}
	}

	return nil
}

func (m *Manager) loadCueFile(soundDir, name string, cue Cue, ext string, sampleRate beep.SampleRate) error {
	path := filepath.Join(soundDir, name)
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		return err
	}
	defer func() { _ = streamer.Close() }()

	var resampled beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		resampled = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: 2,
		Precision:   4,
	})
	buffer.Append(resampled)

	m.buffers[cue] = buffer
	return nil
}

// Play starts a cue without blocking. Unknown cues are silent.
func (m *Manager) Play(cue Cue) {
	if !m.enabled {
		return
	}
	buffer, ok := m.buffers[cue]
	if !ok {
		return
	}
	speaker.Play(buffer.Streamer(0, buffer.Len()))
}

func (m *Manager) Close() {
	m.enabled = false
}
