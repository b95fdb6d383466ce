//go:build ci

package sound

// Manager is a silent stand-in for environments without audio.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) Init(enabled bool) error {
	return nil
}

func (m *Manager) Play(cue Cue) {
	// No-op
}

func (m *Manager) Close() {
	// No-op
}
