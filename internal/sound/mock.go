package sound

import "sync"

// Mock is a test double for Handle.
type Mock struct {
	mu       sync.Mutex
	key      string
	title    string
	kind     Kind
	loop     bool
	status   Status
	gain     float64
	startErr error
	starts   int
	stops    int
	// gains seen by Start, to check volume is applied before playback
	startGains []float64
}

// NewMock creates a looping file-kind mock handle.
func NewMock(key string) *Mock {
	return &Mock{key: key, title: key, loop: true, gain: GainFromPercent(50)}
}

func (m *Mock) Key() string   { return m.key }
func (m *Mock) Title() string { return m.title }
func (m *Mock) Kind() Kind    { return m.kind }
func (m *Mock) Loop() bool    { return m.loop }

func (m *Mock) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.starts++
	m.startGains = append(m.startGains, m.gain)
	if m.startErr != nil {
		m.status = Stopped
		return m.startErr
	}
	m.status = Playing
	return nil
}

func (m *Mock) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stops++
	m.status = Stopped
	return nil
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.status.CanPause() {
		m.status = Paused
	}
}

func (m *Mock) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.status.CanResume() {
		m.status = Playing
	}
}

func (m *Mock) SetGain(g float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gain = clampGain(g)
}

func (m *Mock) Gain() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gain
}

func (m *Mock) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Test helpers

func (m *Mock) SetTitle(title string) { m.title = title }

func (m *Mock) SetKind(k Kind) { m.kind = k }

func (m *Mock) SetStartError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startErr = err
}

// Starts returns how many times Start was called.
func (m *Mock) Starts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.starts
}

// Stops returns how many times Stop was called.
func (m *Mock) Stops() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stops
}

// StartGains returns the gain at each Start call.
func (m *Mock) StartGains() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.startGains...)
}

// Audible reports whether the handle would produce sound.
func (m *Mock) Audible() bool {
	return m.Status() == Playing && m.Gain() > 0
}

// Verify implementations at compile time.
var (
	_ Handle = (*Mock)(nil)
	_ Handle = (*streamHandle)(nil)
)
