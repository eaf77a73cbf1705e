package costtracker

import (
	"sync"
)

// UsageEvent represents a single AI provider call.
type UsageEvent struct {
	Provider     string // "openai", "gemini"
	Model        string
	InputTokens  int
	OutputTokens int
}

// Totals aggregates usage over the life of the process.
type Totals struct {
	Calls        int
	InputTokens  int
	OutputTokens int
}

// Tracker records provider usage. Implementations must be safe for
// concurrent use.
type Tracker interface {
	Record(event UsageEvent)
	Totals() map[string]Totals
}

// New returns an in-memory tracker keyed by provider/model.
func New() Tracker {
	return &memoryTracker{totals: make(map[string]Totals)}
}

type memoryTracker struct {
	mu     sync.Mutex
	totals map[string]Totals
}

func (m *memoryTracker) Record(event UsageEvent) {
	key := event.Provider + "/" + event.Model
	m.mu.Lock()
	defer m.mu.Unlock()
	t := m.totals[key]
	t.Calls++
	t.InputTokens += event.InputTokens
	t.OutputTokens += event.OutputTokens
	m.totals[key] = t
}

func (m *memoryTracker) Totals() map[string]Totals {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]Totals, len(m.totals))
	for k, v := range m.totals {
		out[k] = v
	}
	return out
}
