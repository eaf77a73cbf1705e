package worker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hireflow/internal/models"
)

func TestNewPollerDefaults(t *testing.T) {
	p := NewPoller(nil, nil, 0, -2)
	assert.Equal(t, DefaultPollInterval, p.interval)
	assert.Equal(t, DefaultBatchSize, p.batchSize)
}

func TestRunCycleProcessesBatch(t *testing.T) {
	f := newFixture()
	first := f.addPending()
	second := f.addPending()

	p := NewPoller(f.processor, f.candidates, time.Minute, 5)
	p.runCycle(context.Background())

	assert.Contains(t, f.candidates.savedResults, first.ID)
	assert.Contains(t, f.candidates.savedResults, second.ID)
	assert.Equal(t, 2, f.scorer.calls)
}

func TestRunCycleForcesCompletionOnFailure(t *testing.T) {
	f := newFixture()
	f.candidates.saveErr = fmt.Errorf("db unavailable")
	c := f.addPending()

	p := NewPoller(f.processor, f.candidates, time.Minute, 5)
	p.runCycle(context.Background())

	// The failed candidate is pushed out of the queue without a result.
	require.Len(t, f.candidates.cleared, 1)
	assert.Equal(t, c.ID, f.candidates.cleared[0])
	assert.Empty(t, f.candidates.savedResults)
}

func TestRunCycleRecoversFromPanic(t *testing.T) {
	f := newFixture()
	f.scorer.panics = true
	c := f.addPending()

	p := NewPoller(f.processor, f.candidates, time.Minute, 5)
	require.NotPanics(t, func() { p.runCycle(context.Background()) })
	require.Len(t, f.candidates.cleared, 1)
	assert.Equal(t, c.ID, f.candidates.cleared[0])
	assert.False(t, c.NeedsScoring)
}

func TestRunCycleSkipsRacedCandidate(t *testing.T) {
	f := newFixture()
	c := f.addPending()

	// Simulate a triggered call completing between the list and the
	// pending read.
	p := NewPoller(f.processor, f.candidates, time.Minute, 5)
	c.NeedsScoring = false
	p.processOne(context.Background(), c.ID)

	assert.Empty(t, f.candidates.cleared)
	assert.Empty(t, f.candidates.savedResults)
}

func TestRunCycleListFailure(t *testing.T) {
	f := newFixture()
	f.candidates.listErr = fmt.Errorf("db unavailable")
	f.addPending()

	p := NewPoller(f.processor, f.candidates, time.Minute, 5)
	p.runCycle(context.Background())
	assert.Zero(t, f.scorer.calls)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	f := newFixture()
	p := NewPoller(f.processor, f.candidates, 10*time.Millisecond, 5)

	c := f.addPending()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after context cancellation")
	}
	assert.Contains(t, f.candidates.savedResults, c.ID)
	assert.Equal(t, models.StatusNew, c.Status)
}
