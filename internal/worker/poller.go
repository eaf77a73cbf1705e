package worker

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"hireflow/internal/store"
)

const (
	// DefaultPollInterval is how often the queue is scanned.
	DefaultPollInterval = 30 * time.Second
	// DefaultBatchSize bounds how many candidates one cycle processes.
	DefaultBatchSize = 5
)

// Poller periodically drains pending candidates through the processor.
// Candidates in a cycle are processed strictly sequentially to bound
// concurrent usage of the external providers.
type Poller struct {
	processor  *Processor
	candidates store.CandidateStore
	interval   time.Duration
	batchSize  int
}

// NewPoller builds the batch loop. Non-positive interval or batch size
// fall back to the defaults.
func NewPoller(processor *Processor, candidates store.CandidateStore, interval time.Duration, batchSize int) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Poller{
		processor:  processor,
		candidates: candidates,
		interval:   interval,
		batchSize:  batchSize,
	}
}

// Run polls until the context is cancelled. The first cycle starts
// immediately rather than waiting a full interval.
func (p *Poller) Run(ctx context.Context) {
	log.Infof("scoring poller started (interval %s, batch size %d)", p.interval, p.batchSize)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.runCycle(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Info("scoring poller stopped")
			return
		case <-ticker.C:
			p.runCycle(ctx)
		}
	}
}

// runCycle processes one batch, oldest submissions first. A failure in
// one candidate never aborts the rest of the batch.
func (p *Poller) runCycle(ctx context.Context) {
	pending, err := p.candidates.ListPendingCandidates(ctx, p.batchSize)
	if err != nil {
		log.Errorf("listing pending candidates: %v", err)
		return
	}
	if len(pending) == 0 {
		return
	}
	log.Debugf("poll cycle: %d candidate(s) pending", len(pending))

	for _, candidate := range pending {
		if ctx.Err() != nil {
			return
		}
		p.processOne(ctx, candidate.ID)
	}
}

// processOne isolates a single candidate's pass. Whatever goes wrong,
// the candidate is forced out of the queue afterwards: a missing score
// is preferable to a queue wedged on the same failing item forever.
func (p *Poller) processOne(ctx context.Context, id uuid.UUID) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("panic while processing candidate %s: %v", id, r)
			p.forceComplete(ctx, id)
		}
	}()

	if err := p.processor.Process(ctx, id, ProcessOptions{}); err != nil {
		if errors.Is(err, ErrNotPending) {
			// Raced by a triggered call or deleted in the meantime.
			log.Debugf("candidate %s no longer pending, skipping", id)
			return
		}
		log.Errorf("processing candidate %s failed: %v", id, err)
		p.forceComplete(ctx, id)
	}
}

func (p *Poller) forceComplete(ctx context.Context, id uuid.UUID) {
	if err := p.candidates.ClearNeedsScoring(ctx, id); err != nil {
		log.Errorf("could not clear needs_scoring for candidate %s: %v", id, err)
	}
}
