package app

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"hireflow/internal/config"
	"hireflow/internal/costtracker"
	"hireflow/internal/notify"
	"hireflow/internal/resume"
	"hireflow/internal/scoring"
	"hireflow/internal/store"
	"hireflow/internal/store/primary"
	"hireflow/internal/worker"
)

// App wires up the full pipeline. Commands pull the pieces they need
// off the struct.
type App struct {
	Config *config.Config

	CandidateStore store.CandidateStore
	JobStore       store.JobStore
	Usage          costtracker.Tracker

	Extractor  *resume.Extractor
	Scorer     *scoring.Adapter
	Dispatcher *notify.Dispatcher
	Processor  *worker.Processor
	Poller     *worker.Poller

	primaryStore *primary.StoreImpl
	evaluator    scoring.Evaluator
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	app := &App{Config: cfg}

	if err := app.initPrimaryStore(ctx); err != nil {
		return nil, err
	}
	if err := app.initScoring(ctx); err != nil {
		app.cleanupPartialInit()
		return nil, err
	}
	app.initExtractor()
	app.initDispatcher()
	app.initWorker()

	log.Println("Application initialization complete.")
	return app, nil
}

func (a *App) initPrimaryStore(ctx context.Context) error {
	ps, err := primary.NewPrimaryStore(ctx, a.Config.Database.Primary.DSN)
	if err != nil {
		return fmt.Errorf("init primary store: %w", err)
	}
	a.primaryStore = ps
	a.CandidateStore = ps
	a.JobStore = ps
	return nil
}

func (a *App) initScoring(ctx context.Context) error {
	cfg := a.Config
	a.Usage = costtracker.New()
	var evaluator scoring.Evaluator

	switch cfg.AI.Provider {
	case "openai":
		if ev := scoring.NewOpenAIEvaluator(cfg.AI.OpenaiApiKey, cfg.AI.Model, a.Usage); ev != nil {
			evaluator = ev
		}
	case "gemini":
		ev, err := scoring.NewGeminiEvaluator(ctx, cfg.AI.GoogleApiKey, cfg.AI.Model, a.Usage)
		if err != nil {
			return fmt.Errorf("init gemini evaluator: %w", err)
		}
		if ev != nil {
			evaluator = ev
		}
	case "":
		// Scoring disabled; the adapter degrades to neutral results.
	default:
		log.Warnf("Unsupported AI provider %q. Scoring disabled.", cfg.AI.Provider)
	}

	a.evaluator = evaluator
	a.Scorer = scoring.NewAdapter(evaluator)
	return nil
}

func (a *App) initExtractor() {
	timeout := time.Duration(a.Config.Resume.FetchTimeoutMs) * time.Millisecond
	a.Extractor = resume.NewExtractor(timeout)
}

func (a *App) initDispatcher() {
	cfg := a.Config
	var sender notify.Sender
	if cfg.Email.SMTPHost != "" {
		sender = notify.NewSMTPSender(
			cfg.Email.SMTPHost, cfg.Email.SMTPPort,
			cfg.Email.SMTPUsername, cfg.Email.SMTPPassword,
			cfg.Email.From, cfg.Email.FromName,
		)
	}
	limiter := rate.NewLimiter(rate.Limit(cfg.Email.RatePerSecond), 1)
	a.Dispatcher = notify.NewDispatcher(sender, limiter, cfg.Email.FromName, cfg.Email.Signature)
}

func (a *App) initWorker() {
	a.Processor = worker.NewProcessor(worker.Deps{
		Candidates: a.CandidateStore,
		Jobs:       a.JobStore,
		Extractor:  a.Extractor,
		Scorer:     a.Scorer,
		Notifier:   a.Dispatcher,
	})
	interval := time.Duration(a.Config.Worker.PollIntervalMs) * time.Millisecond
	a.Poller = worker.NewPoller(a.Processor, a.CandidateStore, interval, a.Config.Worker.BatchSize)
}

func (a *App) cleanupPartialInit() {
	if a.primaryStore != nil {
		a.primaryStore.Close()
	}
	if ev, ok := a.evaluator.(interface{ Close() error }); ok && ev != nil {
		if err := ev.Close(); err != nil {
			log.Printf("Error closing evaluator: %v", err)
		}
	}
}

// Close releases connections held by the app.
func (a *App) Close() {
	a.cleanupPartialInit()
}
