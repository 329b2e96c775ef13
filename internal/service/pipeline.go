package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"campaign_pulse/internal/config"
	"campaign_pulse/internal/domain"
)

// Phase names recorded in the run error ledger.
const (
	phasePosts     = "post_scraping"
	phaseComments  = "comment_scraping"
	phaseSentiment = "sentiment_analysis"
	phaseFallback  = "llm_fallback"
	phaseThemes    = "theme_extraction"
)

// finalizeTimeout bounds the run row update that must happen even when the
// run context already expired.
const finalizeTimeout = 10 * time.Second

// Pipeline drives one scraping and classification cycle: posts per candidate,
// comments per stale post, then the sentiment and theme batches. At most one
// run is in flight at a time; concurrent triggers get ErrConflictingRun.
type Pipeline struct {
	candidates CandidateSource
	collector  Collector
	posts      PostSource
	sentiment  SentimentAnalyzer
	themes     ThemeAnalyzer
	runs       RunStore
	publisher  Publisher
	logger     *slog.Logger
	config     config.PipelineConfig

	busy atomic.Bool
}

func NewPipeline(
	candidates CandidateSource,
	collector Collector,
	posts PostSource,
	sentiment SentimentAnalyzer,
	themes ThemeAnalyzer,
	runs RunStore,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.PipelineConfig,
) *Pipeline {
	return &Pipeline{
		candidates: candidates,
		collector:  collector,
		posts:      posts,
		sentiment:  sentiment,
		themes:     themes,
		runs:       runs,
		publisher:  publisher,
		logger:     logger.With("component", "pipeline"),
		config:     cfg,
	}
}

// Run executes one full cycle and blocks until it reaches a terminal status.
// Returns ErrConflictingRun when another run is already in flight; the
// conflicting trigger leaves no run row behind.
func (p *Pipeline) Run(ctx context.Context, trigger string) (*domain.ScrapingRun, error) {
	run, err := p.begin(ctx, trigger)
	if err != nil {
		return nil, err
	}

	p.execute(ctx, run)

	return run, nil
}

// Trigger starts a cycle in the background and returns its run row while it
// is still running. The cycle gets its own context bounded by the configured
// run timeout.
func (p *Pipeline) Trigger(ctx context.Context, trigger string) (*domain.ScrapingRun, error) {
	run, err := p.begin(ctx, trigger)
	if err != nil {
		return nil, err
	}

	go func() {
		runCtx, cancel := context.WithTimeout(context.Background(), p.config.RunTimeout)
		defer cancel()

		p.execute(runCtx, run)
	}()

	return run, nil
}

// Running reports whether a cycle is currently in flight.
func (p *Pipeline) Running() bool {
	return p.busy.Load()
}

// Status reports the in-flight run, the last terminal run, and when data was
// last refreshed successfully.
func (p *Pipeline) Status(ctx context.Context) (*domain.PipelineStatus, error) {
	status := &domain.PipelineStatus{Running: p.busy.Load()}

	if status.Running {
		current, err := p.runs.Latest(ctx)
		if err != nil {
			return nil, fmt.Errorf("load current run: %w", err)
		}
		if current != nil && current.Status == domain.RunRunning {
			status.CurrentRun = current
		}
	}

	last, err := p.runs.LatestFinished(ctx)
	if err != nil {
		return nil, fmt.Errorf("load last run: %w", err)
	}
	status.LastRun = last

	lastSuccess, err := p.runs.LastFinishedAt(ctx)
	if err != nil {
		return nil, fmt.Errorf("load last success: %w", err)
	}
	status.LastSuccessAt = lastSuccess

	return status, nil
}

// ReconcileStale fails runs left in running state by a previous process.
// Called once at startup, before the scheduler can start a new cycle.
func (p *Pipeline) ReconcileStale(ctx context.Context) error {
	reconciled, err := p.runs.FailStale(ctx)
	if err != nil {
		return fmt.Errorf("reconcile stale runs: %w", err)
	}
	if reconciled > 0 {
		p.logger.Warn("marked stale runs as failed", "count", reconciled)
	}

	return nil
}

// begin claims the exclusivity token and creates the run row. The token is
// claimed first so a losing trigger never writes a second running row.
func (p *Pipeline) begin(ctx context.Context, trigger string) (*domain.ScrapingRun, error) {
	if !p.busy.CompareAndSwap(false, true) {
		return nil, domain.ErrConflictingRun
	}

	run := &domain.ScrapingRun{
		ID:          uuid.New(),
		StartedAt:   time.Now().UTC(),
		Status:      domain.RunRunning,
		TriggeredBy: trigger,
		Errors:      domain.RunErrorList{},
	}

	if err := p.runs.Create(ctx, run); err != nil {
		p.busy.Store(false)
		return nil, fmt.Errorf("create run: %w", err)
	}

	return run, nil
}

type phaseResult struct {
	name      string
	successes int
	failures  int
}

// totalFailure reports that every item of the phase failed. A phase with
// nothing to do is not a failure.
func (r phaseResult) totalFailure() bool {
	return r.failures > 0 && r.successes == 0
}

func (p *Pipeline) execute(ctx context.Context, run *domain.ScrapingRun) {
	defer p.busy.Store(false)

	started := time.Now()
	p.logger.Info("run started", "run_id", run.ID, "trigger", run.TriggeredBy)

	var phases []phaseResult

	candidates, postsPhase := p.scrapePosts(ctx, run)
	phases = append(phases, postsPhase)
	phases = append(phases, p.scrapeComments(ctx, run, candidates))
	phases = append(phases, p.scoreSentiment(ctx, run))
	phases = append(phases, p.reclassifyAmbiguous(ctx, run))
	phases = append(phases, p.extractThemes(ctx, run))

	run.Status = resolveStatus(run.Errors, phases)
	completedAt := time.Now().UTC()
	run.CompletedAt = &completedAt
	run.DurationSeconds = math.Round(time.Since(started).Seconds()*100) / 100

	// The row must leave running state even when the run context expired.
	finalizeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalizeTimeout)
	defer cancel()

	if err := p.runs.Update(finalizeCtx, run); err != nil {
		p.logger.Error("run update failed", "run_id", run.ID, "error", err)
	}

	p.publishEvent(finalizeCtx, run)

	p.logger.Info("run finished",
		"run_id", run.ID,
		"status", run.Status,
		"posts_scraped", run.PostsScraped,
		"comments_scraped", run.CommentsScraped,
		"errors", len(run.Errors),
		"duration_seconds", run.DurationSeconds,
	)
}

// scrapePosts ingests the latest posts of every active candidate. A failing
// candidate is recorded in the ledger and the rest keep going.
func (p *Pipeline) scrapePosts(ctx context.Context, run *domain.ScrapingRun) ([]domain.Candidate, phaseResult) {
	phase := phaseResult{name: phasePosts}

	candidates, err := p.candidates.ListActive(ctx)
	if err != nil {
		phase.failures++
		p.recordError(run, domain.RunError{Phase: phase.name, Message: fmt.Sprintf("list candidates: %v", err)})
		return nil, phase
	}

	for _, candidate := range candidates {
		stats, err := p.collector.CollectPosts(ctx, candidate, run.ID)
		if err != nil {
			phase.failures++
			p.recordError(run, domain.RunError{Candidate: candidate.Username, Phase: phase.name, Message: err.Error()})
			continue
		}

		phase.successes++
		run.PostsScraped += stats.Created + stats.Updated
	}

	return candidates, phase
}

// scrapeComments refreshes comments for posts that have none yet or whose
// comments are older than the staleness window.
func (p *Pipeline) scrapeComments(ctx context.Context, run *domain.ScrapingRun, candidates []domain.Candidate) phaseResult {
	phase := phaseResult{name: phaseComments}

	cutoff := time.Now().UTC().Add(-p.config.CommentStaleness)
	posts, err := p.posts.ListNeedingComments(ctx, cutoff)
	if err != nil {
		phase.failures++
		p.recordError(run, domain.RunError{Phase: phase.name, Message: fmt.Sprintf("list posts: %v", err)})
		return phase
	}

	usernames := make(map[uuid.UUID]string, len(candidates))
	for _, candidate := range candidates {
		usernames[candidate.ID] = candidate.Username
	}

	for _, post := range posts {
		stats, err := p.collector.CollectComments(ctx, post, run.ID)
		if err != nil {
			phase.failures++
			p.recordError(run, domain.RunError{
				Candidate: usernames[post.CandidateID],
				Phase:     phase.name,
				PostID:    post.ExternalID,
				Message:   err.Error(),
			})
			continue
		}

		phase.successes++
		run.CommentsScraped += stats.Created + stats.Updated
	}

	return phase
}

func (p *Pipeline) scoreSentiment(ctx context.Context, run *domain.ScrapingRun) phaseResult {
	phase := phaseResult{name: phaseSentiment}

	stats, err := p.sentiment.AnalyzeBatch(ctx)
	if err != nil {
		phase.failures++
		p.recordError(run, domain.RunError{Phase: phase.name, Message: err.Error()})
		return phase
	}

	phase.successes = stats.Analyzed + stats.Skipped
	if stats.Failed > 0 {
		phase.failures = stats.Failed
		p.recordError(run, domain.RunError{Phase: phase.name, Message: fmt.Sprintf("%d comments failed to score", stats.Failed)})
	}

	return phase
}

// reclassifyAmbiguous runs the probabilistic fallback. Individual call
// failures degrade silently and never mark the run, only a failing listing
// query does.
func (p *Pipeline) reclassifyAmbiguous(ctx context.Context, run *domain.ScrapingRun) phaseResult {
	phase := phaseResult{name: phaseFallback}

	stats, err := p.sentiment.ReclassifyAmbiguous(ctx)
	if err != nil {
		phase.failures++
		p.recordError(run, domain.RunError{Phase: phase.name, Message: err.Error()})
		return phase
	}

	phase.successes = stats.Upgraded + stats.Retained
	return phase
}

func (p *Pipeline) extractThemes(ctx context.Context, run *domain.ScrapingRun) phaseResult {
	phase := phaseResult{name: phaseThemes}

	stats, err := p.themes.ClassifyBatch(ctx)
	if err != nil {
		phase.failures++
		p.recordError(run, domain.RunError{Phase: phase.name, Message: err.Error()})
		return phase
	}

	phase.successes = stats.Processed + stats.Enriched
	if stats.Failed > 0 {
		phase.failures = stats.Failed
		p.recordError(run, domain.RunError{Phase: phase.name, Message: fmt.Sprintf("%d comments failed theme tagging", stats.Failed)})
	}

	return phase
}

func (p *Pipeline) recordError(run *domain.ScrapingRun, runErr domain.RunError) {
	runErr.Timestamp = time.Now().UTC()
	run.Errors = append(run.Errors, runErr)

	p.logger.Warn("run error recorded",
		"run_id", run.ID,
		"phase", runErr.Phase,
		"candidate", runErr.Candidate,
		"post_id", runErr.PostID,
		"error", runErr.Message,
	)
}

func (p *Pipeline) publishEvent(ctx context.Context, run *domain.ScrapingRun) {
	if p.publisher == nil {
		return
	}

	event := domain.RunEvent{
		RunID:           run.ID,
		Status:          run.Status,
		TriggeredBy:     run.TriggeredBy,
		PostsScraped:    run.PostsScraped,
		CommentsScraped: run.CommentsScraped,
		ErrorCount:      len(run.Errors),
		DurationSeconds: run.DurationSeconds,
		CompletedAt:     *run.CompletedAt,
	}

	if err := p.publisher.PublishRunEvent(ctx, event); err != nil {
		p.logger.Warn("run event publish failed", "run_id", run.ID, "error", err)
	}
}

// resolveStatus maps the error ledger and phase outcomes to a terminal status.
// Any phase where everything failed makes the whole run failed; otherwise
// errors downgrade it to partial.
func resolveStatus(errs domain.RunErrorList, phases []phaseResult) domain.RunStatus {
	for _, phase := range phases {
		if phase.totalFailure() {
			return domain.RunFailed
		}
	}

	if len(errs) > 0 {
		return domain.RunPartial
	}

	return domain.RunCompleted
}
