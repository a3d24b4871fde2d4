package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-scorer/internal/embedding"
	"github.com/jonathan/resume-scorer/internal/extraction"
	"github.com/jonathan/resume-scorer/internal/kv"
	"github.com/jonathan/resume-scorer/internal/schemas"
	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/types"
)

// writeTimeout bounds the status write-back so a terminal status still gets
// written when the run itself hit its deadline.
const writeTimeout = 10 * time.Second

// Config holds the orchestrator's tunable settings. The zero value selects
// the package defaults.
type Config struct {
	Thresholds   scoring.Thresholds
	EmbedTimeout time.Duration
	RunTimeout   time.Duration
}

// Orchestrator runs resume scoring detached from the request that triggers
// it, so embedding latency never blocks application submission. Its only
// observable effect is the mutation of the application record; callers that
// need the result poll that record.
//
// The orchestrator is the sole writer of the resumeScore and
// resumeScoreStatus fields. Concurrent runs for distinct applications are
// independent; the shared embedding provider must be safe for concurrent
// use.
type Orchestrator struct {
	store      kv.Store
	scorer     *scoring.Scorer
	runTimeout time.Duration
	logger     *zap.Logger

	wg sync.WaitGroup
}

// New creates an Orchestrator over the given store and embedding provider.
func New(store kv.Store, provider embedding.Provider, logger *zap.Logger, cfg Config) *Orchestrator {
	scorer := scoring.NewScorer(provider, cfg.Thresholds)
	if cfg.EmbedTimeout > 0 {
		scorer.SetEmbedTimeout(cfg.EmbedTimeout)
	}
	runTimeout := cfg.RunTimeout
	if runTimeout <= 0 {
		runTimeout = 5 * time.Minute
	}
	return &Orchestrator{
		store:      store,
		scorer:     scorer,
		runTimeout: runTimeout,
		logger:     logger,
	}
}

// ScoreResumeInBackground schedules a scoring run for the application stored
// under applicationKey and returns immediately. The run fetches the job and
// profile records, scores the resume, and writes the outcome onto the
// application record: resumeScoreStatus "completed" with the result on
// success, "failed" on any error. Nothing propagates back to the caller.
func (o *Orchestrator) ScoreResumeInBackground(applicationKey, positionID, userID string) {
	log := o.logger.With(
		zap.String("runId", uuid.New().String()),
		zap.String("applicationKey", applicationKey),
		zap.String("positionId", positionID),
		zap.String("userId", userID),
	)

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Error("resume scoring panicked", zap.Any("panic", r))
				o.markFailed(applicationKey, log)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), o.runTimeout)
		defer cancel()

		result, err := o.scoreResume(ctx, positionID, userID)
		if err != nil {
			log.Error("resume scoring failed", zap.Error(err))
			o.markFailed(applicationKey, log)
			return
		}

		o.writeResult(applicationKey, result, log)
	}()
}

// Wait blocks until every in-flight scoring run has finished. Host processes
// call it before exit so detached runs are not killed mid-write.
func (o *Orchestrator) Wait() {
	o.wg.Wait()
}

// scoreResume is the fallible core of a run: fetch, extract, score.
// Persistence of the outcome stays with the caller.
func (o *Orchestrator) scoreResume(ctx context.Context, positionID, userID string) (*types.ResumeScoreResult, error) {
	job, err := o.fetchJob(ctx, positionID)
	if err != nil {
		return nil, err
	}

	profile, err := o.fetchProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(profile.ResumeText) == "" {
		return nil, &ResumeTextMissingError{UserID: userID}
	}

	requirements := extraction.ExtractRequirements(job)

	return o.scorer.Score(ctx, requirements, profile.ResumeText)
}

func (o *Orchestrator) fetchJob(ctx context.Context, positionID string) (*types.JobPosting, error) {
	raw, err := o.store.Get(ctx, kv.JobPositionKey(positionID))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, &JobNotFoundError{PositionID: positionID}
		}
		return nil, fmt.Errorf("failed to fetch job %s: %w", positionID, err)
	}

	if err := schemas.ValidateJobPosting(raw); err != nil {
		return nil, err
	}

	var job types.JobPosting
	if err := json.Unmarshal(raw, &job); err != nil {
		return nil, fmt.Errorf("failed to decode job %s: %w", positionID, err)
	}
	return &job, nil
}

func (o *Orchestrator) fetchProfile(ctx context.Context, userID string) (*types.CandidateProfile, error) {
	raw, err := o.store.Get(ctx, kv.ProfileKey(userID))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, &ProfileNotFoundError{UserID: userID}
		}
		return nil, fmt.Errorf("failed to fetch profile %s: %w", userID, err)
	}

	if err := schemas.ValidateCandidateProfile(raw); err != nil {
		return nil, err
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", userID, err)
	}
	return &profile, nil
}

// writeResult writes the completed score onto the application record.
func (o *Orchestrator) writeResult(applicationKey string, result *types.ResumeScoreResult, log *zap.Logger) {
	o.updateApplication(applicationKey, result, types.ScoreStatusCompleted, log)
	log.Info("resume scoring completed",
		zap.Float64("overallScore", result.OverallScore),
		zap.Int("requirements", len(result.SectionScores)),
	)
}

// markFailed writes the terminal failed status, leaving resumeScore unset.
func (o *Orchestrator) markFailed(applicationKey string, log *zap.Logger) {
	o.updateApplication(applicationKey, nil, types.ScoreStatusFailed, log)
}

// updateApplication performs the read-modify-write on the application
// record. The record is patched as raw JSON so fields owned by the
// application-management flow survive the round trip untouched.
//
// A missing record is skipped without error: the application may have been
// deleted since the run was scheduled, and its absence is not this
// subsystem's concern. The skip is still logged at debug level so a
// systematically wrong key construction can be spotted in production.
//
// Uses a fresh bounded context so a terminal status still lands when the
// run's own context has expired.
func (o *Orchestrator) updateApplication(applicationKey string, result *types.ResumeScoreResult, status string, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	raw, err := o.store.Get(ctx, applicationKey)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			log.Debug("application record missing at write-back, skipping")
			return
		}
		log.Error("failed to fetch application for write-back", zap.Error(err))
		return
	}

	var app map[string]json.RawMessage
	if err := json.Unmarshal(raw, &app); err != nil {
		log.Error("failed to decode application record", zap.Error(err))
		return
	}

	if result != nil {
		encoded, err := json.Marshal(result)
		if err != nil {
			log.Error("failed to encode score result", zap.Error(err))
			return
		}
		app["resumeScore"] = encoded
	}
	statusEncoded, err := json.Marshal(status)
	if err != nil {
		log.Error("failed to encode score status", zap.Error(err))
		return
	}
	app["resumeScoreStatus"] = statusEncoded

	updated, err := json.Marshal(app)
	if err != nil {
		log.Error("failed to encode application record", zap.Error(err))
		return
	}
	if err := o.store.Set(ctx, applicationKey, updated); err != nil {
		log.Error("failed to write application record", zap.Error(err))
	}
}
