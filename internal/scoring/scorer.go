package scoring

import (
	"context"
	"math"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-scorer/internal/embedding"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Thresholds classifies per-requirement scores into buckets. A requirement
// scoring strictly above Strength is a strength; strictly below Improvement
// is an improvement area; everything between appears only in the detailed
// breakdown.
type Thresholds struct {
	Strength    float64
	Improvement float64
}

// DefaultThresholds are the platform-wide classification cutoffs. Assessment
// configuration may override them per position category.
var DefaultThresholds = Thresholds{Strength: 0.70, Improvement: 0.40}

// DefaultEmbedTimeout bounds a single embedding call. Model inference can
// take from tens of milliseconds to seconds; a stuck call must not hold a
// scoring run open indefinitely.
const DefaultEmbedTimeout = 30 * time.Second

// Scorer computes per-requirement match scores for a resume.
type Scorer struct {
	provider     embedding.Provider
	thresholds   Thresholds
	embedTimeout time.Duration
}

// NewScorer creates a Scorer using the given embedding provider. Zero-value
// thresholds select DefaultThresholds.
func NewScorer(provider embedding.Provider, thresholds Thresholds) *Scorer {
	if thresholds == (Thresholds{}) {
		thresholds = DefaultThresholds
	}
	return &Scorer{
		provider:     provider,
		thresholds:   thresholds,
		embedTimeout: DefaultEmbedTimeout,
	}
}

// SetEmbedTimeout overrides the per-embedding-call timeout.
func (s *Scorer) SetEmbedTimeout(d time.Duration) {
	if d > 0 {
		s.embedTimeout = d
	}
}

// Score embeds every requirement and the resume text, computes clamped
// cosine similarity per requirement, and aggregates the result.
//
// Requirement embeddings run concurrently; all embeddings complete before
// any scoring math runs. The scoring math itself is deterministic for a
// fixed provider. Score has no side effects; persistence belongs to the
// caller.
func (s *Scorer) Score(ctx context.Context, requirements []string, resumeText string) (*types.ResumeScoreResult, error) {
	if len(requirements) == 0 {
		return nil, &InsufficientInputError{Message: "no requirements to score against"}
	}
	if strings.TrimSpace(resumeText) == "" {
		return nil, &InsufficientInputError{Message: "no resume text"}
	}

	requirementVecs := make([][]float64, len(requirements))
	var resumeVec []float64

	g, gCtx := errgroup.WithContext(ctx)
	for i, req := range requirements {
		i, req := i, req
		g.Go(func() error {
			vec, err := s.embed(gCtx, req)
			if err != nil {
				return err
			}
			requirementVecs[i] = vec
			return nil
		})
	}
	g.Go(func() error {
		vec, err := s.embed(gCtx, resumeText)
		if err != nil {
			return err
		}
		resumeVec = vec
		return nil
	})

	// Join barrier: every embedding is in hand before any similarity math.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sectionScores := make([]types.RequirementScore, len(requirements))
	for i, req := range requirements {
		score := clamp01(CosineSimilarity(resumeVec, requirementVecs[i]))
		sectionScores[i] = types.RequirementScore{
			Requirement:     req,
			Score:           score,
			MatchPercentage: int(math.Round(score * 100)),
		}
	}

	return buildResult(sectionScores, s.thresholds), nil
}

func (s *Scorer) embed(ctx context.Context, text string) ([]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.embedTimeout)
	defer cancel()
	return s.provider.Embed(ctx, text)
}

// buildResult aggregates per-requirement scores into the persisted result
// shape. Every requirement counts equally in the overall score regardless of
// which configuration field it came from.
func buildResult(sectionScores []types.RequirementScore, thresholds Thresholds) *types.ResumeScoreResult {
	total := 0.0
	strengths := make([]string, 0)
	improvements := make([]string, 0)
	for _, rs := range sectionScores {
		total += rs.Score
		if rs.Score > thresholds.Strength {
			strengths = append(strengths, rs.Requirement)
		}
		if rs.Score < thresholds.Improvement {
			improvements = append(improvements, rs.Requirement)
		}
	}
	overall := total / float64(len(sectionScores))

	return &types.ResumeScoreResult{
		Success:       true,
		OverallScore:  overall,
		SectionScores: sectionScores,
		Analysis: types.ScoreAnalysis{
			OverallScore:   int(math.Round(overall * 100)),
			Strengths:      strengths,
			Improvements:   improvements,
			DetailedScores: sectionScores,
		},
	}
}
