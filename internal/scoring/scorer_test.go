package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/embedding"
	"github.com/jonathan/resume-scorer/internal/types"
)

// vectorProvider returns a fixed vector per text, mimicking a deterministic
// embedding model. Unknown texts get an error.
type vectorProvider struct {
	vectors map[string][]float64
}

func (p *vectorProvider) Embed(_ context.Context, text string) ([]float64, error) {
	vec, ok := p.vectors[text]
	if !ok {
		return nil, &embedding.UnavailableError{Message: "no vector for text"}
	}
	return vec, nil
}

const resumeText = "Five years of React development building large frontend applications."

func newTestScorer() *Scorer {
	return NewScorer(&vectorProvider{vectors: map[string][]float64{
		"React":           {1, 0, 0},
		"Team Leadership": {0, 1, 0},
		"TypeScript":      {0.8, 0.2, 0},
		resumeText:        {0.95, 0.05, 0},
	}}, Thresholds{})
}

func TestScorer_RelativeOrdering(t *testing.T) {
	scorer := newTestScorer()

	result, err := scorer.Score(context.Background(), []string{"React", "Team Leadership"}, resumeText)
	require.NoError(t, err)
	require.Len(t, result.SectionScores, 2)

	react := result.SectionScores[0]
	leadership := result.SectionScores[1]
	assert.Equal(t, "React", react.Requirement)
	assert.Equal(t, "Team Leadership", leadership.Requirement)

	// The resume is all React and no leadership; assert ordering and
	// classification rather than exact similarity values.
	assert.Greater(t, react.Score, leadership.Score)
	assert.Contains(t, result.Analysis.Strengths, "React")
	assert.Contains(t, result.Analysis.Improvements, "Team Leadership")

	expectedMean := (react.Score + leadership.Score) / 2
	assert.InDelta(t, expectedMean, result.OverallScore, 1e-9)
	assert.True(t, result.Success)
}

func TestScorer_Deterministic(t *testing.T) {
	scorer := newTestScorer()
	requirements := []string{"React", "TypeScript", "Team Leadership"}

	first, err := scorer.Score(context.Background(), requirements, resumeText)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := scorer.Score(context.Background(), requirements, resumeText)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestScorer_RangeInvariant(t *testing.T) {
	// Include an opposite-direction vector so raw cosine goes negative.
	scorer := NewScorer(&vectorProvider{vectors: map[string][]float64{
		"React":    {1, 0},
		"COBOL":    {-1, 0},
		"a resume": {1, 0},
	}}, Thresholds{})

	result, err := scorer.Score(context.Background(), []string{"React", "COBOL"}, "a resume")
	require.NoError(t, err)

	for _, rs := range result.SectionScores {
		assert.GreaterOrEqual(t, rs.Score, 0.0)
		assert.LessOrEqual(t, rs.Score, 1.0)
		assert.GreaterOrEqual(t, rs.MatchPercentage, 0)
		assert.LessOrEqual(t, rs.MatchPercentage, 100)
	}

	cobol := result.SectionScores[1]
	assert.Equal(t, 0.0, cobol.Score, "negative similarity clamps to zero")
	assert.Equal(t, 0, cobol.MatchPercentage)
}

func TestScorer_MatchPercentageRounding(t *testing.T) {
	scorer := newTestScorer()

	result, err := scorer.Score(context.Background(), []string{"React"}, resumeText)
	require.NoError(t, err)

	for _, rs := range result.SectionScores {
		assert.Equal(t, int(rs.Score*100+0.5), rs.MatchPercentage)
	}
	assert.Equal(t, int(result.OverallScore*100+0.5), result.Analysis.OverallScore)
}

func TestScorer_EmptyRequirements(t *testing.T) {
	scorer := newTestScorer()

	_, err := scorer.Score(context.Background(), nil, resumeText)
	require.Error(t, err)

	var insufficient *InsufficientInputError
	assert.ErrorAs(t, err, &insufficient)
}

func TestScorer_BlankResumeText(t *testing.T) {
	scorer := newTestScorer()

	_, err := scorer.Score(context.Background(), []string{"React"}, "   \n\t")
	require.Error(t, err)

	var insufficient *InsufficientInputError
	assert.ErrorAs(t, err, &insufficient)
}

func TestScorer_EmbeddingFailurePropagates(t *testing.T) {
	scorer := newTestScorer()

	_, err := scorer.Score(context.Background(), []string{"React", "Rust"}, resumeText)
	require.Error(t, err)

	var unavailable *embedding.UnavailableError
	assert.ErrorAs(t, err, &unavailable)
}

type failingProvider struct{}

func (failingProvider) Embed(_ context.Context, _ string) ([]float64, error) {
	return nil, errors.New("model unavailable")
}

func TestScorer_AllEmbeddingsFail(t *testing.T) {
	scorer := NewScorer(failingProvider{}, Thresholds{})

	result, err := scorer.Score(context.Background(), []string{"React"}, "resume")
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestBuildResult_ClassificationBoundaries(t *testing.T) {
	scores := []types.RequirementScore{
		{Requirement: "exactly strength cutoff", Score: 0.70, MatchPercentage: 70},
		{Requirement: "just above strength cutoff", Score: 0.71, MatchPercentage: 71},
		{Requirement: "just below improvement cutoff", Score: 0.39, MatchPercentage: 39},
		{Requirement: "exactly improvement cutoff", Score: 0.40, MatchPercentage: 40},
		{Requirement: "middle", Score: 0.55, MatchPercentage: 55},
	}

	result := buildResult(scores, DefaultThresholds)

	assert.Equal(t, []string{"just above strength cutoff"}, result.Analysis.Strengths)
	assert.Equal(t, []string{"just below improvement cutoff"}, result.Analysis.Improvements)
	assert.Equal(t, scores, result.Analysis.DetailedScores)

	// Boundary values land in neither bucket.
	assert.NotContains(t, result.Analysis.Strengths, "exactly strength cutoff")
	assert.NotContains(t, result.Analysis.Improvements, "exactly improvement cutoff")
}

func TestBuildResult_OverallScoreIsUnweightedMean(t *testing.T) {
	scores := []types.RequirementScore{
		{Requirement: "a", Score: 1.0, MatchPercentage: 100},
		{Requirement: "b", Score: 0.0, MatchPercentage: 0},
		{Requirement: "c", Score: 0.5, MatchPercentage: 50},
	}

	result := buildResult(scores, DefaultThresholds)

	assert.InDelta(t, 0.5, result.OverallScore, 1e-9)
	assert.Equal(t, 50, result.Analysis.OverallScore)
}

func TestBuildResult_CustomThresholds(t *testing.T) {
	scores := []types.RequirementScore{
		{Requirement: "a", Score: 0.65, MatchPercentage: 65},
	}

	strict := buildResult(scores, Thresholds{Strength: 0.60, Improvement: 0.30})
	assert.Contains(t, strict.Analysis.Strengths, "a")

	lenient := buildResult(scores, DefaultThresholds)
	assert.NotContains(t, lenient.Analysis.Strengths, "a")
}
