package types

// RequirementScore is the semantic match score for a single job requirement.
type RequirementScore struct {
	Requirement     string  `json:"requirement"`
	Score           float64 `json:"score"`           // clamped cosine similarity, 0.0-1.0
	MatchPercentage int     `json:"matchPercentage"` // round(Score * 100)
}

// ScoreAnalysis is the human-oriented view of a scoring run: requirements
// bucketed into clear strengths and improvement areas, plus the full
// per-requirement breakdown.
type ScoreAnalysis struct {
	OverallScore   int                `json:"overallScore"` // 0-100
	Strengths      []string           `json:"strengths"`
	Improvements   []string           `json:"improvements"`
	DetailedScores []RequirementScore `json:"detailedScores"`
}

// ResumeScoreResult is the complete output of one resume scoring run,
// persisted onto the application record when scoring completes.
type ResumeScoreResult struct {
	Success       bool               `json:"success"`
	OverallScore  float64            `json:"overallScore"` // mean of section scores, 0.0-1.0
	SectionScores []RequirementScore `json:"sectionScores"`
	Analysis      ScoreAnalysis      `json:"analysis"`
}
