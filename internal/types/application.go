package types

// Resume score status values on an application record. Absence of the field
// means scoring is still pending (or was never triggered).
const (
	ScoreStatusCompleted = "completed"
	ScoreStatusFailed    = "failed"
)

// Application represents a stored job application record. The application
// submission flow creates it; the scoring pipeline is the only writer of the
// ResumeScore and ResumeScoreStatus fields.
type Application struct {
	UserID     string `json:"userId"`
	PositionID string `json:"positionId"`
	AppliedAt  string `json:"appliedAt,omitempty"`
	Status     string `json:"status,omitempty"`
	ResumeURL  string `json:"resumeUrl,omitempty"`

	ResumeScore       *ResumeScoreResult `json:"resumeScore,omitempty"`
	ResumeScoreStatus string             `json:"resumeScoreStatus,omitempty"`
}

// ScorePending reports whether the background scoring run has not reached a
// terminal state yet.
func (a *Application) ScorePending() bool {
	return a.ResumeScoreStatus != ScoreStatusCompleted && a.ResumeScoreStatus != ScoreStatusFailed
}

// ScoreCompleted reports whether scoring finished successfully and
// ResumeScore is populated.
func (a *Application) ScoreCompleted() bool {
	return a.ResumeScoreStatus == ScoreStatusCompleted
}
