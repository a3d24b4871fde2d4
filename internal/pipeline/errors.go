// Package pipeline orchestrates background resume scoring: it fetches the
// job and profile records, runs extraction and scoring, and writes the
// result back onto the stored application record.
package pipeline

import "fmt"

// JobNotFoundError reports that the position ID did not resolve to a stored
// job record.
type JobNotFoundError struct {
	PositionID string
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("job position not found: %s", e.PositionID)
}

// ProfileNotFoundError reports that the user ID did not resolve to a stored
// candidate profile.
type ProfileNotFoundError struct {
	UserID string
}

func (e *ProfileNotFoundError) Error() string {
	return fmt.Sprintf("candidate profile not found: %s", e.UserID)
}

// ResumeTextMissingError reports a profile that exists but has no extracted
// resume text, so there is nothing to score.
type ResumeTextMissingError struct {
	UserID string
}

func (e *ResumeTextMissingError) Error() string {
	return fmt.Sprintf("no resume text available for user: %s", e.UserID)
}
