package types

// CandidateProfile represents a stored candidate profile record. Only the
// fields the scorer consumes are modeled; profile management owns the rest.
type CandidateProfile struct {
	UserID     string `json:"userId,omitempty"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	ResumeURL  string `json:"resumeUrl,omitempty"`
	ResumeText string `json:"resume_text,omitempty"`
}
