// Package types provides type definitions for the records the resume scorer
// reads from and writes to the platform's key-value store.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobPosting represents a stored job position record. Only the
// requirement-bearing fields are modeled; the admin UI owns the rest of the
// record and this subsystem never writes it back.
//
// Every field is optional. Job records have accumulated three generations of
// skill configuration (assessment configuration, structured required skills,
// and a flat requirement list) and any subset may be present on a given
// record.
type JobPosting struct {
	ID                      string                   `json:"id,omitempty"`
	Title                   string                   `json:"title,omitempty"`
	AssessmentConfiguration *AssessmentConfiguration `json:"assessmentConfiguration,omitempty"`
	RequiredSkills          *RequiredSkills          `json:"requiredSkills,omitempty"`
	Requirements            []string                 `json:"requirements,omitempty"`
}

// AssessmentConfiguration is the admin-configured skill selection for a
// position. The custom fields hold one skill per line, entered free-form.
type AssessmentConfiguration struct {
	SelectedTechnicalSubSkills []string `json:"selectedTechnicalSubSkills,omitempty"`
	SelectedSoftSkillsSubAreas []string `json:"selectedSoftSkillsSubAreas,omitempty"`
	CustomTechnicalSkills      string   `json:"customTechnicalSkills,omitempty"`
	CustomSoftSkills           string   `json:"customSoftSkills,omitempty"`
}

// RequiredSkills is the older structured skill shape still present on legacy
// job records.
type RequiredSkills struct {
	Technical  []string `json:"technical,omitempty"`
	SoftSkills []string `json:"softSkills,omitempty"`
	Software   []string `json:"software,omitempty"`
}
