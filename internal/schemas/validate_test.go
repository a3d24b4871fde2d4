package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJobPosting_AllFieldsAbsent(t *testing.T) {
	// Records with none of the skill fields are valid; emptiness is handled
	// downstream by the extractor and scorer.
	assert.NoError(t, ValidateJobPosting([]byte(`{"id":"pos_001","title":"Backend Engineer"}`)))
}

func TestValidateJobPosting_FullShape(t *testing.T) {
	doc := `{
		"assessmentConfiguration": {
			"selectedTechnicalSubSkills": ["React"],
			"selectedSoftSkillsSubAreas": ["Communication"],
			"customTechnicalSkills": "GraphQL\nRedis",
			"customSoftSkills": "Mentoring"
		},
		"requiredSkills": {"technical": ["Go"], "softSkills": [], "software": ["Docker"]},
		"requirements": ["5+ years experience"]
	}`
	assert.NoError(t, ValidateJobPosting([]byte(doc)))
}

func TestValidateJobPosting_RequirementsWrongType(t *testing.T) {
	err := ValidateJobPosting([]byte(`{"requirements": "React, Team Leadership"}`))
	require.Error(t, err)

	var invalid *RecordInvalidError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "job-position", invalid.Kind)
	require.NotEmpty(t, invalid.Errors)
	assert.Equal(t, "requirements", invalid.Errors[0].Field)
}

func TestValidateJobPosting_MalformedJSON(t *testing.T) {
	err := ValidateJobPosting([]byte(`{"requirements": [`))
	require.Error(t, err)

	var invalid *RecordInvalidError
	assert.NotErrorAs(t, err, &invalid, "malformed JSON is a load failure, not a field-level one")
}

func TestValidateCandidateProfile_ResumeTextWrongType(t *testing.T) {
	err := ValidateCandidateProfile([]byte(`{"resume_text": 42}`))
	require.Error(t, err)

	var invalid *RecordInvalidError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "profile", invalid.Kind)
}

func TestValidateCandidateProfile_MissingResumeTextIsValid(t *testing.T) {
	// Absence is a pipeline-level failure with its own error kind; the
	// schema only rejects wrong types.
	assert.NoError(t, ValidateCandidateProfile([]byte(`{"resumeUrl":"https://example.com/cv.pdf"}`)))
}
