// Package extraction derives the flat requirement list a job position is
// scored against from the position record's skill-configuration fields.
package extraction

import (
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

// ExtractRequirements flattens a job posting's skill configuration into a
// deduplicated, order-stable list of requirement phrases.
//
// The three configuration shapes are not mutually exclusive; a record may
// carry any combination and every present field contributes, in a fixed
// order: assessment configuration first, then structured required skills,
// then the legacy flat requirement list. Duplicates keep their first
// occurrence. Entries that are empty after trimming are dropped; kept
// entries retain their original spelling.
//
// A record with no skill fields at all yields an empty list. The scorer owns
// the guard against scoring an empty list.
func ExtractRequirements(job *types.JobPosting) []string {
	var collected []string

	if cfg := job.AssessmentConfiguration; cfg != nil {
		collected = append(collected, cfg.SelectedTechnicalSubSkills...)
		collected = append(collected, cfg.SelectedSoftSkillsSubAreas...)
		collected = append(collected, splitLines(cfg.CustomTechnicalSkills)...)
		collected = append(collected, splitLines(cfg.CustomSoftSkills)...)
	}

	if skills := job.RequiredSkills; skills != nil {
		collected = append(collected, skills.Technical...)
		collected = append(collected, skills.SoftSkills...)
		collected = append(collected, skills.Software...)
	}

	collected = append(collected, job.Requirements...)

	seen := make(map[string]bool, len(collected))
	requirements := make([]string, 0, len(collected))
	for _, req := range collected {
		if strings.TrimSpace(req) == "" {
			continue
		}
		if seen[req] {
			continue
		}
		seen[req] = true
		requirements = append(requirements, req)
	}

	return requirements
}

// splitLines splits a newline-delimited custom skill field into entries,
// dropping blank lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
