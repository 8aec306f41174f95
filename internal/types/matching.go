// Package types provides type definitions for structured data used throughout the resume-assistant system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchResult represents the per-requirement scoring of a profile against a job analysis
type MatchResult struct {
	Requirements    []RequirementMatch `json:"requirements"`
	NiceToHaves     []RequirementMatch `json:"nice_to_haves,omitempty"`
	MatchedKeywords []string           `json:"matched_keywords,omitempty"`
	MissingKeywords []string           `json:"missing_keywords,omitempty"`
	OverallScore    float64            `json:"overall_score"` // 0.0 - 1.0
}

// RequirementMatch represents how a single job requirement scored against the profile
type RequirementMatch struct {
	Requirement   Requirement `json:"requirement"`
	Matched       bool        `json:"matched"`
	Score         float64     `json:"score"` // 0.0 - 1.0
	ProfileSkills []string    `json:"profile_skills,omitempty"`
}

// MatchedSkills returns the distinct profile skills that matched any requirement
func (m *MatchResult) MatchedSkills() []string {
	seen := make(map[string]bool)
	skills := make([]string, 0)

	for _, group := range [][]RequirementMatch{m.Requirements, m.NiceToHaves} {
		for _, rm := range group {
			for _, s := range rm.ProfileSkills {
				if !seen[s] {
					seen[s] = true
					skills = append(skills, s)
				}
			}
		}
	}

	return skills
}

// MissingRequirements returns the requirements with no profile skill match
func (m *MatchResult) MissingRequirements() []Requirement {
	missing := make([]Requirement, 0)
	for _, rm := range m.Requirements {
		if !rm.Matched {
			missing = append(missing, rm.Requirement)
		}
	}
	return missing
}
