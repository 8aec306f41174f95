// Package types provides type definitions for structured data used throughout the resume-assistant system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Profile represents the user's stored resume data
type Profile struct {
	Contact    Contact           `json:"contact" validate:"required"`
	Summary    string            `json:"summary,omitempty"`
	Experience []ExperienceEntry `json:"experience" validate:"dive"`
	Education  []Education       `json:"education,omitempty" validate:"dive"`
	Skills     []string          `json:"skills" validate:"required,min=1"`
}

// Contact represents the candidate's contact information
type Contact struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Website  string `json:"website,omitempty" validate:"omitempty,url"`
}

// ExperienceEntry represents a single position in the candidate's history
type ExperienceEntry struct {
	Company    string   `json:"company" validate:"required"`
	Role       string   `json:"role" validate:"required"`
	StartDate  string   `json:"start_date,omitempty"` // YYYY-MM
	EndDate    string   `json:"end_date,omitempty"`   // YYYY-MM or "present"
	Highlights []string `json:"highlights,omitempty"`
	Skills     []string `json:"skills,omitempty"`
}

// Education represents a degree or certification entry
type Education struct {
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Year        string `json:"year,omitempty"`
}

// Checksum returns a stable hex digest of the profile content.
// Used as part of the tailoring cache key so profile edits invalidate cached drafts.
func (p *Profile) Checksum() string {
	data, err := json.Marshal(p)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// AllSkills returns the union of the top-level skill list and per-experience skills
func (p *Profile) AllSkills() []string {
	seen := make(map[string]bool)
	skills := make([]string, 0, len(p.Skills))

	add := func(skill string) {
		if skill == "" || seen[skill] {
			return
		}
		seen[skill] = true
		skills = append(skills, skill)
	}

	for _, s := range p.Skills {
		add(s)
	}
	for _, exp := range p.Experience {
		for _, s := range exp.Skills {
			add(s)
		}
	}

	return skills
}
