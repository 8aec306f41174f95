// Package types provides type definitions for structured data used throughout the resume-assistant system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobAnalysis represents the structured extraction of a raw job posting
type JobAnalysis struct {
	Company          string        `json:"company"`
	RoleTitle        string        `json:"role_title"`
	Seniority        string        `json:"seniority,omitempty"` // junior, mid, senior, staff, lead
	Responsibilities []string      `json:"responsibilities,omitempty"`
	Requirements     []Requirement `json:"requirements"`
	NiceToHaves      []Requirement `json:"nice_to_haves,omitempty"`
	Keywords         []string      `json:"keywords"`
}

// Requirement represents a single skill requirement with supporting evidence
type Requirement struct {
	Skill    string `json:"skill"`
	Level    string `json:"level,omitempty"`
	Evidence string `json:"evidence,omitempty"`
}
