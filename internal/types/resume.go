// Package types provides type definitions for structured data used throughout the resume-assistant system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the approval state of a tailored resume draft
type Status string

// Status values for tailored resume drafts
const (
	// StatusPending is the initial state of every draft; the only state that accepts a decision
	StatusPending Status = "pending"
	// StatusApproved marks a draft as cleared for export
	StatusApproved Status = "approved"
	// StatusRejected marks a draft as discarded
	StatusRejected Status = "rejected"
	// StatusChangesRequested marks a draft as needing revision; a successor draft supersedes it
	StatusChangesRequested Status = "changes_requested"
)

// IsValid reports whether s is one of the known status values
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusChangesRequested:
		return true
	}
	return false
}

// IsDecided reports whether s is a post-decision state
func (s Status) IsDecided() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusChangesRequested
}

// TailoredResume represents a rendered resume draft awaiting human approval
type TailoredResume struct {
	ID           uuid.UUID    `json:"id"`
	JobAnalysis  *JobAnalysis `json:"job_analysis"`
	MatchResult  *MatchResult `json:"match_result"`
	Markdown     string       `json:"markdown"`
	Status       Status       `json:"status"`
	Version      int          `json:"version"`
	Decision     *Decision    `json:"decision,omitempty"`
	SupersededBy *uuid.UUID   `json:"superseded_by,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Decision represents the terminal approval decision applied to a draft
type Decision struct {
	Status    Status    `json:"status"` // approved, rejected, or changes_requested
	Reviewer  string    `json:"reviewer,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	DecidedAt time.Time `json:"decided_at"`
}

// ResumeSummary is the listing view of a stored draft
type ResumeSummary struct {
	ID        uuid.UUID `json:"id"`
	Company   string    `json:"company"`
	RoleTitle string    `json:"role_title"`
	Status    Status    `json:"status"`
	Score     float64   `json:"score"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}

// Summary returns the listing view of the draft
func (r *TailoredResume) Summary() ResumeSummary {
	s := ResumeSummary{
		ID:        r.ID,
		Status:    r.Status,
		Version:   r.Version,
		CreatedAt: r.CreatedAt,
	}
	if r.JobAnalysis != nil {
		s.Company = r.JobAnalysis.Company
		s.RoleTitle = r.JobAnalysis.RoleTitle
	}
	if r.MatchResult != nil {
		s.Score = r.MatchResult.OverallScore
	}
	return s
}
