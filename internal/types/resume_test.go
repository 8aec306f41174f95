package types

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusApproved.IsValid())
	assert.True(t, StatusRejected.IsValid())
	assert.True(t, StatusChangesRequested.IsValid())
	assert.False(t, Status("draft").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatus_IsDecided(t *testing.T) {
	assert.False(t, StatusPending.IsDecided())
	assert.True(t, StatusApproved.IsDecided())
	assert.True(t, StatusRejected.IsDecided())
	assert.True(t, StatusChangesRequested.IsDecided())
}

func TestTailoredResume_Summary(t *testing.T) {
	id := uuid.New()
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	resume := &TailoredResume{
		ID: id,
		JobAnalysis: &JobAnalysis{
			Company:   "Acme",
			RoleTitle: "Platform Engineer",
		},
		MatchResult: &MatchResult{OverallScore: 0.75},
		Status:      StatusPending,
		Version:     1,
		CreatedAt:   created,
	}

	summary := resume.Summary()

	assert.Equal(t, id, summary.ID)
	assert.Equal(t, "Acme", summary.Company)
	assert.Equal(t, "Platform Engineer", summary.RoleTitle)
	assert.Equal(t, StatusPending, summary.Status)
	assert.Equal(t, 0.75, summary.Score)
	assert.Equal(t, 1, summary.Version)
	assert.Equal(t, created, summary.CreatedAt)
}

func TestTailoredResume_Summary_NilArtifacts(t *testing.T) {
	resume := &TailoredResume{ID: uuid.New(), Status: StatusPending, Version: 1}

	summary := resume.Summary()

	assert.Empty(t, summary.Company)
	assert.Zero(t, summary.Score)
}

func TestMatchResult_MatchedSkills_Deduplicates(t *testing.T) {
	result := &MatchResult{
		Requirements: []RequirementMatch{
			{Requirement: Requirement{Skill: "Go"}, Matched: true, ProfileSkills: []string{"Go"}},
			{Requirement: Requirement{Skill: "Microservices"}, Matched: true, ProfileSkills: []string{"Go", "gRPC"}},
		},
		NiceToHaves: []RequirementMatch{
			{Requirement: Requirement{Skill: "gRPC"}, Matched: true, ProfileSkills: []string{"gRPC"}},
		},
	}

	assert.Equal(t, []string{"Go", "gRPC"}, result.MatchedSkills())
}

func TestMatchResult_MissingRequirements(t *testing.T) {
	result := &MatchResult{
		Requirements: []RequirementMatch{
			{Requirement: Requirement{Skill: "Go"}, Matched: true},
			{Requirement: Requirement{Skill: "Rust"}, Matched: false},
		},
	}

	missing := result.MissingRequirements()

	assert.Len(t, missing, 1)
	assert.Equal(t, "Rust", missing[0].Skill)
}
