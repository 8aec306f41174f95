package approval

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamshy/resume-assistant/internal/types"
)

func pendingDraft() *types.TailoredResume {
	return &types.TailoredResume{
		ID:        uuid.New(),
		Markdown:  "# Draft",
		Status:    types.StatusPending,
		Version:   1,
		CreatedAt: time.Now().UTC(),
	}
}

func TestApply_Approve(t *testing.T) {
	draft := pendingDraft()

	err := Apply(draft, types.StatusApproved, "alex", "looks good")
	require.NoError(t, err)

	assert.Equal(t, types.StatusApproved, draft.Status)
	require.NotNil(t, draft.Decision)
	assert.Equal(t, types.StatusApproved, draft.Decision.Status)
	assert.Equal(t, "alex", draft.Decision.Reviewer)
	assert.Equal(t, "looks good", draft.Decision.Notes)
	assert.False(t, draft.Decision.DecidedAt.IsZero())
}

func TestApply_RejectAndChangesRequested(t *testing.T) {
	for _, status := range []types.Status{types.StatusRejected, types.StatusChangesRequested} {
		draft := pendingDraft()
		require.NoError(t, Apply(draft, status, "alex", ""))
		assert.Equal(t, status, draft.Status)
	}
}

func TestApply_DecisionIsTerminal(t *testing.T) {
	draft := pendingDraft()
	require.NoError(t, Apply(draft, types.StatusApproved, "alex", ""))

	err := Apply(draft, types.StatusRejected, "sam", "changed my mind")
	var invalidErr *InvalidDecisionError
	require.ErrorAs(t, err, &invalidErr)

	// The original decision is untouched
	assert.Equal(t, types.StatusApproved, draft.Status)
	assert.Equal(t, "alex", draft.Decision.Reviewer)
}

func TestApply_RejectsNonDecisionStatus(t *testing.T) {
	draft := pendingDraft()

	var invalidErr *InvalidDecisionError
	assert.ErrorAs(t, Apply(draft, types.StatusPending, "alex", ""), &invalidErr)
	assert.ErrorAs(t, Apply(draft, types.Status("published"), "alex", ""), &invalidErr)
	assert.Equal(t, types.StatusPending, draft.Status)
}

func TestRevise_CreatesSuccessor(t *testing.T) {
	draft := pendingDraft()
	draft.JobAnalysis = &types.JobAnalysis{Company: "Acme", RoleTitle: "SRE"}
	require.NoError(t, Apply(draft, types.StatusChangesRequested, "alex", "tone it down"))

	successor, err := Revise(draft, "# Revised draft")
	require.NoError(t, err)

	assert.NotEqual(t, draft.ID, successor.ID)
	assert.Equal(t, types.StatusPending, successor.Status)
	assert.Equal(t, 2, successor.Version)
	assert.Equal(t, "# Revised draft", successor.Markdown)
	assert.Equal(t, draft.JobAnalysis, successor.JobAnalysis)

	require.NotNil(t, draft.SupersededBy)
	assert.Equal(t, successor.ID, *draft.SupersededBy)
}

func TestRevise_RejectsSecondRevision(t *testing.T) {
	draft := pendingDraft()
	require.NoError(t, Apply(draft, types.StatusChangesRequested, "alex", ""))

	first, err := Revise(draft, "# First revision")
	require.NoError(t, err)

	_, err = Revise(draft, "# Competing revision")
	var invalidErr *InvalidDecisionError
	require.ErrorAs(t, err, &invalidErr)

	// The original backlink still points at the first successor
	require.NotNil(t, draft.SupersededBy)
	assert.Equal(t, first.ID, *draft.SupersededBy)
}

func TestRevise_OnlyChangesRequested(t *testing.T) {
	var invalidErr *InvalidDecisionError

	_, err := Revise(pendingDraft(), "# Draft")
	assert.ErrorAs(t, err, &invalidErr)

	approved := pendingDraft()
	require.NoError(t, Apply(approved, types.StatusApproved, "alex", ""))
	_, err = Revise(approved, "# Draft")
	assert.ErrorAs(t, err, &invalidErr)
}
