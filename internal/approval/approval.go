// Package approval applies human review decisions to tailored resume drafts.
// The workflow is a single transition out of pending: a draft is decided
// exactly once, and a changes-requested draft is superseded by a revision
// rather than mutated.
package approval

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yamshy/resume-assistant/internal/types"
)

// InvalidDecisionError is returned when a decision cannot be applied to a draft
type InvalidDecisionError struct {
	Message string
}

func (e *InvalidDecisionError) Error() string {
	return fmt.Sprintf("invalid decision: %s", e.Message)
}

// Apply records a decision on a pending draft, mutating it in place.
// Drafts that have already been decided reject further decisions.
func Apply(resume *types.TailoredResume, status types.Status, reviewer, notes string) error {
	if resume == nil {
		return &InvalidDecisionError{Message: "resume is required"}
	}
	if !status.IsDecided() {
		return &InvalidDecisionError{Message: fmt.Sprintf("%q is not a decision status", status)}
	}
	if resume.Status != types.StatusPending {
		return &InvalidDecisionError{
			Message: fmt.Sprintf("draft %s is %s, only pending drafts accept a decision", resume.ID, resume.Status),
		}
	}

	resume.Status = status
	resume.Decision = &types.Decision{
		Status:    status,
		Reviewer:  reviewer,
		Notes:     notes,
		DecidedAt: time.Now().UTC(),
	}

	return nil
}

// Revise creates the successor draft for a changes-requested draft.
// The new draft starts pending at version+1 and the predecessor records the
// successor's id.
func Revise(predecessor *types.TailoredResume, markdown string) (*types.TailoredResume, error) {
	if predecessor == nil {
		return nil, &InvalidDecisionError{Message: "predecessor is required"}
	}
	if predecessor.Status != types.StatusChangesRequested {
		return nil, &InvalidDecisionError{
			Message: fmt.Sprintf("draft %s is %s, only changes-requested drafts can be revised", predecessor.ID, predecessor.Status),
		}
	}
	if predecessor.SupersededBy != nil {
		return nil, &InvalidDecisionError{
			Message: fmt.Sprintf("draft %s is already superseded by %s; revise the successor instead", predecessor.ID, *predecessor.SupersededBy),
		}
	}

	successor := &types.TailoredResume{
		ID:          uuid.New(),
		JobAnalysis: predecessor.JobAnalysis,
		MatchResult: predecessor.MatchResult,
		Markdown:    markdown,
		Status:      types.StatusPending,
		Version:     predecessor.Version + 1,
		CreatedAt:   time.Now().UTC(),
	}

	id := successor.ID
	predecessor.SupersededBy = &id

	return successor, nil
}
