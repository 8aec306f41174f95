// Package export writes approved resume drafts out of the store, either as a
// markdown file or as a PDF rendered by headless Chrome. Drafts that have not
// been approved are refused.
package export

import (
	"context"
	"fmt"
	"os"

	"github.com/yamshy/resume-assistant/internal/types"
)

// NotApprovedError is returned when exporting a draft that is not approved
type NotApprovedError struct {
	Status types.Status
}

func (e *NotApprovedError) Error() string {
	return fmt.Sprintf("draft is %s; only approved drafts can be exported", e.Status)
}

// checkApproved guards every export path
func checkApproved(resume *types.TailoredResume) error {
	if resume == nil {
		return fmt.Errorf("resume is required")
	}
	if resume.Status != types.StatusApproved {
		return &NotApprovedError{Status: resume.Status}
	}
	return nil
}

// Markdown writes the approved draft's markdown to the given path
func Markdown(resume *types.TailoredResume, path string) error {
	if err := checkApproved(resume); err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(resume.Markdown), 0o644); err != nil {
		return fmt.Errorf("failed to write markdown export: %w", err)
	}
	return nil
}

// PDF renders the approved draft to PDF via headless Chrome and writes it to path
func PDF(ctx context.Context, resume *types.TailoredResume, path string) error {
	if err := checkApproved(resume); err != nil {
		return err
	}

	html := buildHTML(resume)
	pdf, err := renderPDF(ctx, html)
	if err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}

	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF export: %w", err)
	}
	return nil
}
