package ingest

import "fmt"

// EmptyPostingError is returned when a posting contains no usable text after cleaning
type EmptyPostingError struct{}

func (e *EmptyPostingError) Error() string {
	return "job posting is empty after cleaning"
}

// ExtractionError represents a failure to extract text from HTML markup
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
