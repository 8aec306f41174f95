package analysis

import "fmt"

// AgentError represents a failure from the external analysis agent
type AgentError struct {
	Message string
	Cause   error
}

func (e *AgentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("agent call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("agent call failed: %s", e.Message)
}

func (e *AgentError) Unwrap() error {
	return e.Cause
}

// ParseError represents an error parsing the agent response
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
