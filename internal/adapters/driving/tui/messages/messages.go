// Package messages defines Bubbletea message types for the interactive
// session. Messages represent events flowing through the Elm architecture.
package messages

import (
	"github.com/dossier-labs/dossier-cli/internal/core/domain"
)

// PromptsLoaded carries the prompt set from the research service.
type PromptsLoaded struct {
	Set *domain.PromptSet
	Err error
}

// ResearchCompleted carries a finished research answer back to the model.
type ResearchCompleted struct {
	Answer *domain.Answer
	Err    error
}

// SessionState identifies the interactive session's current state.
type SessionState int

const (
	// StateAwaitingInput means the session is waiting for a prompt key.
	StateAwaitingInput SessionState = iota
	// StateExecuting means a research run is in flight.
	StateExecuting
	// StateTerminated means the user has ended the session.
	StateTerminated
)

// String returns the state name.
func (s SessionState) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting_input"
	case StateExecuting:
		return "executing"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
