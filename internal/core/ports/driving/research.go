package driving

import (
	"context"

	"github.com/dossier-labs/dossier-cli/internal/core/domain"
)

// ResearchService executes pre-authored prompts against the backend.
type ResearchService interface {
	// Research runs the fan-out path: three query variants in parallel,
	// best response selected by the quality heuristic.
	// Returns domain.ErrUnknownPrompt for an unconfigured key and
	// domain.ErrNoUsableResult when every request failed.
	Research(ctx context.Context, key string) (*domain.Answer, error)

	// Ask runs the direct path: one synchronous request built from the
	// resolved prompt text, no variant generation.
	Ask(ctx context.Context, key string) (*domain.Answer, error)

	// Prompts exposes the loaded prompt set for listing and validation.
	Prompts() (*domain.PromptSet, error)
}
