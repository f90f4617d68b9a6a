package driven

import "github.com/dossier-labs/dossier-cli/internal/core/domain"

// PromptSource provides access to the loaded prompt configuration.
// Implementations may load definitions from files or embed them; the
// returned set is immutable between reloads.
type PromptSource interface {
	// Prompts returns the current prompt set. The first call loads the
	// configuration; later calls return the cached set until Reload.
	Prompts() (*domain.PromptSet, error)

	// Reload discards the cached set, forcing a fresh load on next access.
	// A failed reload keeps the previous set available.
	Reload()
}
