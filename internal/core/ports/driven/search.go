package driven

import (
	"context"

	"github.com/dossier-labs/dossier-cli/internal/core/domain"
)

// SearchEngine is the hosted search and summarisation backend.
// The engine owns authentication, the wire format and rate limiting;
// core only sees the typed domain contract.
type SearchEngine interface {
	// Search executes one fully-specified request and returns the typed
	// response. Implementations perform no retries; a failed request
	// surfaces as a single error.
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error)
}
