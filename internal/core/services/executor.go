package services

import (
	"context"

	"github.com/panjf2000/ants/v2"

	"github.com/dossier-labs/dossier-cli/internal/core/domain"
	"github.com/dossier-labs/dossier-cli/internal/core/ports/driven"
	"github.com/dossier-labs/dossier-cli/internal/logger"
)

// maxConcurrentSearches bounds the fan-out worker pool. The research path
// issues exactly this many variants, so the pool never queues.
const maxConcurrentSearches = 3

// Executor issues search requests concurrently against the backend and
// collects outcomes as they complete. A failed request is logged and
// yields an absent (nil) slot; siblings are unaffected and nothing is
// retried or cancelled.
type Executor struct {
	engine driven.SearchEngine
	pool   *ants.Pool
}

// NewExecutor creates an executor with a bounded worker pool.
func NewExecutor(engine driven.SearchEngine) (*Executor, error) {
	pool, err := ants.NewPool(maxConcurrentSearches)
	if err != nil {
		return nil, err
	}
	return &Executor{engine: engine, pool: pool}, nil
}

// ExecuteAll runs every request through the pool and returns one outcome
// per request in COMPLETION order, not submission order. Callers must not
// assume positional correspondence with the request slice.
func (e *Executor) ExecuteAll(ctx context.Context, requests []domain.SearchRequest) []*domain.SearchResponse {
	outcomes := make(chan *domain.SearchResponse, len(requests))

	for _, req := range requests {
		req := req
		submitErr := e.pool.Submit(func() {
			resp, err := e.engine.Search(ctx, req)
			if err != nil {
				logger.Warn("search request failed: %v", err)
				outcomes <- nil
				return
			}
			outcomes <- resp
		})
		if submitErr != nil {
			// Keep one outcome per request even when the pool refuses work.
			logger.Warn("submit search request: %v", submitErr)
			outcomes <- nil
		}
	}

	responses := make([]*domain.SearchResponse, 0, len(requests))
	for range requests {
		responses = append(responses, <-outcomes)
	}
	return responses
}

// Close releases the worker pool.
func (e *Executor) Close() {
	e.pool.Release()
}
