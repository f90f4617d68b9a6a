package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dossier-labs/dossier-cli/internal/core/domain"
	"github.com/dossier-labs/dossier-cli/internal/core/ports/driven"
	"github.com/dossier-labs/dossier-cli/internal/core/ports/driving"
	"github.com/dossier-labs/dossier-cli/internal/logger"
)

// Ensure ResearchService implements the interface.
var _ driving.ResearchService = (*ResearchService)(nil)

// ResearchService orchestrates prompt execution: prompt lookup, template
// resolution, variant fan-out and best-response selection.
type ResearchService struct {
	engine   driven.SearchEngine
	prompts  driven.PromptSource
	executor *Executor
}

// NewResearchService creates a research service over the given backend and
// prompt configuration.
func NewResearchService(engine driven.SearchEngine, prompts driven.PromptSource) (*ResearchService, error) {
	executor, err := NewExecutor(engine)
	if err != nil {
		return nil, fmt.Errorf("create executor: %w", err)
	}
	return &ResearchService{
		engine:   engine,
		prompts:  prompts,
		executor: executor,
	}, nil
}

// Research runs the fan-out path: three query variants issued in parallel,
// best response kept.
func (s *ResearchService) Research(ctx context.Context, key string) (*domain.Answer, error) {
	set, def, err := s.resolve(key)
	if err != nil {
		return nil, err
	}

	baseQuery := set.Query(def)
	preamble := set.SystemPrompt(def)
	category := domain.ParseCategory(def.Key)
	queries := GenerateVariants(baseQuery, category)

	execID := uuid.NewString()[:8]
	logger.Section("Research Execution")
	logger.Debug("[%s] prompt=%s category=%s", execID, def.Key, category)
	for i, q := range queries {
		logger.Debug("[%s] variant %d: %q", execID, i+1, q)
	}

	requests := make([]domain.SearchRequest, 0, len(queries))
	for _, query := range queries {
		requests = append(requests, domain.NewSearchRequest(query, preamble, domain.ProfileDeep))
	}

	responses := s.executor.ExecuteAll(ctx, requests)

	best := SelectBest(responses)
	if best == nil {
		logger.Info("[%s] no usable response among %d outcomes", execID, len(responses))
		return nil, domain.ErrNoUsableResult
	}
	logger.Info("[%s] selected response: %d results, score %d", execID, best.ResultCount(), ScoreResponse(best))

	return &domain.Answer{Key: def.Key, Queries: queries, Response: best}, nil
}

// Ask runs the direct path: one synchronous request, no variants.
func (s *ResearchService) Ask(ctx context.Context, key string) (*domain.Answer, error) {
	set, def, err := s.resolve(key)
	if err != nil {
		return nil, err
	}

	query := set.Query(def)
	req := domain.NewSearchRequest(query, set.SystemPrompt(def), domain.ProfileDirect)

	logger.Section("Direct Execution")
	logger.Debug("prompt=%s query=%q", def.Key, query)

	resp, err := s.engine.Search(ctx, req)
	if err != nil {
		logger.Warn("search request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrNoUsableResult, err)
	}

	return &domain.Answer{Key: def.Key, Queries: []string{query}, Response: resp}, nil
}

// Prompts exposes the loaded prompt set.
func (s *ResearchService) Prompts() (*domain.PromptSet, error) {
	return s.prompts.Prompts()
}

// Close releases the executor's worker pool.
func (s *ResearchService) Close() {
	s.executor.Close()
}

// resolve loads the prompt set and looks up a user-entered key.
func (s *ResearchService) resolve(key string) (*domain.PromptSet, domain.PromptDefinition, error) {
	set, err := s.prompts.Prompts()
	if err != nil {
		return nil, domain.PromptDefinition{}, fmt.Errorf("load prompts: %w", err)
	}

	def, ok := set.Lookup(key)
	if !ok {
		return nil, domain.PromptDefinition{}, fmt.Errorf("%w: %q", domain.ErrUnknownPrompt, domain.NormaliseKey(key))
	}
	return set, def, nil
}
