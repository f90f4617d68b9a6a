package cli

import (
	"context"
	"errors"

	"github.com/dossier-labs/dossier-cli/internal/core/domain"
)

// mockResearchService is a configurable test double for the research port.
type mockResearchService struct {
	answer     *domain.Answer
	askAnswer  *domain.Answer
	promptSet  *domain.PromptSet
	err        error
	lastKey    string
	lastMethod string
}

func (m *mockResearchService) Research(_ context.Context, key string) (*domain.Answer, error) {
	m.lastKey = key
	m.lastMethod = "research"
	if m.err != nil {
		return nil, m.err
	}
	return m.answer, nil
}

func (m *mockResearchService) Ask(_ context.Context, key string) (*domain.Answer, error) {
	m.lastKey = key
	m.lastMethod = "ask"
	if m.err != nil {
		return nil, m.err
	}
	if m.askAnswer != nil {
		return m.askAnswer, nil
	}
	return m.answer, nil
}

func (m *mockResearchService) Prompts() (*domain.PromptSet, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.promptSet == nil {
		return nil, errors.New("no prompt set configured")
	}
	return m.promptSet, nil
}

// setupTestServices installs a default mock service and returns a
// cleanup func restoring the previous one.
func setupTestServices() (*mockResearchService, func()) {
	mock := &mockResearchService{
		answer: &domain.Answer{
			Key:     "REVENUE",
			Queries: []string{"q1", "q2", "q3"},
			Response: &domain.SearchResponse{
				Results: []domain.Result{
					{ID: "doc1", URI: "gs://deals/Annual%20Report.pdf", Snippets: []string{"Revenue grew 12%"}},
					{ID: "doc2", Title: "Market Study"},
				},
				Summary: &domain.Summary{
					Text: "Revenue reached 120M in 2025.",
					Citations: []domain.Citation{
						{Sources: []domain.CitationSource{{ReferenceID: "doc1", URI: "gs://deals/Annual%20Report.pdf"}}},
					},
				},
			},
		},
	}

	old := researchService
	researchService = mock

	return mock, func() {
		researchService = old
		rootCmd.SetArgs(nil)
	}
}
