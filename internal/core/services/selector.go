package services

import (
	"github.com/dossier-labs/dossier-cli/internal/core/domain"
)

// Quality heuristic weights. Tuned values carried over unchanged from the
// production behaviour; do not assume they generalise.
const (
	resultWeight   = 2
	summaryWeight  = 50
	citationWeight = 10
)

// ScoreResponse computes the quality score for one response:
// 2 per result document, 50 when a summary text is present, 10 per
// citation entry on the summary metadata.
func ScoreResponse(resp *domain.SearchResponse) int {
	score := resultWeight * resp.ResultCount()
	if resp.SummaryText() != "" {
		score += summaryWeight
	}
	score += citationWeight * resp.CitationCount()
	return score
}

// SelectBest returns the response with the strictly greatest score,
// skipping absent entries. Ties keep the first response seen. A response
// must score above zero to be selected; nil is returned when no entry
// qualifies.
func SelectBest(responses []*domain.SearchResponse) *domain.SearchResponse {
	var best *domain.SearchResponse
	bestScore := 0

	for _, resp := range responses {
		if resp == nil {
			continue
		}
		if score := ScoreResponse(resp); score > bestScore {
			bestScore = score
			best = resp
		}
	}

	return best
}
