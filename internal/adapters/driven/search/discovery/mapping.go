package discovery

import (
	"encoding/json"
	"path"

	discoveryengine "google.golang.org/api/discoveryengine/v1"

	"github.com/dossier-labs/dossier-cli/internal/core/domain"
)

// derivedData is the subset of a document's derived struct data the CLI
// consumes. The backend stores the source link, display title and
// extracted snippets here as loosely typed JSON.
type derivedData struct {
	Link     string `json:"link"`
	Title    string `json:"title"`
	Snippets []struct {
		Snippet       string `json:"snippet"`
		SnippetStatus string `json:"snippet_status"`
	} `json:"snippets"`
}

// mapResponse converts an API search response into domain types.
func mapResponse(resp *discoveryengine.GoogleCloudDiscoveryengineV1SearchResponse) *domain.SearchResponse {
	if resp == nil {
		return &domain.SearchResponse{}
	}

	out := &domain.SearchResponse{
		Results: make([]domain.Result, 0, len(resp.Results)),
	}

	for _, r := range resp.Results {
		out.Results = append(out.Results, mapResult(r))
	}

	if resp.Summary != nil {
		out.Summary = mapSummary(resp.Summary)
	}

	return out
}

func mapResult(r *discoveryengine.GoogleCloudDiscoveryengineV1SearchResponseSearchResult) domain.Result {
	result := domain.Result{ID: r.Id}

	doc := r.Document
	if doc == nil {
		return result
	}

	if result.ID == "" {
		result.ID = doc.Id
	}
	result.Name = doc.Name

	var derived derivedData
	if len(doc.DerivedStructData) > 0 {
		// Best effort: malformed derived data just yields a bare result
		_ = json.Unmarshal(doc.DerivedStructData, &derived)
	}

	result.URI = derived.Link
	result.Title = derived.Title

	for _, s := range derived.Snippets {
		if s.Snippet == "" {
			continue
		}
		result.Snippets = append(result.Snippets, s.Snippet)
	}

	return result
}

func mapSummary(s *discoveryengine.GoogleCloudDiscoveryengineV1SearchResponseSummary) *domain.Summary {
	summary := &domain.Summary{
		Text:           s.SummaryText,
		SkippedReasons: s.SummarySkippedReasons,
	}

	meta := s.SummaryWithMetadata
	if meta == nil {
		return summary
	}

	if summary.Text == "" {
		summary.Text = meta.Summary
	}

	if meta.CitationMetadata == nil {
		return summary
	}

	for _, c := range meta.CitationMetadata.Citations {
		citation := domain.Citation{}
		for _, src := range c.Sources {
			citation.Sources = append(citation.Sources, mapCitationSource(src, meta.References))
		}
		summary.Citations = append(summary.Citations, citation)
	}

	return summary
}

// mapCitationSource resolves a citation source's reference index to the
// referenced document's id and uri. The reference id is the final path
// segment of the document resource name.
func mapCitationSource(
	src *discoveryengine.GoogleCloudDiscoveryengineV1SearchResponseSummaryCitationSource,
	refs []*discoveryengine.GoogleCloudDiscoveryengineV1SearchResponseSummaryReference,
) domain.CitationSource {
	idx := int(src.ReferenceIndex)
	if idx < 0 || idx >= len(refs) {
		return domain.CitationSource{}
	}

	ref := refs[idx]
	out := domain.CitationSource{URI: ref.Uri}
	if ref.Document != "" {
		out.ReferenceID = path.Base(ref.Document)
	}

	return out
}
