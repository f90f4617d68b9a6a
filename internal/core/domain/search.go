package domain

// RequestProfile bundles the fixed request parameters for one search path.
type RequestProfile struct {
	// PageSize caps the number of result documents returned.
	PageSize int64

	// MaxSnippetCount caps extracted snippets per result.
	MaxSnippetCount int64

	// SummaryResultCount is how many documents feed the generated summary.
	SummaryResultCount int64

	// SpellCorrection enables automatic spell correction.
	SpellCorrection bool

	// SafeSearch enables safe-search filtering.
	SafeSearch bool
}

// The two request profiles in use. Deep is the fan-out research path,
// Direct is the single synchronous ask path.
var (
	ProfileDeep = RequestProfile{
		PageSize:           25,
		MaxSnippetCount:    5,
		SummaryResultCount: 20,
		SpellCorrection:    true,
		SafeSearch:         true,
	}

	ProfileDirect = RequestProfile{
		PageSize:           10,
		MaxSnippetCount:    3,
		SummaryResultCount: 10,
	}
)

// SearchRequest is a fully-specified backend search request. Building one
// is pure data construction; the search adapter owns the wire translation.
type SearchRequest struct {
	// Query is the (possibly enriched) query string.
	Query string

	// Preamble is the system prompt parameterising summary generation.
	Preamble string

	// Profile carries the fixed sizing and correction options.
	Profile RequestProfile
}

// NewSearchRequest builds a request for query under the given profile.
// Query expansion is always automatic; snippet extraction and cited
// summaries are always on.
func NewSearchRequest(query, preamble string, profile RequestProfile) SearchRequest {
	return SearchRequest{
		Query:    query,
		Preamble: preamble,
		Profile:  profile,
	}
}

// SearchResponse is the typed view of one backend response. Absence is
// modelled in the type (nil Summary, empty slices) so callers never probe
// for attribute existence.
type SearchResponse struct {
	// Results are the returned documents, in backend rank order.
	Results []Result

	// Summary is the generated answer, when the backend produced one.
	Summary *Summary
}

// ResultCount returns the number of result documents.
func (r *SearchResponse) ResultCount() int {
	return len(r.Results)
}

// SummaryText returns the generated summary text, or "" without a summary.
func (r *SearchResponse) SummaryText() string {
	if r.Summary == nil {
		return ""
	}
	return r.Summary.Text
}

// CitationCount returns the number of citation entries on the summary
// metadata, 0 when there is no summary or no citations.
func (r *SearchResponse) CitationCount() int {
	if r.Summary == nil {
		return 0
	}
	return len(r.Summary.Citations)
}

// Result is one returned document.
type Result struct {
	// ID is the backend document identifier citations resolve against.
	ID string

	// URI locates the source object (e.g. a gs:// path). May be empty.
	URI string

	// Title is the document title from structured data. May be empty.
	Title string

	// Name is the structured-data name field. May be empty.
	Name string

	// Snippets are the extracted passages, most relevant first.
	Snippets []string
}

// Summary is the backend-generated answer attached to a response.
type Summary struct {
	// Text is the generated summary. May be empty when generation was
	// skipped; SkippedReasons then says why.
	Text string

	// Citations are the evidence units backing the text.
	Citations []Citation

	// SkippedReasons reports why the backend declined to summarise.
	SkippedReasons []string
}

// Citation is one unit of evidence referencing source documents.
type Citation struct {
	Sources []CitationSource
}

// CitationSource points at a single source document, by reference id
// resolvable against the response's results, by direct URI, or both.
type CitationSource struct {
	// ReferenceID matches a Result.ID when resolvable. May be empty.
	ReferenceID string

	// URI is the direct source location. May be empty.
	URI string
}
