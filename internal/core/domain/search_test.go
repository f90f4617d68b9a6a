package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewSearchRequest profiles carry through unchanged
func TestNewSearchRequest(t *testing.T) {
	req := NewSearchRequest("helios revenue", "be precise", ProfileDeep)

	assert.Equal(t, "helios revenue", req.Query)
	assert.Equal(t, "be precise", req.Preamble)
	assert.Equal(t, int64(25), req.Profile.PageSize)
	assert.Equal(t, int64(5), req.Profile.MaxSnippetCount)
	assert.Equal(t, int64(20), req.Profile.SummaryResultCount)
	assert.True(t, req.Profile.SpellCorrection)
	assert.True(t, req.Profile.SafeSearch)
}

// TestRequestProfiles the direct path is smaller and plainer
func TestRequestProfiles(t *testing.T) {
	assert.Equal(t, int64(10), ProfileDirect.PageSize)
	assert.Equal(t, int64(3), ProfileDirect.MaxSnippetCount)
	assert.Equal(t, int64(10), ProfileDirect.SummaryResultCount)
	assert.False(t, ProfileDirect.SpellCorrection)
	assert.False(t, ProfileDirect.SafeSearch)
}

// TestSearchResponse_Accessors absence is typed, not probed
func TestSearchResponse_Accessors(t *testing.T) {
	empty := &SearchResponse{}
	assert.Equal(t, 0, empty.ResultCount())
	assert.Equal(t, "", empty.SummaryText())
	assert.Equal(t, 0, empty.CitationCount())

	full := &SearchResponse{
		Results: []Result{{ID: "a"}, {ID: "b"}},
		Summary: &Summary{
			Text:      "generated answer",
			Citations: []Citation{{}, {}, {}},
		},
	}
	assert.Equal(t, 2, full.ResultCount())
	assert.Equal(t, "generated answer", full.SummaryText())
	assert.Equal(t, 3, full.CitationCount())
}
