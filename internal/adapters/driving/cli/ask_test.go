package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dossier-labs/dossier-cli/internal/core/domain"
)

func TestAskCmd_Use(t *testing.T) {
	assert.Equal(t, "ask [prompt-key]", askCmd.Use)
}

func TestAskCmd_RendersAnswer(t *testing.T) {
	mock, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "revenue"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "ask", mock.lastMethod)

	out := buf.String()
	assert.Contains(t, out, "ANSWER")
	assert.Contains(t, out, "Revenue reached 120M in 2025.")
	assert.Contains(t, out, "DETAILED SOURCES")
	assert.Contains(t, out, "RETRIEVED DOCUMENTS (2 found)")
}

func TestAskCmd_NoSummary(t *testing.T) {
	mock, cleanup := setupTestServices()
	defer cleanup()
	mock.askAnswer = &domain.Answer{
		Key: "MARKET",
		Response: &domain.SearchResponse{
			Results: []domain.Result{{ID: "doc1", Title: "Market Study"}},
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "market"})

	err := rootCmd.Execute()

	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, noSummaryGenerated)
	// Without citations, falls back to listing top results
	assert.Contains(t, out, "BASED ON DOCUMENTS (top search results)")
	assert.Contains(t, out, "Market Study")
}

func TestAskCmd_BackendError(t *testing.T) {
	mock, cleanup := setupTestServices()
	defer cleanup()
	mock.err = domain.ErrSearchUnavailable

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "revenue"})

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, domain.ErrSearchUnavailable)
}

func TestAskCmd_ErrorsWithoutServices(t *testing.T) {
	old := researchService
	researchService = nil
	defer func() {
		researchService = old
		rootCmd.SetArgs(nil)
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "revenue"})

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
