package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dossier-labs/dossier-cli/internal/core/domain"
)

func TestView_Empty(t *testing.T) {
	v := NewView(nil)

	out := v.View()

	assert.Contains(t, out, "Available prompts")
	assert.Contains(t, out, "No prompts configured.")
}

func TestView_GroupsBySection(t *testing.T) {
	set, err := domain.NewPromptSet(
		map[string]domain.PromptDefinition{
			"revenue": {Prompt: "Revenue?"},
			"market":  {Prompt: "Market?"},
		},
		map[string]domain.PromptDefinition{
			"conclusion": {Prompt: "Case?"},
		},
	)
	require.NoError(t, err)

	v := NewView(nil)
	v.SetPrompts(set)

	out := v.View()

	assert.Contains(t, out, "Research")
	assert.Contains(t, out, "MARKET")
	assert.Contains(t, out, "REVENUE")
	assert.Contains(t, out, "Synthesis")
	assert.Contains(t, out, "CONCLUSION")
}

func TestView_FilterNarrowsListing(t *testing.T) {
	set, err := domain.NewPromptSet(
		map[string]domain.PromptDefinition{
			"revenue": {Prompt: "Revenue?"},
			"market":  {Prompt: "Market?"},
		},
		map[string]domain.PromptDefinition{
			"conclusion": {Prompt: "Case?"},
		},
	)
	require.NoError(t, err)

	v := NewView(nil)
	v.SetPrompts(set)
	v.SetFilter("rev")

	out := v.View()

	assert.Contains(t, out, "REVENUE")
	assert.NotContains(t, out, "MARKET")
	assert.NotContains(t, out, "Synthesis")
}

func TestView_FilterNoMatches(t *testing.T) {
	set, err := domain.NewPromptSet(
		map[string]domain.PromptDefinition{
			"revenue": {Prompt: "Revenue?"},
		},
		nil,
	)
	require.NoError(t, err)

	v := NewView(nil)
	v.SetPrompts(set)
	v.SetFilter("litigation")

	out := v.View()

	assert.Contains(t, out, `No prompts match "LITIGATION".`)
	assert.NotContains(t, out, "REVENUE")
}

func TestView_EmptyFilterShowsEverything(t *testing.T) {
	set, err := domain.NewPromptSet(
		map[string]domain.PromptDefinition{
			"revenue": {Prompt: "Revenue?"},
		},
		nil,
	)
	require.NoError(t, err)

	v := NewView(nil)
	v.SetPrompts(set)
	v.SetFilter("rev")
	v.SetFilter("  ")

	out := v.View()

	assert.Contains(t, out, "REVENUE")
}

func TestView_OmitsEmptySections(t *testing.T) {
	set, err := domain.NewPromptSet(
		map[string]domain.PromptDefinition{
			"revenue": {Prompt: "Revenue?"},
		},
		nil,
	)
	require.NoError(t, err)

	v := NewView(nil)
	v.SetPrompts(set)

	out := v.View()

	assert.Contains(t, out, "Research")
	assert.NotContains(t, out, "Synthesis")
}
