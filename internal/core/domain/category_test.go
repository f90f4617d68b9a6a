package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseCategory known tags map to themselves, anything else is generic
func TestParseCategory(t *testing.T) {
	tests := []struct {
		key  string
		want Category
	}{
		{"REVENUE", CategoryRevenue},
		{"revenue", CategoryRevenue},
		{" gross_margin ", CategoryMargin},
		{"COMPETITION", CategoryCompetition},
		{"OPERATION", CategoryOperation},
		{"KEY_PERSON", CategoryKeyPerson},
		{"MARKET", CategoryMarket},
		{"COMPANY_OVERVIEW", CategoryOverview},
		{"SOMETHING_ELSE", CategoryGeneric},
		{"", CategoryGeneric},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCategory(tt.key), "key %q", tt.key)
	}
}

// TestCategory_Terms categories with tables get them; generic is empty
func TestCategory_Terms(t *testing.T) {
	revenue := CategoryRevenue.Terms()
	assert.NotEmpty(t, revenue.Synonyms)
	assert.NotEmpty(t, revenue.TechnicalTerms)
	assert.NotEmpty(t, revenue.ShortQuery)
	assert.NotEmpty(t, revenue.PriorityTerms)

	// Market carries priority terms only; the generator falls back to the
	// generic defaults for the other fields.
	market := CategoryMarket.Terms()
	assert.Empty(t, market.TechnicalTerms)
	assert.Empty(t, market.ShortQuery)
	assert.NotEmpty(t, market.PriorityTerms)

	generic := CategoryGeneric.Terms()
	assert.Empty(t, generic.Synonyms)
	assert.Empty(t, generic.TechnicalTerms)
	assert.Empty(t, generic.ShortQuery)
	assert.Empty(t, generic.PriorityTerms)
}
