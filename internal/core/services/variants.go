package services

import (
	"strings"

	"github.com/dossier-labs/dossier-cli/internal/core/domain"
)

// variantCount is the fixed number of query variants per research run.
const variantCount = 3

// GenerateVariants derives the three retrieval strategies for a base query:
// synonym-enriched, technical-keyword-augmented, and short-form. Output is
// a pure function of the inputs and the static category tables; unknown
// categories degrade to the generic defaults.
func GenerateVariants(baseQuery string, category domain.Category) []string {
	table := category.Terms()

	variants := make([]string, 0, variantCount)
	variants = append(variants, enrichedVariant(baseQuery, table))
	variants = append(variants, technicalVariant(baseQuery, table))
	variants = append(variants, shortVariant(baseQuery, table))
	return variants
}

// enrichedVariant widens matched terms with their synonym expansion, then
// appends the category priority terms and the constant recency boost.
// The containment check is case-insensitive but replacement uses the cased
// table term, once; a differently-cased occurrence is left alone. These
// are tuned heuristics kept intact, not principled rewrites.
func enrichedVariant(baseQuery string, table domain.TermTable) string {
	enriched := baseQuery
	for _, syn := range table.Synonyms {
		if strings.Contains(strings.ToLower(enriched), strings.ToLower(syn.Term)) {
			enriched = strings.Replace(enriched, syn.Term, syn.Expansion, 1)
		}
	}

	if table.PriorityTerms != "" {
		enriched = enriched + " " + table.PriorityTerms
	}
	return enriched + " " + domain.RecencyBoost
}

// technicalVariant appends the category's fixed technical keywords, or the
// generic default string for unrecognised categories.
func technicalVariant(baseQuery string, table domain.TermTable) string {
	terms := table.TechnicalTerms
	if terms == "" {
		terms = domain.DefaultTechnicalTerms
	}
	return baseQuery + " " + terms
}

// shortVariant is the category's fixed short query; without one it falls
// back to the base query's first token plus the generic suffix.
func shortVariant(baseQuery string, table domain.TermTable) string {
	if table.ShortQuery != "" {
		return table.ShortQuery
	}

	first := ""
	if tokens := strings.Fields(baseQuery); len(tokens) > 0 {
		first = tokens[0]
	}
	return strings.TrimSpace(first + " " + domain.DefaultShortSuffix)
}
