package domain

// Category selects which static term tables apply to query enrichment.
// Prompt keys double as category tags; unrecognised keys map to
// CategoryGeneric, which carries only the default tables.
type Category string

const (
	// CategoryRevenue covers turnover and revenue-evolution prompts.
	CategoryRevenue Category = "REVENUE"
	// CategoryCompetition covers competitive-landscape prompts.
	CategoryCompetition Category = "COMPETITION"
	// CategoryMargin covers gross-margin and cost-structure prompts.
	CategoryMargin Category = "GROSS_MARGIN"
	// CategoryOperation covers the acquisition/transaction prompts.
	CategoryOperation Category = "OPERATION"
	// CategoryKeyPerson covers management and key-people prompts.
	CategoryKeyPerson Category = "KEY_PERSON"
	// CategoryMarket covers market and sector prompts.
	CategoryMarket Category = "MARKET"
	// CategoryOverview covers company-presentation prompts.
	CategoryOverview Category = "COMPANY_OVERVIEW"
	// CategoryGeneric is the fallback for unrecognised prompt keys.
	CategoryGeneric Category = ""
)

// ParseCategory maps a prompt key to its category. Unknown keys fall back
// to CategoryGeneric rather than failing: enrichment degrades, the search
// still runs.
func ParseCategory(key string) Category {
	switch Category(NormaliseKey(key)) {
	case CategoryRevenue, CategoryCompetition, CategoryMargin,
		CategoryOperation, CategoryKeyPerson, CategoryMarket, CategoryOverview:
		return Category(NormaliseKey(key))
	default:
		return CategoryGeneric
	}
}

// SynonymExpansion replaces the first occurrence of Term in a base query
// with Expansion. Order within a table is significant and fixed.
type SynonymExpansion struct {
	Term      string
	Expansion string
}

// TermTable holds the static enrichment vocabulary for one category.
// Empty fields fall back to the generic defaults at generation time.
type TermTable struct {
	// Synonyms widen matching terms in the enriched variant.
	Synonyms []SynonymExpansion

	// TechnicalTerms is appended verbatim to form the technical variant.
	TechnicalTerms string

	// ShortQuery is the fixed short-form variant.
	ShortQuery string

	// PriorityTerms are appended to the enriched variant before the
	// recency boost suffix.
	PriorityTerms string
}

// Generic defaults used when a category table leaves a field empty.
const (
	// DefaultTechnicalTerms backs the technical variant for unrecognised
	// categories.
	DefaultTechnicalTerms = "target company annual report 2025"

	// DefaultShortSuffix is appended to the base query's first token when
	// no fixed short form exists for the category.
	DefaultShortSuffix = "target company 2025"

	// RecencyBoost is the constant suffix appended to every enriched
	// variant. It biases retrieval towards recent deal-room material.
	RecencyBoost = "deal room 2025 2024"
)

// termTables is the single consolidated category-configuration table.
// Both the variant generator and request enrichment read from here;
// nothing else defines per-category vocabulary.
var termTables = map[Category]TermTable{
	CategoryRevenue: {
		Synonyms: []SynonymExpansion{
			{Term: "revenue", Expansion: "revenue turnover sales income billings"},
			{Term: "growth", Expansion: "growth increase progression trajectory"},
		},
		TechnicalTerms: "target company revenue financials annual report 2025",
		ShortQuery:     "target company revenue 2025",
		PriorityTerms:  "financials revenue turnover 2025 2024",
	},
	CategoryCompetition: {
		Synonyms: []SynonymExpansion{
			{Term: "competition", Expansion: "competition competitors rivals market players"},
			{Term: "positioning", Expansion: "positioning strategy differentiation advantage"},
			{Term: "market", Expansion: "market sector industry segment ecosystem"},
		},
		TechnicalTerms: "target company competitive landscape market share 2025",
		ShortQuery:     "target company competitors market 2025",
		PriorityTerms:  "market competition competitive sector 2025",
	},
	CategoryMargin: {
		Synonyms: []SynonymExpansion{
			{Term: "margin", Expansion: "margin gross profitability profit"},
			{Term: "costs", Expansion: "costs expenses charges cost price"},
		},
		TechnicalTerms: "target company gross margin profitability cost structure",
		ShortQuery:     "target company margin profitability",
		PriorityTerms:  "margin profitability cost structure",
	},
	CategoryOperation: {
		Synonyms: []SynonymExpansion{
			{Term: "acquisition", Expansion: "acquisition buyout investment transaction deal"},
			{Term: "valuation", Expansion: "valuation value price amount assessment"},
		},
		TechnicalTerms: "target company acquisition transaction investment terms 2025",
		ShortQuery:     "target company acquisition deal 2025",
		PriorityTerms:  "acquisition transaction investment deal terms 2025",
	},
	CategoryKeyPerson: {
		Synonyms: []SynonymExpansion{
			{Term: "executives", Expansion: "executives management leadership team"},
			{Term: "profile", Expansion: "profile experience background track record"},
		},
		TechnicalTerms: "target company management executives organisation",
		ShortQuery:     "target company executives management",
		PriorityTerms:  "management team executives organisation chart",
	},
	CategoryMarket: {
		PriorityTerms: "market sector industry landscape outlook",
	},
	CategoryOverview: {
		PriorityTerms: "company overview profile presentation",
	},
}

// Terms returns the term table for the category. Unknown categories get
// the zero table; generation falls back to the generic defaults per field.
func (c Category) Terms() TermTable {
	return termTables[c]
}
