package cli

import (
	"fmt"
	"strings"

	"github.com/dossier-labs/dossier-cli/internal/core/domain"
)

// Rendering limits. Research answers show more documents than direct
// answers because the deep profile retrieves more.
const (
	researchDocLimit   = 8
	directDocLimit     = 5
	snippetsPerDoc     = 2
	snippetMaxLen      = 150
	fallbackShowLimit  = 5
	noSummaryGenerated = "No summary was generated for this question."
)

// RenderResearch formats a deep-research answer: analysed documents
// with snippets, the generated summary and its cited sources.
func RenderResearch(answer *domain.Answer) string {
	var b strings.Builder

	resp := answer.Response
	fmt.Fprintf(&b, "%d documents analysed\n", resp.ResultCount())

	b.WriteString("\nRELEVANT DOCUMENTS\n")
	b.WriteString(strings.Repeat("-", 50) + "\n")
	writeDocumentList(&b, resp.Results, researchDocLimit, true)

	writeSummary(&b, resp)
	writeCitedSources(&b, resp)

	return b.String()
}

// RenderAsk formats a direct answer: the summary first, then the cited
// or fallback sources, then the retrieved documents.
func RenderAsk(answer *domain.Answer) string {
	var b strings.Builder

	resp := answer.Response
	writeSummary(&b, resp)
	writeCitedSources(&b, resp)
	writeDetailedSources(&b, resp)

	if resp.ResultCount() > 0 {
		fmt.Fprintf(&b, "\nRETRIEVED DOCUMENTS (%d found)\n", resp.ResultCount())
		b.WriteString(strings.Repeat("-", 40) + "\n")
		writeDocumentList(&b, resp.Results, directDocLimit, false)
	}

	return b.String()
}

func writeDocumentList(b *strings.Builder, results []domain.Result, limit int, withSnippets bool) {
	for i, result := range results {
		if i == limit {
			break
		}

		fmt.Fprintf(b, "%2d. %s\n", i+1, result.DisplayName())

		if !withSnippets {
			continue
		}
		for j, snippet := range result.Snippets {
			if j == snippetsPerDoc {
				break
			}
			fmt.Fprintf(b, "    > %s\n", truncate(snippet, snippetMaxLen))
		}
	}
}

func writeSummary(b *strings.Builder, resp *domain.SearchResponse) {
	b.WriteString("\nANSWER\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")

	text := resp.SummaryText()
	if text == "" {
		b.WriteString(noSummaryGenerated + "\n")
		if resp.Summary != nil && len(resp.Summary.SkippedReasons) > 0 {
			fmt.Fprintf(b, "(skipped: %s)\n", strings.Join(resp.Summary.SkippedReasons, ", "))
		}
		return
	}

	b.WriteString(text + "\n")
}

// writeCitedSources lists the documents the summary cites, deduplicated
// by display name. When the summary carries no citations, the first
// retrieved documents are listed instead.
func writeCitedSources(b *strings.Builder, resp *domain.SearchResponse) {
	cited := resp.CitedDocumentNames()

	if len(cited) == 0 {
		if resp.ResultCount() == 0 {
			return
		}
		b.WriteString("\nBASED ON DOCUMENTS (top search results)\n")
		b.WriteString(strings.Repeat("-", 40) + "\n")
		for i, result := range resp.Results {
			if i == fallbackShowLimit {
				break
			}
			fmt.Fprintf(b, "%d. %s\n", i+1, result.DisplayName())
		}
		return
	}

	b.WriteString("\nBASED ON DOCUMENTS\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for i, name := range cited {
		fmt.Fprintf(b, "%d. %s\n", i+1, name)
	}
}

// writeDetailedSources lists every citation source with its reference
// id, resolved document name and uri.
func writeDetailedSources(b *strings.Builder, resp *domain.SearchResponse) {
	if resp.Summary == nil || len(resp.Summary.Citations) == 0 {
		return
	}

	names := resp.DocumentNames()

	b.WriteString("\nDETAILED SOURCES\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	fmt.Fprintf(b, "Citations used: %d\n", len(resp.Summary.Citations))

	for i, citation := range resp.Summary.Citations {
		for _, source := range citation.Sources {
			name, ok := names[source.ReferenceID]
			if !ok {
				if source.URI != "" {
					name = domain.DocumentNameFromURI(source.URI)
				} else {
					name = domain.UnknownDocumentName
				}
			}

			fmt.Fprintf(b, "%d. Source: %s\n", i+1, source.ReferenceID)
			fmt.Fprintf(b, "   Document: %s\n", name)
			if source.URI != "" {
				fmt.Fprintf(b, "   %s\n", source.URI)
			}
		}
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
