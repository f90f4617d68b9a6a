// Package answer renders a finished research answer in a scrollable viewport.
package answer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dossier-labs/dossier-cli/internal/adapters/driving/tui/styles"
	"github.com/dossier-labs/dossier-cli/internal/core/domain"
)

const (
	docLimit       = 8
	snippetsPerDoc = 2
	snippetMaxLen  = 150
)

// View displays one answer: the generated summary, its cited sources
// and the analysed documents.
type View struct {
	styles   *styles.Styles
	viewport viewport.Model
	answer   *domain.Answer
	ready    bool
}

// NewView creates a new answer view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:   s,
		viewport: viewport.New(80, 20),
	}
}

// SetDimensions resizes the viewport.
func (v *View) SetDimensions(width, height int) {
	v.viewport.Width = width
	v.viewport.Height = height
	v.ready = true
	if v.answer != nil {
		v.viewport.SetContent(v.render())
	}
}

// SetAnswer replaces the displayed answer and scrolls to the top.
func (v *View) SetAnswer(answer *domain.Answer) {
	v.answer = answer
	v.viewport.SetContent(v.render())
	v.viewport.GotoTop()
}

// Answer returns the currently displayed answer.
func (v *View) Answer() *domain.Answer {
	return v.answer
}

// Update handles scroll keys via the viewport.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the viewport.
func (v *View) View() string {
	if v.answer == nil {
		return ""
	}
	return v.viewport.View()
}

func (v *View) render() string {
	if v.answer == nil {
		return ""
	}

	resp := v.answer.Response
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Prompt: "+v.answer.Key) + "\n")
	fmt.Fprintf(&b, "%s\n", v.styles.Muted.Render(fmt.Sprintf("%d documents analysed", resp.ResultCount())))

	b.WriteString("\n" + v.styles.Subtitle.Render("Answer") + "\n")
	if text := resp.SummaryText(); text != "" {
		b.WriteString(text + "\n")
	} else {
		b.WriteString(v.styles.Muted.Render("No summary was generated for this question.") + "\n")
		if resp.Summary != nil && len(resp.Summary.SkippedReasons) > 0 {
			b.WriteString(v.styles.Muted.Render("(skipped: "+strings.Join(resp.Summary.SkippedReasons, ", ")+")") + "\n")
		}
	}

	v.renderSources(&b, resp)
	v.renderDocuments(&b, resp)

	return b.String()
}

func (v *View) renderSources(b *strings.Builder, resp *domain.SearchResponse) {
	cited := resp.CitedDocumentNames()

	if len(cited) > 0 {
		b.WriteString("\n" + v.styles.Subtitle.Render("Based on documents") + "\n")
		for i, name := range cited {
			fmt.Fprintf(b, "%d. %s\n", i+1, name)
		}
		return
	}

	if resp.ResultCount() == 0 {
		return
	}

	b.WriteString("\n" + v.styles.Subtitle.Render("Based on documents (top search results)") + "\n")
	for i, result := range resp.Results {
		if i == 5 {
			break
		}
		fmt.Fprintf(b, "%d. %s\n", i+1, result.DisplayName())
	}
}

func (v *View) renderDocuments(b *strings.Builder, resp *domain.SearchResponse) {
	if resp.ResultCount() == 0 {
		return
	}

	b.WriteString("\n" + v.styles.Subtitle.Render("Relevant documents") + "\n")
	for i, result := range resp.Results {
		if i == docLimit {
			break
		}
		fmt.Fprintf(b, "%2d. %s\n", i+1, result.DisplayName())
		for j, snippet := range result.Snippets {
			if j == snippetsPerDoc {
				break
			}
			fmt.Fprintf(b, "    %s\n", v.styles.Muted.Render("> "+truncate(snippet, snippetMaxLen)))
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
