// Package menu renders the available research prompts for the
// interactive session.
package menu

import (
	"strings"

	"github.com/dossier-labs/dossier-cli/internal/adapters/driving/tui/styles"
	"github.com/dossier-labs/dossier-cli/internal/core/domain"
)

// View lists the configured prompt keys grouped by section.
type View struct {
	styles *styles.Styles
	set    *domain.PromptSet
	filter string
}

// NewView creates a new prompt menu view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s}
}

// SetPrompts replaces the displayed prompt set.
func (v *View) SetPrompts(set *domain.PromptSet) {
	v.set = set
}

// SetFilter narrows the listing to keys containing the given text,
// case-insensitively. An empty filter shows everything.
func (v *View) SetFilter(filter string) {
	v.filter = strings.ToUpper(strings.TrimSpace(filter))
}

func (v *View) matching(section domain.PromptSection) []string {
	keys := v.set.Keys(section)
	if v.filter == "" {
		return keys
	}
	matched := keys[:0:0]
	for _, key := range keys {
		if strings.Contains(key, v.filter) {
			matched = append(matched, key)
		}
	}
	return matched
}

// View renders the prompt list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Available prompts"))
	b.WriteString("\n")

	if v.set == nil || v.set.Len() == 0 {
		b.WriteString(v.styles.Muted.Render("No prompts configured."))
		b.WriteString("\n")
		return b.String()
	}

	primary := v.matching(domain.SectionPrimary)
	final := v.matching(domain.SectionFinal)
	if len(primary) == 0 && len(final) == 0 {
		b.WriteString(v.styles.Muted.Render("No prompts match \"" + v.filter + "\"."))
		b.WriteString("\n")
		return b.String()
	}

	if len(primary) > 0 {
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render("Research"))
		b.WriteString("\n")
		for _, key := range primary {
			b.WriteString("  " + v.styles.Normal.Render(key) + "\n")
		}
	}

	if len(final) > 0 {
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render("Synthesis"))
		b.WriteString("\n")
		for _, key := range final {
			b.WriteString("  " + v.styles.Normal.Render(key) + "\n")
		}
	}

	return b.String()
}
