package domain

import "strings"

// TemplateDictionary maps placeholder names to their substitution values.
// It is loaded once from configuration and never mutated afterwards.
type TemplateDictionary map[string]string

// Resolve replaces every literal occurrence of "{key}" in text with the
// dictionary value for key. Substitution is verbatim: no escaping, and no
// re-scan of substituted values. Unmatched placeholders are left in place.
//
// Behaviour is undefined when a value reintroduces another key's
// placeholder token; callers own their dictionaries and the configuration
// format makes that an authoring error.
func (d TemplateDictionary) Resolve(text string) string {
	if text == "" || len(d) == 0 {
		return text
	}
	for key, value := range d {
		text = strings.ReplaceAll(text, "{"+key+"}", value)
	}
	return text
}
