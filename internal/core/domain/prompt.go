package domain

import (
	"fmt"
	"sort"
	"strings"
)

// PromptSection identifies which configuration section a prompt came from.
// The section selects which base instruction prefixes the system prompt.
type PromptSection string

const (
	// SectionPrimary is the main prompts_config section.
	SectionPrimary PromptSection = "primary"
	// SectionFinal is the prompts_config_final section.
	SectionFinal PromptSection = "final"
)

// PromptDefinition is a pre-authored research prompt.
// Definitions are loaded from static configuration and immutable at runtime.
type PromptDefinition struct {
	// Key is the upper-cased unique identifier users type to run the prompt.
	Key string

	// Prompt is the query template, possibly containing {placeholder} tokens.
	Prompt string

	// Instructions is an optional instruction template appended to the
	// section base instruction when building the system prompt.
	Instructions string

	// Section records which configuration section defined the prompt.
	Section PromptSection
}

// PromptSet is the full loaded prompt configuration.
type PromptSet struct {
	definitions map[string]PromptDefinition

	// Dictionary holds the template substitutions shared by all prompts.
	Dictionary TemplateDictionary

	// BaseInstruction is the system-prompt prefix for primary prompts.
	BaseInstruction string

	// BaseInstructionFinal is the prefix for final prompts. When empty,
	// final prompts fall back to BaseInstruction.
	BaseInstructionFinal string
}

// NewPromptSet builds a PromptSet from the two configuration sections.
// Keys are normalised to upper case. A key appearing in both sections is
// rejected: the sections select different base instructions, so a silent
// preference would mask a misconfigured file.
func NewPromptSet(primary, final map[string]PromptDefinition) (*PromptSet, error) {
	set := &PromptSet{definitions: make(map[string]PromptDefinition, len(primary)+len(final))}

	for key, def := range primary {
		def.Key = NormaliseKey(key)
		def.Section = SectionPrimary
		set.definitions[def.Key] = def
	}
	for key, def := range final {
		def.Key = NormaliseKey(key)
		def.Section = SectionFinal
		if _, exists := set.definitions[def.Key]; exists {
			return nil, fmt.Errorf("%w: prompt key %q defined in both sections", ErrInvalidConfig, def.Key)
		}
		set.definitions[def.Key] = def
	}

	return set, nil
}

// NormaliseKey upper-cases and trims a user-entered prompt key.
func NormaliseKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}

// Lookup returns the definition for a key, normalising it first.
func (s *PromptSet) Lookup(key string) (PromptDefinition, bool) {
	def, ok := s.definitions[NormaliseKey(key)]
	return def, ok
}

// Keys returns all prompt keys in the given section, sorted.
func (s *PromptSet) Keys(section PromptSection) []string {
	var keys []string
	for key, def := range s.definitions {
		if def.Section == section {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of loaded prompt definitions.
func (s *PromptSet) Len() int {
	return len(s.definitions)
}

// SystemPrompt assembles the summarisation preamble for a definition:
// the section base instruction, followed by the resolved instructions
// when present. Template placeholders are resolved in both parts' inputs
// by the caller supplying already-resolved instruction text; this method
// resolves them itself for convenience.
func (s *PromptSet) SystemPrompt(def PromptDefinition) string {
	base := s.BaseInstruction
	if def.Section == SectionFinal && s.BaseInstructionFinal != "" {
		base = s.BaseInstructionFinal
	}

	instructions := s.Dictionary.Resolve(def.Instructions)
	if instructions == "" {
		return base
	}
	return base + "\n\n" + instructions
}

// Query returns the prompt text with template placeholders resolved.
func (s *PromptSet) Query(def PromptDefinition) string {
	return s.Dictionary.Resolve(def.Prompt)
}
