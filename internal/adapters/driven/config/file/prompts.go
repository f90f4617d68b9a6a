package file

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/dossier-labs/dossier-cli/internal/core/domain"
	"github.com/dossier-labs/dossier-cli/internal/core/ports/driven"
	"github.com/dossier-labs/dossier-cli/internal/logger"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptSource = (*PromptStore)(nil)

// PromptStore loads research prompt definitions from a user-editable
// JSON file on disk. The parsed set is cached; Reload forces a fresh
// parse and keeps the previous set when the file has become invalid,
// so a half-saved edit never takes the CLI down mid-session.
type PromptStore struct {
	mu       sync.RWMutex
	filePath string
	cache    *domain.PromptSet
}

// promptsFile is the on-disk JSON shape of the prompt configuration.
// Prompt sections are objects keyed by prompt name.
type promptsFile struct {
	Prompts            map[string]promptEntry `json:"prompts_config"`
	FinalPrompts       map[string]promptEntry `json:"prompts_config_final"`
	TemplateDictionary map[string]string      `json:"template_dictionary"`
	DefaultSettings    struct {
		BaseInstruction      string `json:"base_instruction"`
		BaseInstructionFinal string `json:"base_instruction_final"`
	} `json:"default_settings"`
}

type promptEntry struct {
	Prompt       string `json:"prompt"`
	Instructions string `json:"instructions"`
}

// NewPromptStore creates a prompt store backed by the given JSON file.
// The constructor does not read the file - parsing happens on first
// Prompts() call.
func NewPromptStore(filePath string) *PromptStore {
	return &PromptStore{filePath: filePath}
}

// Prompts returns the parsed prompt set, loading it from disk on first use.
func (s *PromptStore) Prompts() (*domain.PromptSet, error) {
	s.mu.RLock()
	cached := s.cache
	s.mu.RUnlock()

	if cached != nil {
		return cached, nil
	}

	set, err := s.loadFromFile()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	// Another goroutine may have loaded first; their set is as good as ours.
	if s.cache == nil {
		s.cache = set
	} else {
		set = s.cache
	}
	s.mu.Unlock()

	return set, nil
}

// Reload re-parses the prompt file. If the file is missing or invalid,
// the previously loaded set stays active and a warning is logged.
func (s *PromptStore) Reload() {
	set, err := s.loadFromFile()
	if err != nil {
		logger.Warn("Prompt reload failed, keeping previous prompts: %v", err)
		return
	}

	s.mu.Lock()
	s.cache = set
	s.mu.Unlock()

	logger.Info("Prompts reloaded from %s (%d definitions)", s.filePath, set.Len())
}

// Path returns the prompt file path.
func (s *PromptStore) Path() string {
	return s.filePath
}

// loadFromFile reads and parses the JSON prompt file into a domain set.
func (s *PromptStore) loadFromFile() (*domain.PromptSet, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("read prompts file: %w", err)
	}

	var parsed promptsFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse prompts file %s: %w", s.filePath, err)
	}

	set, err := domain.NewPromptSet(toDefinitions(parsed.Prompts), toDefinitions(parsed.FinalPrompts))
	if err != nil {
		return nil, fmt.Errorf("invalid prompts file %s: %w", s.filePath, err)
	}

	set.Dictionary = domain.TemplateDictionary(parsed.TemplateDictionary)
	set.BaseInstruction = parsed.DefaultSettings.BaseInstruction
	set.BaseInstructionFinal = parsed.DefaultSettings.BaseInstructionFinal

	return set, nil
}

func toDefinitions(entries map[string]promptEntry) map[string]domain.PromptDefinition {
	defs := make(map[string]domain.PromptDefinition, len(entries))
	for key, entry := range entries {
		defs[key] = domain.PromptDefinition{
			Prompt:       entry.Prompt,
			Instructions: entry.Instructions,
		}
	}
	return defs
}
