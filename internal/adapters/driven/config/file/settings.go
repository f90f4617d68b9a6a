package file

import (
	"github.com/dossier-labs/dossier-cli/internal/core/domain"
	"github.com/dossier-labs/dossier-cli/internal/core/ports/driven"
)

// Config keys recognised by the settings loader.
const (
	keyProjectID         = "search.project_id"
	keyLocation          = "search.location"
	keyDataStoreID       = "search.data_store_id"
	keyServingConfig     = "search.serving_config"
	keyRequestsPerSecond = "search.requests_per_second"
	keyCredentialsFile   = "auth.credentials_file"
	keyPromptsFile       = "prompts.file"
)

const defaultPromptsFile = "prompts_config.json"

// LoadSettings builds domain.Settings from a config store, applying
// defaults for keys that are absent.
func LoadSettings(store driven.ConfigStore) domain.Settings {
	settings := domain.Settings{
		ProjectID:             store.GetString(keyProjectID),
		Location:              store.GetString(keyLocation),
		DataStoreID:           store.GetString(keyDataStoreID),
		ServingConfigOverride: store.GetString(keyServingConfig),
		CredentialsFile:       store.GetString(keyCredentialsFile),
		PromptsFile:           store.GetString(keyPromptsFile),
		RequestsPerSecond:     store.GetFloat(keyRequestsPerSecond),
	}

	if settings.Location == "" {
		settings.Location = domain.DefaultLocation
	}
	if settings.PromptsFile == "" {
		settings.PromptsFile = defaultPromptsFile
	}

	return settings
}
