package domain

import "fmt"

// Settings is the typed application configuration backing a run.
// Values come from the TOML config store; Validate gates startup.
type Settings struct {
	// ProjectID is the cloud project hosting the data store.
	ProjectID string

	// Location is the data store location (usually "global").
	Location string

	// DataStoreID identifies the document store to query.
	DataStoreID string

	// ServingConfigOverride, when set, replaces the derived serving
	// config path entirely.
	ServingConfigOverride string

	// CredentialsFile is the path to the service-account JSON material.
	CredentialsFile string

	// PromptsFile is the path to the prompts configuration JSON.
	PromptsFile string

	// RequestsPerSecond caps the sustained backend request rate.
	// Zero means the adapter default.
	RequestsPerSecond float64
}

// DefaultLocation is used when settings omit the data store location.
const DefaultLocation = "global"

// Validate reports the first missing required field.
func (s Settings) Validate() error {
	if s.ServingConfigOverride == "" {
		if s.ProjectID == "" {
			return fmt.Errorf("%w: project id is required", ErrInvalidConfig)
		}
		if s.DataStoreID == "" {
			return fmt.Errorf("%w: data store id is required", ErrInvalidConfig)
		}
	}
	if s.CredentialsFile == "" {
		return fmt.Errorf("%w: credentials file is required", ErrInvalidConfig)
	}
	if s.PromptsFile == "" {
		return fmt.Errorf("%w: prompts file is required", ErrInvalidConfig)
	}
	return nil
}

// ServingConfig renders the backend serving-config resource path.
func (s Settings) ServingConfig() string {
	if s.ServingConfigOverride != "" {
		return s.ServingConfigOverride
	}
	location := s.Location
	if location == "" {
		location = DefaultLocation
	}
	return fmt.Sprintf("projects/%s/locations/%s/dataStores/%s/servingConfigs/default_config",
		s.ProjectID, location, s.DataStoreID)
}
