// Package auth loads Google service-account credentials and exposes
// them as an oauth2 token source for the search backend.
package auth

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/dossier-labs/dossier-cli/internal/logger"
)

// cloudPlatformScope grants access to the hosted search API.
const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// TokenSourceFromFile reads a service-account key file and returns a
// self-refreshing token source. Key material is never logged.
func TokenSourceFromFile(ctx context.Context, path string) (oauth2.TokenSource, error) {
	if path == "" {
		return nil, fmt.Errorf("credentials file not configured")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, cloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}

	logger.Debug("Loaded service account credentials from %s (project %s)", path, creds.ProjectID)
	return creds.TokenSource, nil
}
