// Command dossier is the composition root: it wires the file-backed
// configuration, the hosted search engine and the research service
// into the CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dossier-labs/dossier-cli/internal/adapters/driven/auth"
	configfile "github.com/dossier-labs/dossier-cli/internal/adapters/driven/config/file"
	"github.com/dossier-labs/dossier-cli/internal/adapters/driven/search/discovery"
	"github.com/dossier-labs/dossier-cli/internal/adapters/driving/cli"
	"github.com/dossier-labs/dossier-cli/internal/core/domain"
	"github.com/dossier-labs/dossier-cli/internal/core/ports/driven"
	"github.com/dossier-labs/dossier-cli/internal/core/ports/driving"
	"github.com/dossier-labs/dossier-cli/internal/core/services"
	"github.com/dossier-labs/dossier-cli/internal/logger"
)

// Build metadata, overridden at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	cli.SetServiceBuilder(buildServices)

	if err := cli.Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

// buildServices assembles the driven adapters and the research service.
// It runs after flag parsing so --config is honoured.
func buildServices(configDir string) (driving.ResearchService, func(), error) {
	ctx := context.Background()

	configStore, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}

	settings := configfile.LoadSettings(configStore)

	promptStore := configfile.NewPromptStore(settings.PromptsFile)

	// Prompt edits on disk take effect without restarting
	watcher, err := configfile.NewWatcher(promptStore.Path(), promptStore.Reload)
	if err != nil {
		logger.Warn("Prompt file watching disabled: %v", err)
		watcher = nil
	}

	engine := buildEngine(ctx, settings)

	research, err := services.NewResearchService(engine, promptStore)
	if err != nil {
		if watcher != nil {
			watcher.Close()
		}
		return nil, nil, fmt.Errorf("create research service: %w", err)
	}

	cleanup := func() {
		research.Close()
		if watcher != nil {
			watcher.Close()
		}
	}
	return research, cleanup, nil
}

// buildEngine creates the search engine, or a stand-in that reports the
// configuration problem on first use so commands that never touch the
// backend (version, prompts) keep working.
func buildEngine(ctx context.Context, settings domain.Settings) driven.SearchEngine {
	if err := settings.Validate(); err != nil {
		return unavailableEngine{err: err}
	}

	tokenSource, err := auth.TokenSourceFromFile(ctx, settings.CredentialsFile)
	if err != nil {
		return unavailableEngine{err: err}
	}

	engine, err := discovery.NewEngine(ctx, settings, tokenSource)
	if err != nil {
		return unavailableEngine{err: err}
	}

	return engine
}

// unavailableEngine defers a configuration error until a search is attempted.
type unavailableEngine struct {
	err error
}

func (e unavailableEngine) Search(_ context.Context, _ domain.SearchRequest) (*domain.SearchResponse, error) {
	return nil, fmt.Errorf("%w: %v", domain.ErrSearchUnavailable, e.err)
}
