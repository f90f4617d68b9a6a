// Package cli implements the command-line driving adapter. Commands
// are thin wrappers over the core research service; all output goes
// through cobra so tests can capture it.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/dossier-labs/dossier-cli/internal/core/ports/driving"
	"github.com/dossier-labs/dossier-cli/internal/logger"
)

// Build metadata, set at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Services injected by the composition root before Execute.
var researchService driving.ResearchService

// ServiceBuilder constructs the research service once flags are parsed,
// so --config is honoured. It returns the service and a shutdown func.
type ServiceBuilder func(configDir string) (driving.ResearchService, func(), error)

var (
	buildServices ServiceBuilder
	shutdown      func()
)

var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "dossier",
	Short: "Research assistant over a hosted document index",
	Long: `Dossier runs research prompts against a hosted document-search backend.

Prompts are defined in a JSON configuration file. Each prompt maps to a
search against the indexed deal-room documents and returns a generated
summary with cited sources.

Run without a subcommand to start the interactive session.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if researchService == nil && buildServices != nil {
			research, cleanup, err := buildServices(configDir)
			if err != nil {
				return err
			}
			researchService = research
			shutdown = cleanup
		}
		return nil
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "configuration directory (default ~/.dossier)")
}

// SetServices injects the core services. Must be called before Execute.
func SetServices(research driving.ResearchService) {
	researchService = research
}

// SetServiceBuilder defers service construction until flags are parsed.
// Ignored when SetServices has already injected a service.
func SetServiceBuilder(b ServiceBuilder) {
	buildServices = b
}

// SetVersion sets the build metadata reported by the version command.
// Empty values keep the current ones.
func SetVersion(v, c, d string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		date = d
	}
}

// Execute runs the root command and releases built services afterwards.
func Execute() error {
	defer func() {
		if shutdown != nil {
			shutdown()
		}
	}()
	return rootCmd.Execute()
}
