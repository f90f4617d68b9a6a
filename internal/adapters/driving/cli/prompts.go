package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/dossier-labs/dossier-cli/internal/core/domain"
)

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "List the configured research prompts",
	RunE:  runPrompts,
}

func init() {
	rootCmd.AddCommand(promptsCmd)
}

func runPrompts(cmd *cobra.Command, _ []string) error {
	if researchService == nil {
		return errors.New("research service not configured")
	}

	set, err := researchService.Prompts()
	if err != nil {
		return err
	}

	primary := set.Keys(domain.SectionPrimary)
	final := set.Keys(domain.SectionFinal)

	if len(primary) == 0 && len(final) == 0 {
		cmd.Println("No prompts configured.")
		return nil
	}

	if len(primary) > 0 {
		cmd.Println("Research prompts:")
		for _, key := range primary {
			cmd.Printf("  %s\n", key)
		}
	}

	if len(final) > 0 {
		cmd.Println("Synthesis prompts:")
		for _, key := range final {
			cmd.Printf("  %s\n", key)
		}
	}

	return nil
}
