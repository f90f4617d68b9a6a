package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [prompt-key]",
	Short: "Run a prompt as a single direct search",
	Long: `Runs a research prompt as one search request without query
optimisation. Faster than research but less thorough.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if researchService == nil {
		return errors.New("research service not configured")
	}

	key := strings.TrimSpace(args[0])

	answer, err := researchService.Ask(context.Background(), key)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	cmd.Printf("Prompt: %s\n", answer.Key)
	cmd.Println(strings.Repeat("=", 60))
	cmd.Print(RenderAsk(answer))

	return nil
}
