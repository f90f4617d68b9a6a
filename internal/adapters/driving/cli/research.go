package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var researchCmd = &cobra.Command{
	Use:   "research [prompt-key]",
	Short: "Run a deep research prompt",
	Long: `Runs a research prompt with query optimisation.

Three query variants are generated from the prompt and executed in
parallel; the answer with the most results, summary content and
citations is kept.`,
	Args: cobra.ExactArgs(1),
	RunE: runResearch,
}

func init() {
	rootCmd.AddCommand(researchCmd)
}

func runResearch(cmd *cobra.Command, args []string) error {
	if researchService == nil {
		return errors.New("research service not configured")
	}

	key := strings.TrimSpace(args[0])

	answer, err := researchService.Research(context.Background(), key)
	if err != nil {
		return fmt.Errorf("research failed: %w", err)
	}

	cmd.Printf("Prompt: %s\n", answer.Key)
	cmd.Println(strings.Repeat("=", 60))
	cmd.Print(RenderResearch(answer))

	return nil
}
