package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dossier-labs/dossier-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive research session",
	Long: `Starts the interactive terminal session.

Type a prompt key to run it, 'list' to show the available prompts, or
'quit' to leave. Prompt configuration changes on disk are picked up
without restarting.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if researchService == nil {
		return errors.New("research service not configured")
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("interactive session requires a terminal; use 'research' or 'ask' instead")
	}

	// Panic recovery for stack traces, bubbletea swallows them otherwise
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in interactive session: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	model := tui.New(researchService)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}

	return nil
}
