package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cfikit/cmd/cfi/ui"
	"cfikit/internal/generate"
	"cfikit/internal/validate"
)

var generatePrefix string

// generateCmd runs the guided code construction wizard
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build a CFI code step by step",
	Long: `Walks through category, group, and the four attribute positions,
offering only the choices the taxonomy accepts at each step. The assembled
code is re-validated before it is printed.

A partial prefix of already-chosen characters resumes the wizard mid-way:

  cfi generate --prefix ES`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	tax, err := loadTaxonomy()
	if err != nil {
		return err
	}

	builder := generate.New(tax)
	for _, w := range builder.Seed(generatePrefix) {
		fmt.Println("Warning:", w)
	}

	var outcome *validate.Outcome
	if builder.Done() {
		// The prefix already names a complete code; nothing to ask.
		outcome, err = builder.Finalize()
		if err != nil {
			return err
		}
	} else {
		wizard := ui.NewWizard(builder, ui.DefaultStyles(cfg.NoColor))
		final, err := tea.NewProgram(wizard).Run()
		if err != nil {
			return fmt.Errorf("wizard failed: %w", err)
		}
		w, ok := final.(ui.Wizard)
		if !ok {
			return fmt.Errorf("wizard returned unexpected model %T", final)
		}
		if w.Cancelled() {
			return fmt.Errorf("generation cancelled")
		}
		outcome, err = w.Outcome()
		if err != nil {
			return err
		}
	}

	logger.Info("Generated code", zap.String("code", outcome.Code))
	fmt.Printf("\nGenerated CFI code: %s\n", outcome.Code)
	fmt.Print(validate.FormatDetails(outcome))
	return nil
}

func init() {
	generateCmd.Flags().StringVar(&generatePrefix, "prefix", "", "resume from already-chosen characters")
}
