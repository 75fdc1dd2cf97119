package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cfikit/internal/config"
	"cfikit/internal/validate"
)

var describeJSON bool

// describeCmd renders the decomposition of an already-valid code
var describeCmd = &cobra.Command{
	Use:   "describe [code]",
	Short: "Show the meaning of each position of a valid CFI code",
	Long: `Renders the six positions of a valid CFI code with their
descriptions. Invalid codes are rejected with the validation error rather
than rendered partially.

Example:
  cfi describe ESVNFB`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribe,
}

func runDescribe(cmd *cobra.Command, args []string) error {
	v, err := newValidator()
	if err != nil {
		return err
	}

	outcome, err := v.Describe(args[0])
	if err != nil {
		return err
	}

	if describeJSON || cfg.Output == config.FormatJSON {
		return printJSON(outcome)
	}
	fmt.Printf("✓ %s\n", outcome.Message)
	fmt.Print(validate.FormatDetails(outcome))
	return nil
}

func init() {
	describeCmd.Flags().BoolVar(&describeJSON, "json", false, "emit the decomposition as JSON")
}
