package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"cfikit/internal/config"
	"cfikit/internal/validate"
)

var (
	validateJSON bool
	validateFile string
)

// errInvalidCodes signals a nonzero exit after results are already printed.
var errInvalidCodes = errors.New("one or more codes failed validation")

// validateCmd validates CFI codes given as arguments or read from a file
var validateCmd = &cobra.Command{
	Use:   "validate [code...]",
	Short: "Validate one or more CFI codes",
	Long: `Validates CFI codes against the taxonomy and prints the verdict.

A valid code is decomposed position by position with the meaning of each
character; an invalid code is reported with the first offending position and
the legal alternatives there.

Multiple codes are validated concurrently. Codes can also be read from a
file, one per line (blank lines and # comments are skipped).

Examples:
  cfi validate ESVNFB
  cfi validate ESVNFB DBFUGB ozzzzz
  cfi validate --file codes.txt --json`,
	Args: cobra.ArbitraryArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	codes := append([]string(nil), args...)
	if validateFile != "" {
		fromFile, err := readCodesFile(validateFile)
		if err != nil {
			return err
		}
		codes = append(codes, fromFile...)
	}
	if len(codes) == 0 {
		return fmt.Errorf("no codes to validate; pass codes as arguments or use --file")
	}

	v, err := newValidator()
	if err != nil {
		return err
	}
	logger.Info("Validating codes", zap.Int("count", len(codes)))

	// Validation calls are independent and share no mutable state, so a
	// batch parallelizes trivially. Results keep argument order.
	outcomes := make([]validate.Outcome, len(codes))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, code := range codes {
		g.Go(func() error {
			outcomes[i] = v.Validate(code)
			return nil
		})
	}
	_ = g.Wait()

	if validateJSON || cfg.Output == config.FormatJSON {
		return printJSON(outcomes)
	}

	invalid := 0
	for i, o := range outcomes {
		if o.Valid {
			fmt.Printf("✓ %s\n", o.Message)
			fmt.Print(validate.FormatDetails(&outcomes[i]))
		} else {
			invalid++
			fmt.Printf("✗ %s: %s\n", codes[i], o.Message)
		}
	}
	if len(outcomes) > 1 {
		fmt.Printf("\n%d of %d codes valid\n", len(outcomes)-invalid, len(outcomes))
	}
	if invalid > 0 {
		return errInvalidCodes
	}
	return nil
}

func readCodesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open codes file: %w", err)
	}
	defer f.Close()

	var codes []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		codes = append(codes, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read codes file: %w", err)
	}
	return codes, nil
}

func newValidator() (*validate.Validator, error) {
	tax, err := loadTaxonomy()
	if err != nil {
		return nil, err
	}
	return validate.New(tax), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "emit results as JSON")
	validateCmd.Flags().StringVar(&validateFile, "file", "", "read codes from a file, one per line")
}
