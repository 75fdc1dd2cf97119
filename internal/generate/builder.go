// Package generate implements guided CFI code construction as a pure state
// machine: category, then group, then the four attributes, each step
// restricted to what the taxonomy accepts. The machine is driven by
// externally supplied answers and performs no I/O, so any front end (TUI,
// tests, scripts) can drive it.
package generate

import (
	"errors"
	"fmt"
	"strings"

	"cfikit/internal/taxonomy"
	"cfikit/internal/validate"
)

// State machine errors.
var (
	// ErrComplete is returned by Apply once all six characters are chosen.
	ErrComplete = errors.New("code already complete")

	// ErrIncomplete is returned by Finalize before all six characters are chosen.
	ErrIncomplete = errors.New("code not complete")
)

// Builder assembles a CFI code one position at a time. The zero value is
// unusable; construct with New.
type Builder struct {
	tax   *taxonomy.Taxonomy
	val   *validate.Validator
	chars []string
}

// New returns a Builder awaiting the category character.
func New(tax *taxonomy.Taxonomy) *Builder {
	return &Builder{
		tax:   tax,
		val:   validate.New(tax),
		chars: make([]string, 0, taxonomy.CodeLength),
	}
}

// Position is the 1-indexed slot the builder is waiting on, 7 when done.
func (b *Builder) Position() int {
	return len(b.chars) + 1
}

// Done reports whether all six characters have been chosen.
func (b *Builder) Done() bool {
	return len(b.chars) == taxonomy.CodeLength
}

// Code returns the characters accepted so far.
func (b *Builder) Code() string {
	return strings.Join(b.chars, "")
}

// StepLabel describes the slot currently being chosen.
func (b *Builder) StepLabel() string {
	return validate.PositionLabel(b.Position())
}

// Options lists the choices legal at the current step. For attribute
// positions without an explicit rule set only the X sentinel is suggested,
// though Apply accepts any letter there (the permissive fallback).
// Returns nil once the code is complete.
func (b *Builder) Options() []taxonomy.Entry {
	switch pos := b.Position(); {
	case pos == 1:
		return b.tax.Categories()
	case pos == 2:
		groups, err := b.tax.Groups(b.chars[0])
		if err != nil {
			return nil
		}
		return groups
	case pos <= taxonomy.MaxAttributePosition:
		options, err := b.tax.AttributeOptions(b.chars[0], b.chars[1], pos)
		if err != nil {
			return nil
		}
		return ensureNotApplicable(options)
	default:
		return nil
	}
}

// Permissive reports whether the current step accepts any alphabetic
// character rather than enforcing an enumerated rule set.
func (b *Builder) Permissive() bool {
	pos := b.Position()
	if pos < taxonomy.MinAttributePosition || pos > taxonomy.MaxAttributePosition {
		return false
	}
	return !b.tax.DefinedPair(b.chars[0], b.chars[1]) ||
		!b.tax.DefinedPosition(b.chars[0], b.chars[1], pos)
}

// Apply submits the answer for the current step, advancing the machine on
// success. Answers are case-folded. An empty answer selects X at permissive
// steps and is rejected elsewhere.
func (b *Builder) Apply(answer string) error {
	if b.Done() {
		return ErrComplete
	}

	answer = strings.ToUpper(strings.TrimSpace(answer))
	if answer == "" {
		if !b.Permissive() {
			return fmt.Errorf("a choice is required at position %d", b.Position())
		}
		answer = taxonomy.NotApplicable.Code
	}
	if len(answer) != 1 || answer[0] < 'A' || answer[0] > 'Z' {
		return fmt.Errorf("answer must be a single letter, got %q", answer)
	}

	switch pos := b.Position(); {
	case pos == 1:
		if !b.tax.HasCategory(answer) {
			return fmt.Errorf("invalid category %q; choose one of: %s", answer, joinCodes(b.tax.Categories()))
		}
	case pos == 2:
		if !b.tax.HasGroup(b.chars[0], answer) {
			groups, _ := b.tax.Groups(b.chars[0])
			return fmt.Errorf("invalid group %q for category %q; choose one of: %s", answer, b.chars[0], joinCodes(groups))
		}
	default:
		if !b.Permissive() {
			_, listed := b.tax.AttributeDescription(b.chars[0], b.chars[1], pos, answer)
			if !listed && answer != taxonomy.NotApplicable.Code {
				options, _ := b.tax.AttributeOptions(b.chars[0], b.chars[1], pos)
				return fmt.Errorf("invalid attribute %q at position %d; choose one of: %s", answer, pos, joinCodes(ensureNotApplicable(options)))
			}
		}
	}

	b.chars = append(b.chars, answer)
	return nil
}

// Seed consumes a partial prefix of already-chosen characters, stopping at
// the first character the taxonomy rejects. It returns one warning per
// rejected character; an invalid category discards the whole prefix and an
// invalid group keeps only the category, mirroring interactive resumption.
func (b *Builder) Seed(prefix string) []string {
	var warnings []string
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if len(prefix) > taxonomy.CodeLength {
		prefix = prefix[:taxonomy.CodeLength]
	}
	for _, r := range prefix {
		if b.Done() {
			break
		}
		if err := b.Apply(string(r)); err != nil {
			warnings = append(warnings, fmt.Sprintf("prefix character %q at position %d rejected: %v; continuing interactively", string(r), b.Position(), err))
			break
		}
	}
	return warnings
}

// Describe resolves the meaning of an answer at the current step, for
// echoing selections back to the user.
func (b *Builder) Describe(answer string) string {
	answer = strings.ToUpper(strings.TrimSpace(answer))
	for _, e := range b.Options() {
		if e.Code == answer {
			return e.Description
		}
	}
	if answer == taxonomy.NotApplicable.Code {
		return taxonomy.NotApplicable.Description
	}
	return "Custom attribute (no predefined meaning)"
}

// Finalize re-runs the assembled code through detailed validation. The
// assembly logic and the validator must never disagree; if they do, the
// error carries the validator's verdict.
func (b *Builder) Finalize() (*validate.Outcome, error) {
	if !b.Done() {
		return nil, fmt.Errorf("%w: %d of %d characters chosen", ErrIncomplete, len(b.chars), taxonomy.CodeLength)
	}
	outcome, err := b.val.Describe(b.Code())
	if err != nil {
		return nil, fmt.Errorf("generated code %s failed validation: %w", b.Code(), err)
	}
	return outcome, nil
}

func ensureNotApplicable(options []taxonomy.Entry) []taxonomy.Entry {
	for _, e := range options {
		if e.Code == taxonomy.NotApplicable.Code {
			return options
		}
	}
	return append(options, taxonomy.NotApplicable)
}

func joinCodes(entries []taxonomy.Entry) string {
	codes := make([]string, len(entries))
	for i, e := range entries {
		codes[i] = e.Code
	}
	return strings.Join(codes, ", ")
}
