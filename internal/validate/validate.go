// Package validate implements the CFI code validation engine: a pure,
// stateless walk of a candidate six-character code against a taxonomy,
// producing either an accepted decomposition or the first structural
// violation encountered.
package validate

import (
	"fmt"
	"strings"

	"cfikit/internal/taxonomy"
)

// Validator checks candidate codes against an immutable taxonomy. It holds
// no mutable state; a single Validator serves unlimited concurrent calls.
type Validator struct {
	tax *taxonomy.Taxonomy
}

// New returns a Validator bound to the given taxonomy.
func New(tax *taxonomy.Taxonomy) *Validator {
	return &Validator{tax: tax}
}

// Check is the compact form: the verdict and its message, nothing else.
func (v *Validator) Check(rawCode string) (bool, string) {
	o := v.Validate(rawCode)
	return o.Valid, o.Message
}

// Validate runs the full sequential check: shape preconditions, uppercase
// normalization, then positions left to right with each position's legality
// conditioned on the accepted prefix. It short-circuits at the first failure
// and never mutates the caller's input.
func (v *Validator) Validate(rawCode string) Outcome {
	o := newOutcome()

	if rawCode == "" {
		o.fail(KindEmptyCode, 0, "CFI code must be a non-empty string")
		return o
	}

	runes := []rune(rawCode)
	if len(runes) != taxonomy.CodeLength {
		o.fail(KindInvalidLength, 0, "CFI code must be exactly 6 characters")
		return o
	}
	for _, r := range runes {
		if !isLetter(r) {
			o.fail(KindNonAlphabetic, 0, "CFI code must contain only alphabetic characters")
			return o
		}
	}

	code := strings.ToUpper(rawCode)
	o.Code = code

	// Position 1: category.
	cat := code[:1]
	o.Positions[0].Value = cat
	catDesc, err := v.tax.CategoryDescription(cat)
	if err != nil {
		o.fail(KindUnknownCategory, 1, fmt.Sprintf(
			"Invalid category %q. Must be one of: %s", cat, joinCodes(v.tax.Categories())))
		return o
	}
	o.accept(1, cat, catDesc)

	// Position 2: group, legal only within the accepted category.
	grp := code[1:2]
	o.Positions[1].Value = grp
	grpDesc, err := v.tax.GroupDescription(cat, grp)
	if err != nil {
		groups, _ := v.tax.Groups(cat)
		o.fail(KindUnknownGroup, 2, fmt.Sprintf(
			"Invalid group %q for category %q. Valid groups: %s", grp, cat, joinCodes(groups)))
		return o
	}
	o.accept(2, grp, grpDesc)

	// Positions 3-6: attributes. Strictness depends on whether the pair
	// carries explicit rules; see checkAttribute.
	defined := v.tax.DefinedPair(cat, grp)
	for pos := taxonomy.MinAttributePosition; pos <= taxonomy.MaxAttributePosition; pos++ {
		char := code[pos-1 : pos]
		o.Positions[pos-1].Value = char
		if ok := v.checkAttribute(&o, cat, grp, pos, char, defined); !ok {
			return o
		}
	}

	o.Valid = true
	o.Message = fmt.Sprintf("Valid CFI code for %s - %s", catDesc, grpDesc)
	return o
}

// checkAttribute applies one attribute position. Three regimes:
//
//   - pair undefined: permissive, any letter accepted with a generic label;
//   - pair defined, position ruled: strict membership, with X always legal
//     as the explicit not-applicable fallback;
//   - pair defined, position unruled: permissive, same as the first regime.
func (v *Validator) checkAttribute(o *Outcome, cat, grp string, pos int, char string, definedPair bool) bool {
	if definedPair && v.tax.DefinedPosition(cat, grp, pos) {
		if meaning, ok := v.tax.AttributeDescription(cat, grp, pos, char); ok {
			o.accept(pos, char, meaning)
			return true
		}
		if char == taxonomy.NotApplicable.Code {
			o.accept(pos, char, taxonomy.NotApplicable.Description)
			return true
		}
		options, _ := v.tax.AttributeOptions(cat, grp, pos)
		o.fail(KindInvalidAttribute, pos, fmt.Sprintf(
			"Invalid attribute %q at position %d for %s%s. Valid options: %s",
			char, pos, cat, grp, joinCodes(options)))
		return false
	}

	// Permissive fallback. The whole code is already known to be alphabetic,
	// so every character is acceptable here.
	if char == taxonomy.NotApplicable.Code {
		o.accept(pos, char, taxonomy.NotApplicable.Description)
	} else {
		o.accept(pos, char, "Custom attribute (no predefined meaning)")
	}
	return true
}

func isLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func joinCodes(entries []taxonomy.Entry) string {
	codes := make([]string, len(entries))
	for i, e := range entries {
		codes[i] = e.Code
	}
	return strings.Join(codes, ", ")
}
