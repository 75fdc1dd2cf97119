// Package taxonomy holds the ISO 10962 classification schema: the closed set
// of categories, the groups legal under each category, and the attribute
// value sets legal at positions 3-6 for each category-group pair.
//
// A Taxonomy is immutable once constructed and safe to share across any
// number of concurrent readers. Lookups are case-sensitive and expect
// already-uppercased single-letter codes; case folding is the validator's
// job, not the taxonomy's.
package taxonomy

import (
	"errors"
	"fmt"
)

// CodeLength is the fixed length of a CFI code.
const CodeLength = 6

// Attribute positions are the 3rd through 6th characters of a code.
const (
	MinAttributePosition = 3
	MaxAttributePosition = 6
)

// Introspection failures. Callers distinguish these with errors.Is.
var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownGroup    = errors.New("unknown group")
	ErrInvalidPosition = errors.New("attribute position out of range")
)

// Entry is a single coded vocabulary item (a category, a group, or an
// attribute value) together with its human-readable description.
type Entry struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// NotApplicable is the X sentinel accepted at essentially every attribute
// position, whether or not a rule set enumerates it.
var NotApplicable = Entry{Code: "X", Description: "Not applicable/Not specified"}

// Taxonomy is the loaded schema. Construct one with Parse, LoadFile, or
// Default; the zero value is unusable.
type Taxonomy struct {
	categories []Entry
	byCategory map[string]*category
}

type category struct {
	entry   Entry
	groups  []Entry
	byGroup map[string]*group
}

type group struct {
	entry     Entry
	positions map[int]*rule
}

type rule struct {
	options []Entry
	byCode  map[string]string
}

// Categories returns every category in definition order. The result is a
// copy; mutating it does not affect the taxonomy.
func (t *Taxonomy) Categories() []Entry {
	out := make([]Entry, len(t.categories))
	copy(out, t.categories)
	return out
}

// HasCategory reports whether code is a registered category.
func (t *Taxonomy) HasCategory(code string) bool {
	_, ok := t.byCategory[code]
	return ok
}

// CategoryDescription returns the description of a category, or
// ErrUnknownCategory.
func (t *Taxonomy) CategoryDescription(code string) (string, error) {
	c, ok := t.byCategory[code]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, code)
	}
	return c.entry.Description, nil
}

// Groups returns the groups of a category in definition order, or
// ErrUnknownCategory. Every registered category has at least one group.
func (t *Taxonomy) Groups(categoryCode string) ([]Entry, error) {
	c, ok := t.byCategory[categoryCode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, categoryCode)
	}
	out := make([]Entry, len(c.groups))
	copy(out, c.groups)
	return out, nil
}

// HasGroup reports whether groupCode is a registered group of categoryCode.
func (t *Taxonomy) HasGroup(categoryCode, groupCode string) bool {
	c, ok := t.byCategory[categoryCode]
	if !ok {
		return false
	}
	_, ok = c.byGroup[groupCode]
	return ok
}

// GroupDescription returns the description of a group within a category.
// Fails with ErrUnknownCategory or ErrUnknownGroup.
func (t *Taxonomy) GroupDescription(categoryCode, groupCode string) (string, error) {
	g, err := t.group(categoryCode, groupCode)
	if err != nil {
		return "", err
	}
	return g.entry.Description, nil
}

// DefinedPair reports whether the category-group pair carries any explicit
// attribute rules. Pairs without rules fall under the permissive policy:
// any alphabetic character is accepted at positions 3-6.
func (t *Taxonomy) DefinedPair(categoryCode, groupCode string) bool {
	g, err := t.group(categoryCode, groupCode)
	return err == nil && len(g.positions) > 0
}

// DefinedPosition reports whether the pair has an explicit rule set for the
// given position. Only explicitly ruled positions are strict; a position of
// a defined pair without its own rule falls back to the permissive policy.
func (t *Taxonomy) DefinedPosition(categoryCode, groupCode string, position int) bool {
	g, err := t.group(categoryCode, groupCode)
	if err != nil {
		return false
	}
	_, ok := g.positions[position]
	return ok
}

// AttributeOptions returns the legal values at an attribute position for a
// category-group pair, in definition order. When no explicit rule exists for
// the pair and position, the single-entry NotApplicable fallback is returned;
// that is policy, not an error. Fails with ErrUnknownCategory,
// ErrUnknownGroup, or ErrInvalidPosition.
func (t *Taxonomy) AttributeOptions(categoryCode, groupCode string, position int) ([]Entry, error) {
	if position < MinAttributePosition || position > MaxAttributePosition {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPosition, position)
	}
	g, err := t.group(categoryCode, groupCode)
	if err != nil {
		return nil, err
	}
	r, ok := g.positions[position]
	if !ok {
		return []Entry{NotApplicable}, nil
	}
	out := make([]Entry, len(r.options))
	copy(out, r.options)
	return out, nil
}

// AttributeDescription resolves a single attribute value at a position.
// The second return is false when the value is not enumerated there.
func (t *Taxonomy) AttributeDescription(categoryCode, groupCode string, position int, value string) (string, bool) {
	g, err := t.group(categoryCode, groupCode)
	if err != nil {
		return "", false
	}
	r, ok := g.positions[position]
	if !ok {
		if value == NotApplicable.Code {
			return NotApplicable.Description, true
		}
		return "", false
	}
	desc, ok := r.byCode[value]
	return desc, ok
}

func (t *Taxonomy) group(categoryCode, groupCode string) (*group, error) {
	c, ok := t.byCategory[categoryCode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, categoryCode)
	}
	g, ok := c.byGroup[groupCode]
	if !ok {
		return nil, fmt.Errorf("%w: %q for category %q", ErrUnknownGroup, groupCode, categoryCode)
	}
	return g, nil
}
