package validate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCode is returned by Describe for codes that do not validate.
var ErrInvalidCode = errors.New("invalid CFI code")

// Describe re-validates a code and returns its decomposition. It never
// renders partial data: anything short of a fully valid code is an error
// wrapping ErrInvalidCode with the validator's message.
func (v *Validator) Describe(rawCode string) (*Outcome, error) {
	o := v.Validate(rawCode)
	if !o.Valid {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCode, o.Message)
	}
	return &o, nil
}

// FormatDetails renders a valid outcome's six positions as aligned plain
// text, one position per line. Intended for non-TUI output paths.
func FormatDetails(o *Outcome) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CFI Code: %s\n", o.Code)
	for _, d := range o.Positions {
		var role string
		switch d.Position {
		case 1:
			role = "Category "
		case 2:
			role = "Group    "
		default:
			role = fmt.Sprintf("Attr %d   ", d.Position-2)
		}
		fmt.Fprintf(&sb, "  %s %s - %s\n", role, d.Value, d.Meaning)
	}
	return sb.String()
}
