package validate

// ErrorKind classifies why a code was rejected. Invalidity is ordinary data,
// never a panic or a control-flow fault.
type ErrorKind string

const (
	// KindEmptyCode means the input was absent or empty.
	KindEmptyCode ErrorKind = "EMPTY_CODE"

	// KindInvalidLength means the input was not exactly six characters.
	KindInvalidLength ErrorKind = "INVALID_LENGTH"

	// KindNonAlphabetic means the input contained a non-letter character.
	KindNonAlphabetic ErrorKind = "NON_ALPHABETIC"

	// KindUnknownCategory means position 1 is not a registered category.
	KindUnknownCategory ErrorKind = "UNKNOWN_CATEGORY"

	// KindUnknownGroup means position 2 is not a group of the category.
	KindUnknownGroup ErrorKind = "UNKNOWN_GROUP"

	// KindInvalidAttribute means a position in 3-6 violated an explicit rule set.
	KindInvalidAttribute ErrorKind = "INVALID_ATTRIBUTE"
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	return string(k)
}

// PositionDetail is one slot of a code's decomposition. Positions after a
// failure stay unresolved: Resolved is false and Value/Meaning are empty.
type PositionDetail struct {
	Position int    `json:"position"`
	Label    string `json:"label"`
	Value    string `json:"value,omitempty"`
	Meaning  string `json:"meaning,omitempty"`
	Resolved bool   `json:"resolved"`
	Valid    bool   `json:"valid"`
	Error    string `json:"error,omitempty"`
}

// Outcome is the full result of a detailed validation: overall verdict, the
// first problem encountered (if any), and the per-position decomposition.
type Outcome struct {
	Valid bool `json:"valid"`

	// Code is the normalized (uppercased) code once the shape checks pass.
	Code string `json:"code,omitempty"`

	// Kind and Position identify the first failure. Position is 1-indexed
	// and zero for shape failures that have no single offending slot.
	Kind     ErrorKind `json:"error_kind,omitempty"`
	Position int       `json:"position,omitempty"`

	// Message is the human-readable verdict, listing the legal alternatives
	// at the failing position when there is one.
	Message string `json:"message"`

	Positions [taxonomyPositions]PositionDetail `json:"positions"`
}

const taxonomyPositions = 6

// positionLabels describe the semantic role of each slot, shown alongside
// the decomposition.
var positionLabels = [taxonomyPositions]string{
	"Category - Primary classification of the financial instrument",
	"Group - Secondary classification within the category",
	"Attribute 1 - Specific characteristics related to the instrument type",
	"Attribute 2 - Additional characteristics/features",
	"Attribute 3 - Further specification of the instrument",
	"Attribute 4 - Final specification details",
}

// PositionLabel returns the semantic role of a 1-indexed position, or the
// empty string for positions outside 1-6.
func PositionLabel(position int) string {
	if position < 1 || position > taxonomyPositions {
		return ""
	}
	return positionLabels[position-1]
}

// Detail returns the decomposition record for a 1-indexed position.
func (o *Outcome) Detail(position int) PositionDetail {
	if position < 1 || position > taxonomyPositions {
		return PositionDetail{}
	}
	return o.Positions[position-1]
}

func newOutcome() Outcome {
	var o Outcome
	for i := range o.Positions {
		o.Positions[i] = PositionDetail{Position: i + 1, Label: positionLabels[i]}
	}
	return o
}

func (o *Outcome) fail(kind ErrorKind, position int, message string) {
	o.Valid = false
	o.Kind = kind
	o.Position = position
	o.Message = message
	if position >= 1 && position <= taxonomyPositions {
		d := &o.Positions[position-1]
		d.Resolved = true
		d.Valid = false
		d.Error = message
	}
}

func (o *Outcome) accept(position int, value, meaning string) {
	d := &o.Positions[position-1]
	d.Value = value
	d.Meaning = meaning
	d.Resolved = true
	d.Valid = true
}
