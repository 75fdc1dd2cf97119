package taxonomy

import (
	_ "embed"
	"fmt"
	"sync"
)

// The ISO 10962 reference taxonomy is baked into the binary at compile time,
// eliminating any filesystem dependency for the built-in data.
//
//go:embed schema/iso10962.yaml
var embeddedSchema []byte

var (
	defaultOnce sync.Once
	defaultTax  *Taxonomy
	defaultErr  error
)

// Default returns the built-in ISO 10962 reference taxonomy. The schema is
// parsed once; subsequent calls return the same immutable value.
func Default() (*Taxonomy, error) {
	defaultOnce.Do(func() {
		defaultTax, defaultErr = Parse(embeddedSchema)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("embedded taxonomy schema: %w", defaultErr)
		}
	})
	return defaultTax, defaultErr
}
