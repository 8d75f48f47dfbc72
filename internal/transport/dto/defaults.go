package dto

import (
	"fmt"

	"github.com/creasty/defaults"
)

// TriState is a narrow integer flag. Only the named values carry meaning
// and it must not be read as a bool.
type TriState int16

const (
	TriStateUnset TriState = -1
	TriStateOff   TriState = 0
	TriStateOn    TriState = 1
)

// ApplyDefaults fills zero-valued fields of the struct pointed to by v from their `default` tags.
func ApplyDefaults(v any) error {
	if err := defaults.Set(v); err != nil {
		return fmt.Errorf("apply dto defaults: %w", err)
	}
	return nil
}

// MustApplyDefaults is like ApplyDefaults but panics on error.
// Only use it with types declared in this package.
func MustApplyDefaults(v any) {
	if err := ApplyDefaults(v); err != nil {
		panic(err)
	}
}
