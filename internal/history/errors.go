package history

import (
	"errors"
	"fmt"
)

// ErrPaletteNotFound is returned when a palette id does not exist.
var ErrPaletteNotFound = errors.New("palette not found")

// ValidationError reports invalid user input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
