package engine

import (
	"fmt"
	"strings"

	"listings/internal/models"
)

// ValidationError reports a raw record that cannot become a Listing.
// Index is the record's position in the input; ID is the raw id text as received.
type ValidationError struct {
	Index  int
	ID     string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("record %d: %s: %s", e.Index, e.Field, e.Reason)
	}
	return fmt.Sprintf("record %d (id %s): %s: %s", e.Index, e.ID, e.Field, e.Reason)
}

// InvalidArgumentError is returned when a caller passes an unsupported argument.
type InvalidArgumentError struct {
	Name  string
	Value string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Name, e.Value)
}

// ParseField maps user input such as " Color " to a Field.
func ParseField(s string) (models.Field, error) {
	f := models.Field(strings.ToLower(strings.TrimSpace(s)))
	if !validField(f) {
		return "", &InvalidArgumentError{Name: "field", Value: s}
	}
	return f, nil
}

func validField(f models.Field) bool {
	for _, known := range models.Fields {
		if f == known {
			return true
		}
	}
	return false
}
