package engine

import (
	"strings"

	"listings/internal/models"
)

// FindByColorOrLanguage returns the listings whose color or language equals
// term, ignoring case and surrounding whitespace. A blank term matches nothing;
// callers that want "show all" should not call this.
func FindByColorOrLanguage(term string, listings []models.Listing) []models.Listing {
	out := make([]models.Listing, 0)
	term = strings.TrimSpace(term)
	if term == "" {
		return out
	}

	for _, l := range listings {
		if equalFold(l.Color, term) || equalFold(l.Language, term) {
			out = append(out, l.Clone())
		}
	}
	return out
}

func equalFold(attr *string, term string) bool {
	return attr != nil && strings.EqualFold(*attr, term)
}

// FindMissing returns the listings whose field is absent. A present empty
// string does not count as missing; see FindEmpty.
func FindMissing(field models.Field, listings []models.Listing) ([]models.Listing, error) {
	if !validField(field) {
		return nil, &InvalidArgumentError{Name: "field", Value: string(field)}
	}
	return filter(listings, func(l models.Listing) bool {
		return l.Attr(field) == nil
	}), nil
}

// FindEmpty returns the listings whose field is present but blank.
// Load never produces these; they only occur in hand-built listings.
func FindEmpty(field models.Field, listings []models.Listing) ([]models.Listing, error) {
	if !validField(field) {
		return nil, &InvalidArgumentError{Name: "field", Value: string(field)}
	}
	return filter(listings, func(l models.Listing) bool {
		v := l.Attr(field)
		return v != nil && strings.TrimSpace(*v) == ""
	}), nil
}

func filter(listings []models.Listing, keep func(models.Listing) bool) []models.Listing {
	out := make([]models.Listing, 0)
	for _, l := range listings {
		if keep(l) {
			out = append(out, l.Clone())
		}
	}
	return out
}
