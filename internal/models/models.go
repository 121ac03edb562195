package models

import "github.com/goccy/go-json"

// UnknownCountry labels the group of listings with no country.
const UnknownCountry = "Unknown"

// Field names one of the optional categorical attributes of a Listing.
type Field string

const (
	FieldColor    Field = "color"
	FieldLanguage Field = "language"
	FieldCountry  Field = "country"
)

// Fields lists every supported Field.
var Fields = []Field{FieldColor, FieldLanguage, FieldCountry}

// Listing is one person record. A nil attribute pointer means the value is absent.
type Listing struct {
	ID        int     `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Color     *string `json:"color"`
	Language  *string `json:"language"`
	Country   *string `json:"country"`
}

// Attr returns the attribute named by f, or nil for an unknown field.
func (l Listing) Attr(f Field) *string {
	switch f {
	case FieldColor:
		return l.Color
	case FieldLanguage:
		return l.Language
	case FieldCountry:
		return l.Country
	}
	return nil
}

// Clone returns a copy that shares no pointers with l.
func (l Listing) Clone() Listing {
	c := l
	c.Color = cloneString(l.Color)
	c.Language = cloneString(l.Language)
	c.Country = cloneString(l.Country)
	return c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// RawRecord is a listing as it arrives from the data source, before validation.
type RawRecord struct {
	ID        json.RawMessage `json:"id"`
	FirstName *string         `json:"first_name"`
	LastName  *string         `json:"last_name"`
	Email     *string         `json:"email"`
	Color     *string         `json:"color,omitempty"`
	Language  *string         `json:"language,omitempty"`
	Country   *string         `json:"country,omitempty"`
}

// CountryGroup is one entry of the grouped view, in display order.
type CountryGroup struct {
	Country  string    `json:"country"`
	Listings []Listing `json:"listings"`
}

type Health struct {
	Status   string `json:"status"`
	Listings int    `json:"listings"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
