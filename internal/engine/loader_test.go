package engine

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"listings/internal/models"
)

func decode(t *testing.T, body string) []models.RawRecord {
	t.Helper()
	raw, err := DecodeRecords(strings.NewReader(body))
	if err != nil {
		t.Fatalf("DecodeRecords: %v", err)
	}
	return raw
}

func TestLoad(t *testing.T) {
	raw := decode(t, `[
{"id":3,"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","color":"Blue","language":null,"country":"UK"},
{"id":1,"first_name":"Alan","last_name":"Turing","email":"alan@example.com","language":" English "},
{"id":2,"first_name":"Grace","last_name":"Hopper","email":"grace@example.com","color":"","country":"   "}
]`)

	listings, err := Load(raw)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Length and order follow the input
	if len(listings) != 3 {
		t.Fatalf("Expected 3 listings, got %d", len(listings))
	}
	for i, want := range []int{3, 1, 2} {
		if listings[i].ID != want {
			t.Errorf("Row %d: expected id %d, got %d", i, want, listings[i].ID)
		}
	}

	if listings[0].Color == nil || *listings[0].Color != "Blue" {
		t.Errorf("Row 0 color: expected Blue, got %v", listings[0].Color)
	}
	if listings[0].Language != nil {
		t.Errorf("Row 0 language: expected absent, got %q", *listings[0].Language)
	}
	if listings[1].Language == nil || *listings[1].Language != "English" {
		t.Errorf("Row 1 language: expected trimmed English, got %v", listings[1].Language)
	}
	if listings[1].Color != nil || listings[1].Country != nil {
		t.Error("Row 1: omitted fields should be absent")
	}
	if listings[2].Color != nil || listings[2].Country != nil {
		t.Error("Row 2: blank fields should be absent")
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		index int
		field string
	}{
		{"string id", `[{"id":"7","first_name":"a","last_name":"b","email":"c"}]`, 0, "id"},
		{"fractional id", `[{"id":1,"first_name":"a","last_name":"b","email":"c"},{"id":2.5,"first_name":"a","last_name":"b","email":"c"}]`, 1, "id"},
		{"exponent id", `[{"id":1e2,"first_name":"a","last_name":"b","email":"c"}]`, 0, "id"},
		{"missing id", `[{"first_name":"a","last_name":"b","email":"c"}]`, 0, "id"},
		{"null id", `[{"id":null,"first_name":"a","last_name":"b","email":"c"}]`, 0, "id"},
		{"duplicate id", `[{"id":1,"first_name":"a","last_name":"b","email":"c"},{"id":1,"first_name":"d","last_name":"e","email":"f"}]`, 1, "id"},
		{"missing email", `[{"id":1,"first_name":"a","last_name":"b"}]`, 0, "email"},
		{"null last name", `[{"id":1,"first_name":"a","last_name":null,"email":"c"}]`, 0, "last_name"},
		{"numeric first name", `[{"id":1,"first_name":"a","last_name":"b","email":"c"},{"id":2,"first_name":42,"last_name":"b","email":"c"}]`, 1, "first_name"},
		{"numeric color", `[{"id":1,"first_name":"a","last_name":"b","email":"c","color":5}]`, 0, "color"},
		{"array language", `[{"id":1,"first_name":"a","last_name":"b","email":"c","language":["en"]}]`, 0, "language"},
		{"non-object record", `[{"id":1,"first_name":"a","last_name":"b","email":"c"},"oops"]`, 1, "record"},
		{"null record", `[null]`, 0, "record"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Type errors surface while decoding, the rest while loading
			raw, err := DecodeRecords(strings.NewReader(tt.body))
			var listings []models.Listing
			if err == nil {
				listings, err = Load(raw)
			}
			if listings != nil {
				t.Errorf("Expected no partial result, got %d listings", len(listings))
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected *ValidationError, got %v", err)
			}
			if verr.Index != tt.index || verr.Field != tt.field {
				t.Errorf("Expected record %d field %s, got record %d field %s", tt.index, tt.field, verr.Index, verr.Field)
			}
		})
	}
}

func TestLoadIndependentResults(t *testing.T) {
	raw := decode(t, `[{"id":1,"first_name":"a","last_name":"b","email":"c","color":"Red"}]`)

	first, err := Load(raw)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Load(raw)
	if err != nil {
		t.Fatal(err)
	}

	*first[0].Color = "Green"
	first[0].FirstName = "changed"
	if *second[0].Color != "Red" || second[0].FirstName != "a" {
		t.Error("Two loads share state")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listings.json")
	body := []byte(`[
{"id":1,"first_name":"a","last_name":"b","email":"c","country":"UK"},
{"id":2,"first_name":"d","last_name":"e","email":"f"}
]`)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := LoadFile(path, nil)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("Expected 2 rows, got %d", store.Len())
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFile(filepath.Join(dir, "nope.json"), nil); err == nil {
		t.Error("Expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"id":1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad, nil); err == nil {
		t.Error("Expected decode error for non-array document")
	}

	invalid := filepath.Join(dir, "invalid.json")
	if err := os.WriteFile(invalid, []byte(`[{"id":"x","first_name":"a","last_name":"b","email":"c"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFile(invalid, nil)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("Expected wrapped *ValidationError, got %v", err)
	}
}

func TestLoadFileNamesMistypedRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listings.json")
	body := []byte(`[
{"id":1,"first_name":"a","last_name":"b","email":"c"},
{"id":2,"first_name":42,"last_name":"e","email":"f"}
]`)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(path, nil)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected wrapped *ValidationError, got %v", err)
	}
	if verr.Index != 1 || verr.ID != "2" || verr.Field != "first_name" {
		t.Errorf("Expected record 1 (id 2) first_name, got %+v", verr)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Index: 4, ID: `"x"`, Field: "id", Reason: "not an integer"}
	if got := err.Error(); !strings.Contains(got, "record 4") || !strings.Contains(got, `"x"`) {
		t.Errorf("Unexpected message %q", got)
	}
}
