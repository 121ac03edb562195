package engine

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"listings/internal/models"
)

// --- 1. FIELD NORMALIZERS ---

// parseID accepts only a JSON integer literal. Strings, fractions and
// exponent forms are rejected rather than coerced.
func parseID(raw json.RawMessage) (int, error) {
	b := bytes.TrimSpace(raw)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return 0, fmt.Errorf("missing")
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return 0, fmt.Errorf("not an integer: %s", b)
	}
	return n, nil
}

// optional turns a missing, null or blank value into absent and trims the rest.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// --- 2. LOAD ---

// Load validates raw records and converts them to listings, one for one and in
// order. The first invalid record aborts the load with a *ValidationError and
// no listings are returned.
func Load(raw []models.RawRecord) ([]models.Listing, error) {
	out := make([]models.Listing, 0, len(raw))
	seen := make(map[int]int, len(raw))

	for i, r := range raw {
		idText := string(bytes.TrimSpace(r.ID))

		id, err := parseID(r.ID)
		if err != nil {
			return nil, &ValidationError{Index: i, ID: idText, Field: "id", Reason: err.Error()}
		}
		if prev, dup := seen[id]; dup {
			return nil, &ValidationError{Index: i, ID: idText, Field: "id", Reason: fmt.Sprintf("duplicate of record %d", prev)}
		}
		seen[id] = i

		required := []struct {
			name string
			val  *string
		}{
			{"first_name", r.FirstName},
			{"last_name", r.LastName},
			{"email", r.Email},
		}
		for _, f := range required {
			if f.val == nil {
				return nil, &ValidationError{Index: i, ID: idText, Field: f.name, Reason: "missing"}
			}
		}

		out = append(out, models.Listing{
			ID:        id,
			FirstName: *r.FirstName,
			LastName:  *r.LastName,
			Email:     *r.Email,
			Color:     optional(r.Color),
			Language:  optional(r.Language),
			Country:   optional(r.Country),
		})
	}
	return out, nil
}

// DecodeRecords reads a JSON array of raw records. Only the array itself is
// decoded in one pass; each element is then decoded field by field so that a
// wrong-typed value is reported as a *ValidationError naming its record.
func DecodeRecords(r io.Reader) ([]models.RawRecord, error) {
	var elems []json.RawMessage
	if err := json.NewDecoder(r).Decode(&elems); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	out := make([]models.RawRecord, 0, len(elems))
	for i, elem := range elems {
		rec, err := decodeRecord(i, elem)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func decodeRecord(index int, elem json.RawMessage) (models.RawRecord, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(elem, &fields); err != nil || fields == nil {
		return models.RawRecord{}, &ValidationError{Index: index, Field: "record", Reason: "not a JSON object"}
	}

	rec := models.RawRecord{ID: fields["id"]}
	idText := string(bytes.TrimSpace(rec.ID))

	text := []struct {
		name string
		dst  **string
	}{
		{"first_name", &rec.FirstName},
		{"last_name", &rec.LastName},
		{"email", &rec.Email},
		{"color", &rec.Color},
		{"language", &rec.Language},
		{"country", &rec.Country},
	}
	for _, f := range text {
		v, ok := fields[f.name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, f.dst); err != nil {
			return models.RawRecord{}, &ValidationError{
				Index:  index,
				ID:     idText,
				Field:  f.name,
				Reason: fmt.Sprintf("not a string: %s", bytes.TrimSpace(v)),
			}
		}
	}
	return rec, nil
}

// LoadFile builds a Store from a JSON data file. A nil logger disables logging.
func LoadFile(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	start := time.Now()
	logger.Info("Loading listings", zap.String("path", path))

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	raw, err := DecodeRecords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	listings, err := Load(raw)
	if err != nil {
		logger.Error("Rejected data file", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	store := NewStore(listings)
	logger.Info("Load complete",
		zap.Int("rows", store.Len()),
		zap.Duration("elapsed", time.Since(start)))
	return store, nil
}
