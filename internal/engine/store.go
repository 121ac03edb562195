package engine

import "listings/internal/models"

// Store holds the loaded listings in insertion order.
// It is never mutated after NewStore returns, so readers need no locking.
type Store struct {
	listings []models.Listing
	byID     map[int]int
}

// NewStore copies listings into a new Store.
func NewStore(listings []models.Listing) *Store {
	s := &Store{
		listings: cloneAll(listings),
		byID:     make(map[int]int, len(listings)),
	}
	for i, l := range s.listings {
		s.byID[l.ID] = i
	}
	return s
}

// All returns a copy of every listing in insertion order.
func (s *Store) All() []models.Listing {
	return cloneAll(s.listings)
}

func (s *Store) Len() int {
	return len(s.listings)
}

// ByID returns a copy of the listing with the given id.
func (s *Store) ByID(id int) (models.Listing, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Listing{}, false
	}
	return s.listings[i].Clone(), true
}

func cloneAll(in []models.Listing) []models.Listing {
	out := make([]models.Listing, len(in))
	for i, l := range in {
		out[i] = l.Clone()
	}
	return out
}
