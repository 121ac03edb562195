package engine

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"listings/internal/models"
)

// GroupByCountry partitions listings by country. Listings without a country
// are collected under models.UnknownCountry. Each group keeps the input order;
// the map itself has no order, use SortedGroups for display.
func GroupByCountry(listings []models.Listing) map[string][]models.Listing {
	groups := make(map[string][]models.Listing)
	for _, l := range listings {
		key := models.UnknownCountry
		if l.Country != nil {
			key = *l.Country
		}
		groups[key] = append(groups[key], l.Clone())
	}
	return groups
}

// CountryLabels returns the group keys in alphabetical order under the root
// Unicode collation, so "Åland Islands" sorts with the A's.
func CountryLabels(groups map[string][]models.Listing) []string {
	labels := make([]string, 0, len(groups))
	for k := range groups {
		labels = append(labels, k)
	}
	// Collators are not safe for concurrent use; build one per call
	collate.New(language.Und).SortStrings(labels)
	return labels
}

// SortedGroups flattens a grouped view into groups ordered by country label.
func SortedGroups(groups map[string][]models.Listing) []models.CountryGroup {
	out := make([]models.CountryGroup, 0, len(groups))
	for _, label := range CountryLabels(groups) {
		out = append(out, models.CountryGroup{
			Country:  label,
			Listings: cloneAll(groups[label]),
		})
	}
	return out
}
