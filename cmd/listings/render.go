package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"listings/internal/models"
)

const notAvailable = "N/A"

func orNA(s *string) string {
	if s == nil {
		return notAvailable
	}
	return *s
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeHeader(tw *tabwriter.Writer) {
	fmt.Fprintln(tw, "ID\tFIRST NAME\tLAST NAME\tEMAIL\tCOLOR\tLANGUAGE\tCOUNTRY")
}

func writeRow(tw *tabwriter.Writer, l models.Listing) {
	fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
		l.ID, l.FirstName, l.LastName, l.Email, orNA(l.Color), orNA(l.Language), orNA(l.Country))
}

func printListings(w io.Writer, listings []models.Listing, asJSON bool) error {
	if asJSON {
		return writeJSON(w, listings)
	}
	if len(listings) == 0 {
		_, err := fmt.Fprintln(w, "No listings found")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	writeHeader(tw)
	for _, l := range listings {
		writeRow(tw, l)
	}
	return tw.Flush()
}

func printGroups(w io.Writer, groups []models.CountryGroup, asJSON bool) error {
	if asJSON {
		return writeJSON(w, groups)
	}
	if len(groups) == 0 {
		_, err := fmt.Fprintln(w, "No listings found")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "== %s (%d)\n", g.Country, len(g.Listings))
		writeHeader(tw)
		for _, l := range g.Listings {
			writeRow(tw, l)
		}
	}
	return tw.Flush()
}
