package main

import (
	"strings"

	"github.com/spf13/cobra"

	"listings/internal/engine"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.store()
			if err != nil {
				return err
			}
			return printListings(cmd.OutOrStdout(), store.All(), opts.asJSON)
		},
	}
}

func newSearchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Print listings whose color or language matches term",
		Long: `Matches are exact and case-insensitive; surrounding whitespace is ignored.
Multiple arguments are joined with a space, so "search Sky Blue" works unquoted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.store()
			if err != nil {
				return err
			}
			matches := engine.FindByColorOrLanguage(strings.Join(args, " "), store.All())
			return printListings(cmd.OutOrStdout(), matches, opts.asJSON)
		},
	}
}

func newGroupCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "group",
		Short: "Print listings grouped by country, alphabetically",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.store()
			if err != nil {
				return err
			}
			groups := engine.SortedGroups(engine.GroupByCountry(store.All()))
			return printGroups(cmd.OutOrStdout(), groups, opts.asJSON)
		},
	}
}

func newMissingCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "missing <color|language|country>",
		Short:     "Print listings with no value for a field",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"color", "language", "country"},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Reject bad input before touching the data file
			field, err := engine.ParseField(args[0])
			if err != nil {
				return err
			}
			store, err := opts.store()
			if err != nil {
				return err
			}
			missing, err := engine.FindMissing(field, store.All())
			if err != nil {
				return err
			}
			return printListings(cmd.OutOrStdout(), missing, opts.asJSON)
		},
	}
}
