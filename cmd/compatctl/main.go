// compatctl is a diagnostic CLI for the compatibility engine: it answers
// lookup and single-category match queries against a catalog file without a
// running server, and validates the chain configuration.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fixturematch/backend/internal/catalog"
	"github.com/fixturematch/backend/internal/domain"
	"github.com/fixturematch/backend/internal/infrastructure/catalogfile"
	"github.com/fixturematch/backend/internal/usecase"
)

var catalogPath string

func main() {
	root := &cobra.Command{
		Use:   "compatctl",
		Short: "Query the fixture compatibility engine from the command line",
	}

	root.PersistentFlags().StringVar(&catalogPath, "catalog", "data/catalog.json", "path to the catalog file")

	root.AddCommand(newLookupCmd())
	root.AddCommand(newMatchCmd())
	root.AddCommand(newCheckCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newDirectory loads the catalog file and wires an uncached directory.
func newDirectory() (*usecase.Directory, error) {
	snap, err := catalogfile.Load(catalogPath)
	if err != nil {
		return nil, err
	}
	store := catalog.NewStore()
	store.Publish(snap)

	engine := usecase.NewEngine(usecase.NewOverrideResolver())
	return usecase.NewDirectory(store, engine, nil, usecase.DirectoryConfig{}), nil
}

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <sku>",
		Short: "Resolve every compatible category for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			directory, err := newDirectory()
			if err != nil {
				return err
			}

			sku := strings.ToUpper(strings.TrimSpace(args[0]))
			lookup, err := directory.FindCompatibles(context.Background(), sku)
			if err != nil {
				return fmt.Errorf("lookup %s: %w", sku, err)
			}
			return printJSON(cmd, lookup)
		},
	}
}

func newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <sku> <category>",
		Short: "Run a single-category match for a product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			directory, err := newDirectory()
			if err != nil {
				return err
			}

			sku := strings.ToUpper(strings.TrimSpace(args[0]))
			result, err := directory.Match(context.Background(), sku, domain.Category(args[1]))
			if err != nil {
				return fmt.Errorf("match %s against %s: %w", sku, args[1], err)
			}
			if !result.Applicable {
				fmt.Fprintf(cmd.OutOrStdout(), "category pair not applicable: %s\n", args[1])
				return nil
			}
			return printJSON(cmd, result)
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the chain configuration and summarize the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := usecase.SelfCheck(); err != nil {
				return fmt.Errorf("chain table: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "chain table: ok")

			snap, err := catalogfile.Load(catalogPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "catalog %s: %d products\n", snap.Version(), snap.Len())
			for _, category := range domain.AllCategories {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-14s %d\n", category, len(snap.ListByCategory(category)))
			}
			return nil
		},
	}
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
