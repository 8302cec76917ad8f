package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"librarian/internal/bookmatch"
	"librarian/internal/catalog"
	"librarian/internal/config"
	"librarian/internal/libscan"
	"librarian/internal/magscan"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var library string

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Scan a library directory and file books into the catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store, log *slog.Logger) error {
				registrar := bookmatch.NewRegistrar(store, cfg, log)
				finder := bookmatch.NewFinder(store, registrar, cfg, log)
				scanner := libscan.New(store, finder, cfg, log)

				summary, err := scanner.Scan(cmd.Context(), dir, catalog.Library(library))
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, summary)
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Files", "Matched", "Updated", "Unrecognized"},
					[][]string{{
						fmt.Sprintf("%d", summary.Files),
						fmt.Sprintf("%d", summary.Matched),
						fmt.Sprintf("%d", summary.Updated),
						fmt.Sprintf("%d", summary.Unrecognized),
					}},
					[]columnAlignment{alignRight, alignRight, alignRight, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&library, "library", string(catalog.LibraryEBook), "Library format: eBook or AudioBook")
	return cmd
}

func newMagscanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "magscan [dir]",
		Short: "Scan the magazine directory and record issues",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store, log *slog.Logger) error {
				scanner, err := magscan.New(store, cfg, log)
				if err != nil {
					return err
				}
				summary, err := scanner.Scan(cmd.Context(), dir)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, summary)
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Files", "Magazines", "Issues", "Unrecognized"},
					[][]string{{
						fmt.Sprintf("%d", summary.Files),
						fmt.Sprintf("%d", summary.Magazines),
						fmt.Sprintf("%d", summary.Issues),
						fmt.Sprintf("%d", summary.Unrecognized),
					}},
					[]columnAlignment{alignRight, alignRight, alignRight, alignRight},
				))
				return nil
			})
		},
	}
}
