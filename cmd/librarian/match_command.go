package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"librarian/internal/bookmatch"
	"librarian/internal/catalog"
	"librarian/internal/config"
)

type matchResult struct {
	Author string `json:"author"`
	Title  string `json:"title"`
	Found  bool   `json:"found"`
	BookID string `json:"book_id,omitempty"`
	Book   string `json:"book,omitempty"`
	Status string `json:"status,omitempty"`
	Method string `json:"method,omitempty"`
	Score  int    `json:"score,omitempty"`
}

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var library string
	var source string

	cmd := &cobra.Command{
		Use:   "match <author> <title>",
		Short: "Resolve an author and title against the catalog",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store, log *slog.Logger) error {
				finder := bookmatch.NewFinder(store, nil, cfg, log)
				match, err := finder.FindBook(cmd.Context(), args[0], args[1], bookmatch.Options{
					Library: catalog.Library(library),
					Source:  source,
				})
				if err != nil {
					return err
				}

				result := matchResult{Author: args[0], Title: args[1]}
				if match != nil {
					result.Found = true
					result.BookID = match.Book.ID
					result.Book = match.Book.Name
					result.Status = string(match.Status)
					result.Method = string(match.Method)
					result.Score = match.Score
				}

				if ctx.jsonOutput() {
					return writeJSON(cmd, result)
				}
				out := cmd.OutOrStdout()
				if !result.Found {
					fmt.Fprintf(out, "No match for %q by %q\n", args[1], args[0])
					return nil
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Book", "ID", "Status", "Method", "Score"},
					[][]string{{result.Book, result.BookID, result.Status, result.Method, fmt.Sprintf("%d", result.Score)}},
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&library, "library", string(catalog.LibraryEBook), "Library format: eBook or AudioBook")
	cmd.Flags().StringVar(&source, "source", "", "Restrict to books known at this metadata source")
	return cmd
}
