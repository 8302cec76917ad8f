package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"librarian/internal/config"
	"librarian/internal/issuedate"
)

// parseOptions builds parser options from the configured noun lists.
func parseOptions(cfg *config.Config) issuedate.Options {
	return issuedate.Options{
		Months:      issuedate.DefaultMonthTable(),
		IssueNouns:  cfg.IssueNouns(),
		VolumeNouns: cfg.VolumeNouns(),
	}
}

type parseResult struct {
	Input  string `json:"input"`
	Style  int    `json:"style"`
	Year   int    `json:"year,omitempty"`
	Month  int    `json:"month,omitempty"`
	Day    int    `json:"day,omitempty"`
	Volume int    `json:"volume,omitempty"`
	Issue  int    `json:"issue,omitempty"`
	Months []int  `json:"months,omitempty"`
	DBDate string `json:"dbdate,omitempty"`
}

func newParseCommand(ctx *commandContext) *cobra.Command {
	var datetype string

	cmd := &cobra.Command{
		Use:   "parse <name>...",
		Short: "Classify issue names into date parts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			opts := parseOptions(cfg)

			results := make([]parseResult, 0, len(args))
			for _, name := range args {
				parts := issuedate.Parse(opts, name, datetype)
				results = append(results, parseResult{
					Input:  name,
					Style:  int(parts.Style),
					Year:   parts.Year,
					Month:  parts.Month,
					Day:    parts.Day,
					Volume: parts.Volume,
					Issue:  parts.Issue,
					Months: parts.Months,
					DBDate: parts.DBDate,
				})
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, results)
			}

			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{
					r.Input,
					fmt.Sprintf("%d", r.Style),
					zeroBlank(r.Year),
					zeroBlank(r.Month),
					zeroBlank(r.Day),
					zeroBlank(r.Volume),
					zeroBlank(r.Issue),
					r.DBDate,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Name", "Style", "Year", "Month", "Day", "Vol", "Issue", "DBDate"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&datetype, "datetype", "", "Constrain parses to styles supplying these components (e.g. MY, VI)")
	return cmd
}

func zeroBlank(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%d", n)
}
