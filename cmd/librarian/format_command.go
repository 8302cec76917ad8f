package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"librarian/internal/issuedate"
	"librarian/internal/organizer"
)

type formatResult struct {
	Title  string `json:"title"`
	Input  string `json:"input"`
	DBDate string `json:"dbdate,omitempty"`
	File   string `json:"file"`
	Folder string `json:"folder"`
}

func newFormatCommand(ctx *commandContext) *cobra.Command {
	var title string
	var datetype string
	var filePattern string
	var folderPattern string

	cmd := &cobra.Command{
		Use:   "format <issue-name>",
		Short: "Render destination names for a magazine issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if title == "" {
				return fmt.Errorf("--title is required")
			}
			if filePattern == "" {
				filePattern = cfg.Magazines.DestFile
			}
			if folderPattern == "" {
				folderPattern = cfg.Magazines.DestFolder
			}

			parts := issuedate.Parse(parseOptions(cfg), args[0], datetype)
			if parts.Style == issuedate.StyleNone {
				return fmt.Errorf("no issue date recognised in %q", args[0])
			}

			opts := organizer.Options{
				Months:   issuedate.DefaultMonthTable(),
				Language: cfg.Magazines.DateLanguage,
			}
			result := formatResult{
				Title:  title,
				Input:  args[0],
				DBDate: parts.DBDate,
				File:   organizer.FormatIssueFile(opts, filePattern, title, parts),
				Folder: organizer.FormatIssueFolder(opts, folderPattern, title, parts),
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, result)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "File:   %s\n", result.File)
			fmt.Fprintf(out, "Folder: %s\n", result.Folder)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Magazine title")
	cmd.Flags().StringVar(&datetype, "datetype", "", "Date type constraint for the parse")
	cmd.Flags().StringVar(&filePattern, "file-pattern", "", "Override the destination file template")
	cmd.Flags().StringVar(&folderPattern, "folder-pattern", "", "Override the destination folder template")
	return cmd
}
