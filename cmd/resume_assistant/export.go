package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yamshy/resume-assistant/internal/export"
)

var exportCommand = &cobra.Command{
	Use:   "export <draft-id>",
	Short: "Export an approved draft as markdown or PDF",
	Long: `Writes an approved draft to a file. The format is inferred from the output
extension: .md writes the markdown as-is, .pdf renders it with headless Chrome
(set CHROME_PATH to point at a specific binary).`,
	Args: cobra.ExactArgs(1),
	RunE: runExportCmd,
}

var (
	exportStorageDir string
	exportOutput     string
)

func init() {
	exportCommand.Flags().StringVarP(&exportStorageDir, "storage-dir", "d", "", "Directory for stored drafts and the profile")
	exportCommand.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path (.md or .pdf)")
	_ = exportCommand.MarkFlagRequired("output")

	rootCmd.AddCommand(exportCommand)
}

func runExportCmd(_ *cobra.Command, args []string) error {
	store, err := openStore(exportStorageDir)
	if err != nil {
		return err
	}

	resume, err := store.GetResume(args[0])
	if err != nil {
		return fmt.Errorf("failed to load draft: %w", err)
	}

	switch {
	case strings.HasSuffix(exportOutput, ".md"):
		err = export.Markdown(resume, exportOutput)
	case strings.HasSuffix(exportOutput, ".pdf"):
		err = export.PDF(context.Background(), resume, exportOutput)
	default:
		return fmt.Errorf("unsupported output extension: %s (use .md or .pdf)", exportOutput)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported draft %s to %s\n", resume.ID, exportOutput)
	return nil
}
