package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yamshy/resume-assistant/internal/observability"
)

var listCommand = &cobra.Command{
	Use:   "list",
	Short: "List stored resume drafts, newest first",
	RunE:  runListCmd,
}

var showCommand = &cobra.Command{
	Use:   "show <draft-id>",
	Short: "Print a stored draft's markdown and status",
	Args:  cobra.ExactArgs(1),
	RunE:  runShowCmd,
}

var (
	listStorageDir string
	showStorageDir string
	showVerbose    bool
)

func init() {
	listCommand.Flags().StringVarP(&listStorageDir, "storage-dir", "d", "", "Directory for stored drafts and the profile")
	showCommand.Flags().StringVarP(&showStorageDir, "storage-dir", "d", "", "Directory for stored drafts and the profile")
	showCommand.Flags().BoolVarP(&showVerbose, "verbose", "v", false, "Also print the job analysis and match details")

	rootCmd.AddCommand(listCommand)
	rootCmd.AddCommand(showCommand)
}

func runListCmd(_ *cobra.Command, _ []string) error {
	store, err := openStore(listStorageDir)
	if err != nil {
		return err
	}

	summaries, err := store.ListResumes()
	if err != nil {
		return fmt.Errorf("failed to list drafts: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintSummaries(summaries)
	return nil
}

func runShowCmd(_ *cobra.Command, args []string) error {
	store, err := openStore(showStorageDir)
	if err != nil {
		return err
	}

	resume, err := store.GetResume(args[0])
	if err != nil {
		return fmt.Errorf("failed to load draft: %w", err)
	}

	if showVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintJobAnalysis(resume.JobAnalysis)
		printer.PrintMatchResult(resume.MatchResult)
	}

	fmt.Printf("Draft %s (version %d, %s)\n", resume.ID, resume.Version, resume.Status)
	if resume.Decision != nil {
		fmt.Printf("Decided by %s at %s", resume.Decision.Reviewer, resume.Decision.DecidedAt.Format("2006-01-02 15:04"))
		if resume.Decision.Notes != "" {
			fmt.Printf(": %s", resume.Decision.Notes)
		}
		fmt.Println()
	}
	if resume.SupersededBy != nil {
		fmt.Printf("Superseded by %s\n", *resume.SupersededBy)
	}
	fmt.Println()
	fmt.Println(resume.Markdown)
	return nil
}
