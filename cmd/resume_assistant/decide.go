package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yamshy/resume-assistant/internal/approval"
	"github.com/yamshy/resume-assistant/internal/config"
	"github.com/yamshy/resume-assistant/internal/types"
)

var approveCommand = &cobra.Command{
	Use:   "approve <draft-id>",
	Short: "Approve a pending draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return decide(args[0], types.StatusApproved)
	},
}

var rejectCommand = &cobra.Command{
	Use:   "reject <draft-id>",
	Short: "Reject a pending draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return decide(args[0], types.StatusRejected)
	},
}

var requestChangesCommand = &cobra.Command{
	Use:   "request-changes <draft-id>",
	Short: "Request changes on a pending draft",
	Long:  "Marks the draft changes_requested. Create the revised draft afterwards with the revise command.",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return decide(args[0], types.StatusChangesRequested)
	},
}

var reviseCommand = &cobra.Command{
	Use:   "revise <draft-id> <markdown-file>",
	Short: "Create the revised successor for a changes-requested draft",
	Args:  cobra.ExactArgs(2),
	RunE:  runReviseCmd,
}

var (
	decideConfigPath string
	decideStorageDir string
	decideReviewer   string
	decideNotes      string
)

func init() {
	for _, cmd := range []*cobra.Command{approveCommand, rejectCommand, requestChangesCommand, reviseCommand} {
		cmd.Flags().StringVarP(&decideStorageDir, "storage-dir", "d", "", "Directory for stored drafts and the profile")
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{approveCommand, rejectCommand, requestChangesCommand} {
		cmd.Flags().StringVar(&decideConfigPath, "config", "", "Path to config.json file (supplies the default reviewer)")
		cmd.Flags().StringVarP(&decideReviewer, "reviewer", "r", "", "Reviewer name recorded on the decision")
		cmd.Flags().StringVarP(&decideNotes, "notes", "m", "", "Decision notes")
	}
}

// resolveReviewer prefers the explicit flag and falls back to the config
// file's default reviewer.
func resolveReviewer(flagValue, configPath string) (string, error) {
	if flagValue != "" || configPath == "" {
		return flagValue, nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg.Reviewer, nil
}

func decide(id string, status types.Status) error {
	store, err := openStore(decideStorageDir)
	if err != nil {
		return err
	}

	resume, err := store.GetResume(id)
	if err != nil {
		return fmt.Errorf("failed to load draft: %w", err)
	}

	reviewer, err := resolveReviewer(decideReviewer, decideConfigPath)
	if err != nil {
		return err
	}

	if err := approval.Apply(resume, status, reviewer, decideNotes); err != nil {
		return err
	}
	if err := store.SaveResume(resume); err != nil {
		return fmt.Errorf("failed to save decision: %w", err)
	}

	fmt.Printf("Draft %s is now %s\n", resume.ID, resume.Status)
	return nil
}

func runReviseCmd(_ *cobra.Command, args []string) error {
	store, err := openStore(decideStorageDir)
	if err != nil {
		return err
	}

	predecessor, err := store.GetResume(args[0])
	if err != nil {
		return fmt.Errorf("failed to load draft: %w", err)
	}

	markdown, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read revised markdown: %w", err)
	}

	successor, err := approval.Revise(predecessor, string(markdown))
	if err != nil {
		return err
	}

	// Persist the successor first so the predecessor never points at a
	// draft that was not written.
	if err := store.SaveResume(successor); err != nil {
		return fmt.Errorf("failed to save revision: %w", err)
	}
	if err := store.SaveResume(predecessor); err != nil {
		return fmt.Errorf("failed to update predecessor: %w", err)
	}

	fmt.Printf("Revision %s (version %d) created, awaiting approval\n", successor.ID, successor.Version)
	return nil
}
