package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yamshy/resume-assistant/internal/types"
)

var profileCommand = &cobra.Command{
	Use:   "profile",
	Short: "Manage the stored candidate profile",
}

var profileImportCommand = &cobra.Command{
	Use:   "import <profile.json>",
	Short: "Import and validate a candidate profile",
	Long:  "Reads a profile JSON file, validates it, and stores it as the profile used by the tailoring pipeline.",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileImportCmd,
}

var profileShowCommand = &cobra.Command{
	Use:   "show",
	Short: "Print the stored candidate profile",
	RunE:  runProfileShowCmd,
}

var profileStorageDir string

func init() {
	profileCommand.PersistentFlags().StringVarP(&profileStorageDir, "storage-dir", "d", "", "Directory for stored drafts and the profile")

	profileCommand.AddCommand(profileImportCommand)
	profileCommand.AddCommand(profileShowCommand)
	rootCmd.AddCommand(profileCommand)
}

func runProfileImportCmd(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}

	var profile types.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	store, err := openStore(profileStorageDir)
	if err != nil {
		return err
	}
	if err := store.SaveProfile(&profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	fmt.Printf("Profile for %s imported (%d skills, %d roles)\n",
		profile.Contact.Name, len(profile.Skills), len(profile.Experience))
	return nil
}

func runProfileShowCmd(_ *cobra.Command, _ []string) error {
	store, err := openStore(profileStorageDir)
	if err != nil {
		return err
	}

	profile, err := store.GetProfile()
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	out, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
