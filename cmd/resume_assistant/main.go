// Package main provides the entry point for the resume assistant CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_assistant",
	Short: "Resume tailoring assistant",
	Long:  "Resume assistant analyzes job postings, matches them against your profile, and produces tailored markdown resume drafts that go through an approval workflow before export.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
