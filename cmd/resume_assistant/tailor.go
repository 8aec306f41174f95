package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yamshy/resume-assistant/internal/analysis"
	"github.com/yamshy/resume-assistant/internal/config"
	"github.com/yamshy/resume-assistant/internal/llm"
	"github.com/yamshy/resume-assistant/internal/pipeline"
	"github.com/yamshy/resume-assistant/internal/storage"
)

var tailorCommand = &cobra.Command{
	Use:   "tailor",
	Short: "Generate a tailored resume draft from a job posting",
	Long: `Runs the tailoring pipeline: ingestion -> analysis -> matching -> rendering -> persistence.

The posting can be plain text or HTML. With GEMINI_API_KEY set (or --api-key),
analysis uses Gemini; otherwise a deterministic heuristic extractor is used.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runTailorCmd,
}

var (
	tailorConfigPath string
	tailorPosting    string
	tailorStorageDir string
	tailorAPIKey     string
	tailorModel      string
	tailorVerbose    bool
)

func init() {
	tailorCommand.Flags().StringVar(&tailorConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	tailorCommand.Flags().StringVarP(&tailorPosting, "posting", "p", "", "Path to job posting file (text or HTML)")
	tailorCommand.Flags().StringVarP(&tailorStorageDir, "storage-dir", "d", "", "Directory for stored drafts and the profile")
	tailorCommand.Flags().StringVar(&tailorAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	tailorCommand.Flags().StringVar(&tailorModel, "model", "", "Gemini model name override")
	tailorCommand.Flags().BoolVarP(&tailorVerbose, "verbose", "v", false, "Print detailed analysis and match output")

	rootCmd.AddCommand(tailorCommand)
}

func runTailorCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd, tailorConfigPath)
	if err != nil {
		return err
	}
	if cfg.Posting == "" {
		return fmt.Errorf("--posting must be provided (via flag or config)")
	}

	store, err := storage.NewOSStore(cfg.StorageDir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	agent, closeAgent, err := buildAgent(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeAgent()

	// No cache: each CLI invocation is a fresh process, so an in-memory
	// cache could never produce a hit here. Long-lived embedders pass one.
	resume, err := pipeline.Run(ctx, pipeline.Options{
		PostingPath: cfg.Posting,
		Agent:       agent,
		Store:       store,
		Verbose:     cfg.Verbose,
		Out:         os.Stdout,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Review with: resume_assistant show %s\n", resume.ID)
	return nil
}

// loadMergedConfig resolves the effective config: file values, then explicit
// CLI flags, then built-in defaults.
func loadMergedConfig(cmd *cobra.Command, configPath string) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("posting") {
		cfg.Posting = tailorPosting
	}
	if cmd.Flags().Changed("storage-dir") {
		cfg.StorageDir = tailorStorageDir
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = tailorAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = tailorModel
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = tailorVerbose
	}

	return cfg.MergeWithDefaults(config.DefaultConfig()), nil
}

// buildAgent returns the Gemini-backed agent when an API key is available and
// nil otherwise, along with a cleanup func that is always safe to call.
func buildAgent(ctx context.Context, cfg config.Config) (analysis.Agent, func(), error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		fmt.Println("No API key configured; using heuristic analysis")
		return nil, func() {}, nil
	}

	client, err := llm.NewGeminiClient(ctx, apiKey, cfg.Model)
	if err != nil {
		return nil, func() {}, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return analysis.NewLLMAgent(client), func() { _ = client.Close() }, nil
}
