// Package pipeline provides the high-level orchestration for the resume
// tailoring process: ingest -> analyze -> match -> render -> persist.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/yamshy/resume-assistant/internal/analysis"
	"github.com/yamshy/resume-assistant/internal/ingest"
	"github.com/yamshy/resume-assistant/internal/matching"
	"github.com/yamshy/resume-assistant/internal/observability"
	"github.com/yamshy/resume-assistant/internal/rendering"
	"github.com/yamshy/resume-assistant/internal/storage"
	"github.com/yamshy/resume-assistant/internal/types"
)

// Options holds configuration for running the tailoring pipeline
type Options struct {
	PostingPath string         // Path to a job posting file (mutually exclusive with PostingText)
	PostingText string         // Raw job posting text
	Agent       analysis.Agent // Optional: external analysis agent; heuristic fallback when nil
	Store       *storage.Store // Required: draft and profile persistence
	Cache       *Cache         // Optional: tailor cache; identical inputs return the cached draft
	Verbose     bool           // Print artifact summaries after each step
	Out         io.Writer      // Step log destination; defaults to os.Stdout
}

// Run executes the full tailoring pipeline and returns the persisted draft
func Run(ctx context.Context, opts Options) (*types.TailoredResume, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if opts.PostingPath == "" && opts.PostingText == "" {
		return nil, fmt.Errorf("either a posting path or posting text is required")
	}
	if opts.PostingPath != "" && opts.PostingText != "" {
		return nil, fmt.Errorf("posting path and posting text are mutually exclusive")
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	printer := observability.NewPrinter(out)

	// Step 1: Ingest the posting and load the profile in parallel; the two
	// have no data dependency on each other.
	fmt.Fprintf(out, "Step 1/5: Ingesting posting and loading profile...\n")
	var cleaned string
	var profile *types.Profile

	var g errgroup.Group
	g.Go(func() error {
		var err error
		if opts.PostingPath != "" {
			cleaned, err = ingest.FromFile(opts.PostingPath)
		} else {
			cleaned, err = ingest.FromString(opts.PostingText)
		}
		if err != nil {
			return fmt.Errorf("ingestion failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		profile, err = opts.Store.GetProfile()
		if err != nil {
			return fmt.Errorf("profile load failed: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The cache key needs only the tailoring inputs, so a cached draft
	// short-circuits before the agent is ever invoked.
	key := Key(cleaned, profile.Checksum())
	if opts.Cache != nil {
		if id, ok := opts.Cache.Get(key); ok {
			cached, err := opts.Store.GetResume(id.String())
			if err == nil {
				fmt.Fprintf(out, "Using cached draft %s\n", id)
				return cached, nil
			}
			if errors.Is(err, storage.ErrNotFound) {
				opts.Cache.Drop(key)
			}
		}
	}

	// Step 2: Analyze the posting
	fmt.Fprintf(out, "Step 2/5: Analyzing posting...\n")
	ja, err := analysis.Analyze(ctx, opts.Agent, cleaned)
	if err != nil {
		return nil, fmt.Errorf("job analysis failed: %w", err)
	}

	if opts.Verbose {
		printer.PrintJobAnalysis(ja)
	}

	// Step 3: Match profile against requirements
	fmt.Fprintf(out, "Step 3/5: Matching profile against requirements...\n")
	match := matching.Match(ja, profile)
	if opts.Verbose {
		printer.PrintMatchResult(match)
	}

	// Step 4: Render the draft
	fmt.Fprintf(out, "Step 4/5: Rendering tailored draft...\n")
	markdown, err := rendering.RenderMarkdown(profile, ja, match)
	if err != nil {
		return nil, fmt.Errorf("rendering failed: %w", err)
	}

	// Step 5: Persist the pending draft
	fmt.Fprintf(out, "Step 5/5: Saving draft...\n")
	resume := &types.TailoredResume{
		ID:          uuid.New(),
		JobAnalysis: ja,
		MatchResult: match,
		Markdown:    markdown,
		Status:      types.StatusPending,
		Version:     1,
		CreatedAt:   time.Now().UTC(),
	}
	if err := opts.Store.SaveResume(resume); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}

	if opts.Cache != nil {
		opts.Cache.Put(key, resume.ID)
	}

	fmt.Fprintf(out, "Draft %s saved (score %.2f), awaiting approval\n", resume.ID, match.OverallScore)
	return resume, nil
}
