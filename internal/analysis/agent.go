// Package analysis extracts structured job requirements and keywords from raw
// job postings. The production path delegates to an external agent returning
// structured JSON; a deterministic heuristic extractor serves as the fallback
// when no agent is configured.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yamshy/resume-assistant/internal/llm"
	"github.com/yamshy/resume-assistant/internal/schemas"
	"github.com/yamshy/resume-assistant/internal/types"
)

// Agent is the external intelligence boundary: given cleaned posting text it
// returns a structured job analysis. Implementations call out of process.
type Agent interface {
	AnalyzeJobPosting(ctx context.Context, postingText string) (*types.JobAnalysis, error)
}

// LLMAgent implements Agent on top of an llm.Client
type LLMAgent struct {
	client llm.Client
}

// NewLLMAgent creates an agent backed by the given LLM client
func NewLLMAgent(client llm.Client) *LLMAgent {
	return &LLMAgent{client: client}
}

// AnalyzeJobPosting extracts a JobAnalysis via the LLM, validating the raw JSON
// response against the job analysis schema before decoding it.
func (a *LLMAgent) AnalyzeJobPosting(ctx context.Context, postingText string) (*types.JobAnalysis, error) {
	prompt := llm.BuildExtractionPrompt(llm.JobAnalysisSchema(), postingText)

	raw, err := a.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, &AgentError{Message: "failed to generate job analysis", Cause: err}
	}

	return DecodeAnalysis(raw)
}

// DecodeAnalysis validates agent JSON output against the schema and decodes it
// into a normalized JobAnalysis.
func DecodeAnalysis(raw string) (*types.JobAnalysis, error) {
	if err := schemas.ValidateJSONString(jobAnalysisSchema, raw); err != nil {
		return nil, &ParseError{Message: "agent response failed schema validation", Cause: err}
	}

	var ja types.JobAnalysis
	if err := json.Unmarshal([]byte(raw), &ja); err != nil {
		return nil, &ParseError{Message: "failed to decode agent response", Cause: err}
	}

	postProcess(&ja)
	return &ja, nil
}

// Analyze runs the agent when one is provided and falls back to the
// deterministic heuristic extractor otherwise.
func Analyze(ctx context.Context, agent Agent, postingText string) (*types.JobAnalysis, error) {
	if postingText == "" {
		return nil, fmt.Errorf("posting text is required")
	}

	if agent == nil {
		return ExtractHeuristic(postingText), nil
	}

	ja, err := agent.AnalyzeJobPosting(ctx, postingText)
	if err != nil {
		return nil, err
	}
	postProcess(ja)
	return ja, nil
}

// postProcess applies normalization shared by the agent and heuristic paths
func postProcess(ja *types.JobAnalysis) {
	ja.Requirements = NormalizeRequirements(ja.Requirements)
	ja.NiceToHaves = NormalizeRequirements(ja.NiceToHaves)
	ja.Keywords = NormalizeKeywords(ja.Keywords)
}
