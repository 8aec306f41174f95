// Package llm - prompt.go provides prompt construction for structured extraction.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "JobAnalysis")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", ...
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// JobAnalysisSchema returns the extraction schema for job postings.
// Extracts the company, role, requirements, and keywords used by matching.
func JobAnalysisSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "JobAnalysis",
		Description: `You are an expert job posting parser. COPY TEXT VERBATIM - do not paraphrase, summarize, or reword.
Your task is to extract and categorize information from a raw job posting.
EXCLUDE: Application form fields, EEO statements, legal disclaimers, generic "About Company" boilerplate.`,
		Fields: []SchemaField{
			{
				Name:        "company",
				Type:        "\"string\"",
				Description: "Company name",
				Required:    true,
			},
			{
				Name:        "role_title",
				Type:        "\"string\"",
				Description: "Job title as written in the posting",
				Required:    true,
			},
			{
				Name:        "seniority",
				Type:        "\"string\"",
				Description: "One of: junior, mid, senior, staff, lead - infer from title and requirements",
				Required:    false,
			},
			{
				Name:        "responsibilities",
				Type:        "[\"string\"]",
				Description: "Job duties, day-to-day work - copy each responsibility verbatim",
				Required:    false,
			},
			{
				Name:        "requirements",
				Type:        "[{\"skill\": \"string\", \"level\": \"string\", \"evidence\": \"string\"}]",
				Description: "Required skills with the verbatim posting sentence as evidence",
				Required:    true,
			},
			{
				Name:        "nice_to_haves",
				Type:        "[{\"skill\": \"string\", \"level\": \"string\", \"evidence\": \"string\"}]",
				Description: "Preferred skills, nice-to-have qualifications",
				Required:    false,
			},
			{
				Name:        "keywords",
				Type:        "[\"string\"]",
				Description: "Short lowercase keywords and technologies mentioned in the posting",
				Required:    true,
			},
		},
	}
}
