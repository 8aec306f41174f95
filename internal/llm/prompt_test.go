package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildExtractionPrompt_IncludesSchemaAndInput(t *testing.T) {
	schema := ExtractionSchema{
		Name:        "Test",
		Description: "Extract test data.",
		Fields: []SchemaField{
			{Name: "title", Type: "\"string\"", Description: "the title", Required: true},
			{Name: "tags", Type: "[\"string\"]"},
		},
	}

	prompt := BuildExtractionPrompt(schema, "some posting text")

	assert.True(t, strings.HasPrefix(prompt, "Extract test data."))
	assert.Contains(t, prompt, "\"title\": \"string\" (required) // the title,")
	assert.Contains(t, prompt, "\"tags\": [\"string\"]")
	assert.Contains(t, prompt, "some posting text")
	assert.Contains(t, prompt, "Return ONLY the JSON object")
}

func TestJobAnalysisSchema_RequiredFields(t *testing.T) {
	schema := JobAnalysisSchema()

	required := make(map[string]bool)
	for _, field := range schema.Fields {
		if field.Required {
			required[field.Name] = true
		}
	}

	assert.True(t, required["company"])
	assert.True(t, required["role_title"])
	assert.True(t, required["requirements"])
	assert.True(t, required["keywords"])
}

func TestCleanJSONBlock(t *testing.T) {
	assert.Equal(t, `{"a":1}`, CleanJSONBlock("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, CleanJSONBlock("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, CleanJSONBlock(`  {"a":1}  `))
}
