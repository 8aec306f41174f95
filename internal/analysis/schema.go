package analysis

// jobAnalysisSchema is the JSON Schema every agent response must satisfy
// before it is decoded into a JobAnalysis.
const jobAnalysisSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["company", "role_title", "requirements", "keywords"],
	"properties": {
		"company": {"type": "string"},
		"role_title": {"type": "string", "minLength": 1},
		"seniority": {"type": "string"},
		"responsibilities": {
			"type": "array",
			"items": {"type": "string"}
		},
		"requirements": {
			"type": "array",
			"items": {"$ref": "#/definitions/requirement"}
		},
		"nice_to_haves": {
			"type": "array",
			"items": {"$ref": "#/definitions/requirement"}
		},
		"keywords": {
			"type": "array",
			"items": {"type": "string"}
		}
	},
	"definitions": {
		"requirement": {
			"type": "object",
			"required": ["skill"],
			"properties": {
				"skill": {"type": "string", "minLength": 1},
				"level": {"type": "string"},
				"evidence": {"type": "string"}
			}
		}
	}
}`
