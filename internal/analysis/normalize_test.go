package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yamshy/resume-assistant/internal/types"
)

func TestNormalizeSkillName(t *testing.T) {
	cases := map[string]string{
		"golang":     "Go",
		"k8s":        "Kubernetes",
		"postgres":   "PostgreSQL",
		"js":         "JavaScript",
		"gRPC":       "gRPC",
		"PyTorch":    "PyTorch",
		"terraform":  "Terraform",
		"AWS":        "AWS",   // short all-caps tokens are kept as acronyms
		"KAFKA":      "Kafka", // longer all-caps tokens get title-cased
		"  docker  ": "Docker",
		"":           "",
	}

	for input, want := range cases {
		assert.Equal(t, want, NormalizeSkillName(input), "input %q", input)
	}
}

func TestNormalizeKeywords(t *testing.T) {
	input := []string{"Go", "go", "  Kubernetes ", "", "docker", "GO"}

	assert.Equal(t, []string{"go", "kubernetes", "docker"}, NormalizeKeywords(input))
}

func TestNormalizeRequirements_DedupesOnCanonicalName(t *testing.T) {
	reqs := []types.Requirement{
		{Skill: "golang", Evidence: "first"},
		{Skill: "Go", Evidence: "second"},
		{Skill: "", Evidence: "dropped"},
		{Skill: "k8s", Evidence: "kept"},
	}

	normalized := NormalizeRequirements(reqs)

	assert.Len(t, normalized, 2)
	assert.Equal(t, "Go", normalized[0].Skill)
	assert.Equal(t, "first", normalized[0].Evidence)
	assert.Equal(t, "Kubernetes", normalized[1].Skill)
}
