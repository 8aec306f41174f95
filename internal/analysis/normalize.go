package analysis

import (
	"strings"

	"github.com/yamshy/resume-assistant/internal/types"
)

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
	"react.js":   "React",
	"reactjs":    "React",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"aws":        "AWS",
	"gcp":        "GCP",
	"ci/cd":      "CI/CD",
}

// NormalizeSkillName normalizes a skill name to its canonical form
func NormalizeSkillName(skillName string) string {
	normalized := strings.TrimSpace(skillName)
	if normalized == "" {
		return ""
	}

	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	// Mixed case is assumed intentional (e.g. "gRPC", "PyTorch")
	if normalized != strings.ToUpper(normalized) && normalized != strings.ToLower(normalized) {
		return normalized
	}

	// Single all-lowercase or all-uppercase words get title-cased,
	// except short all-caps tokens which are likely acronyms.
	if !strings.Contains(normalized, " ") {
		if normalized == strings.ToUpper(normalized) && len(normalized) <= 4 {
			return normalized
		}
		return strings.ToUpper(normalized[:1]) + strings.ToLower(normalized[1:])
	}

	return normalized
}

// NormalizeKeywords lowercases, trims, and deduplicates keywords preserving order
func NormalizeKeywords(keywords []string) []string {
	normalized := make([]string, 0, len(keywords))
	seen := make(map[string]bool)
	for _, keyword := range keywords {
		kw := strings.ToLower(strings.TrimSpace(keyword))
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		normalized = append(normalized, kw)
	}
	return normalized
}

// NormalizeRequirements normalizes skill names and deduplicates requirements
func NormalizeRequirements(reqs []types.Requirement) []types.Requirement {
	if len(reqs) == 0 {
		return reqs
	}

	normalized := make([]types.Requirement, 0, len(reqs))
	seen := make(map[string]bool)

	for _, req := range reqs {
		skill := NormalizeSkillName(req.Skill)
		if skill == "" {
			continue
		}
		key := strings.ToLower(skill)
		if seen[key] {
			continue
		}
		seen[key] = true

		req.Skill = skill
		normalized = append(normalized, req)
	}

	return normalized
}
