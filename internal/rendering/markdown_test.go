package rendering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamshy/resume-assistant/internal/types"
)

func renderInputs() (*types.Profile, *types.JobAnalysis, *types.MatchResult) {
	profile := &types.Profile{
		Contact: types.Contact{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "555-0100",
			Location: "Berlin",
		},
		Summary: "Backend engineer with ten years of experience.",
		Skills:  []string{"Python", "Go", "Kubernetes"},
		Experience: []types.ExperienceEntry{
			{
				Company:    "DataCo",
				Role:       "Data Engineer",
				StartDate:  "2015-01",
				EndDate:    "2018-06",
				Highlights: []string{"Built ETL pipelines"},
				Skills:     []string{"Python"},
			},
			{
				Company:    "Acme",
				Role:       "Platform Engineer",
				StartDate:  "2018-07",
				EndDate:    "present",
				Highlights: []string{"Ran Kubernetes clusters", "Shipped Go services"},
				Skills:     []string{"Go", "Kubernetes"},
			},
		},
		Education: []types.Education{
			{Institution: "TU Berlin", Degree: "BSc", Field: "Computer Science", Year: "2014"},
		},
	}

	ja := &types.JobAnalysis{
		Company:   "Initech",
		RoleTitle: "Senior Go Engineer",
	}

	match := &types.MatchResult{
		Requirements: []types.RequirementMatch{
			{Requirement: types.Requirement{Skill: "Go"}, Matched: true, Score: 1.0, ProfileSkills: []string{"Go"}},
			{Requirement: types.Requirement{Skill: "Kubernetes"}, Matched: true, Score: 1.0, ProfileSkills: []string{"Kubernetes"}},
		},
		MatchedKeywords: []string{"go", "kubernetes"},
		OverallScore:    1.0,
	}

	return profile, ja, match
}

func TestRenderMarkdown_Structure(t *testing.T) {
	profile, ja, match := renderInputs()

	md, err := RenderMarkdown(profile, ja, match)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(md, "# Jane Doe\n"))
	assert.Contains(t, md, "jane@example.com · 555-0100 · Berlin")
	assert.Contains(t, md, "*Tailored for Senior Go Engineer at Initech*")
	assert.Contains(t, md, "## Summary")
	assert.Contains(t, md, "Relevant strengths for this role: go, kubernetes.")
	assert.Contains(t, md, "## Skills")
	assert.Contains(t, md, "## Experience")
	assert.Contains(t, md, "### Platform Engineer — Acme (2018-07 – Present)")
	assert.Contains(t, md, "- Ran Kubernetes clusters")
	assert.Contains(t, md, "## Education")
	assert.Contains(t, md, "- BSc in Computer Science, TU Berlin, 2014")
}

func TestRenderMarkdown_MatchedSkillsFirst(t *testing.T) {
	profile, ja, match := renderInputs()

	md, err := RenderMarkdown(profile, ja, match)
	require.NoError(t, err)

	goIdx := strings.Index(md, "- Go\n")
	pyIdx := strings.Index(md, "- Python\n")
	require.Positive(t, goIdx)
	require.Positive(t, pyIdx)
	assert.Less(t, goIdx, pyIdx, "matched skills should be listed before unmatched ones")
}

func TestRenderMarkdown_VariantSkillNamesSortMatchedFirst(t *testing.T) {
	profile := &types.Profile{
		Contact: types.Contact{Name: "Jane Doe", Email: "jane@example.com"},
		Summary: "Backend engineer.",
		Skills:  []string{"Python", "golang"},
	}
	ja := &types.JobAnalysis{RoleTitle: "Go Engineer"}
	// Matching reports the canonical name even when the profile says "golang"
	match := &types.MatchResult{
		Requirements: []types.RequirementMatch{
			{Requirement: types.Requirement{Skill: "Go"}, Matched: true, Score: 1.0, ProfileSkills: []string{"Go"}},
		},
	}

	md, err := RenderMarkdown(profile, ja, match)
	require.NoError(t, err)

	goIdx := strings.Index(md, "- golang\n")
	pyIdx := strings.Index(md, "- Python\n")
	require.Positive(t, goIdx)
	require.Positive(t, pyIdx)
	assert.Less(t, goIdx, pyIdx)
}

func TestRenderMarkdown_RelevantExperienceFirst(t *testing.T) {
	profile, ja, match := renderInputs()

	md, err := RenderMarkdown(profile, ja, match)
	require.NoError(t, err)

	acmeIdx := strings.Index(md, "### Platform Engineer — Acme")
	dataIdx := strings.Index(md, "### Data Engineer — DataCo")
	require.Positive(t, acmeIdx)
	require.Positive(t, dataIdx)
	assert.Less(t, acmeIdx, dataIdx)
}

func TestRenderMarkdown_Deterministic(t *testing.T) {
	profile, ja, match := renderInputs()

	first, err := RenderMarkdown(profile, ja, match)
	require.NoError(t, err)
	second, err := RenderMarkdown(profile, ja, match)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderMarkdown_MinimalProfile(t *testing.T) {
	profile := &types.Profile{
		Contact: types.Contact{Name: "Jane Doe", Email: "jane@example.com"},
		Skills:  []string{"Go"},
	}
	ja := &types.JobAnalysis{RoleTitle: "Engineer"}

	md, err := RenderMarkdown(profile, ja, &types.MatchResult{})
	require.NoError(t, err)

	assert.Contains(t, md, "# Jane Doe")
	assert.Contains(t, md, "Experienced professional.")
	assert.NotContains(t, md, "## Experience")
	assert.NotContains(t, md, "## Education")
}

func TestDateRange(t *testing.T) {
	assert.Equal(t, "", dateRange("", ""))
	assert.Equal(t, "2020-01 – Present", dateRange("2020-01", "present"))
	assert.Equal(t, "2020-01 – Present", dateRange("2020-01", ""))
	assert.Equal(t, "2020-01 – 2021-02", dateRange("2020-01", "2021-02"))
	assert.Equal(t, "2021-02", dateRange("", "2021-02"))
}
