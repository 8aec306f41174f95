package rendering

import (
	"sort"
	"strings"
	"text/template"

	"github.com/yamshy/resume-assistant/internal/analysis"
	"github.com/yamshy/resume-assistant/internal/types"
)

// resumeTemplate is the markdown layout for tailored drafts. Rendering is
// deterministic: no LLM in the render path.
const resumeTemplate = `# {{.Name}}

{{.ContactLine}}

*Tailored for {{.RoleTitle}}{{if .Company}} at {{.Company}}{{end}}*

## Summary

{{.Summary}}

## Skills

{{range .Skills}}- {{.}}
{{end}}{{if .Experience}}
## Experience
{{range .Experience}}
### {{.Role}} — {{.Company}}{{if .Dates}} ({{.Dates}}){{end}}

{{range .Highlights}}- {{.}}
{{end}}{{end}}{{end}}{{if .Education}}
## Education
{{range .Education}}
- {{.}}
{{end}}{{end}}`

// TemplateData represents the data structure passed to the resume template
type TemplateData struct {
	Name        string
	ContactLine string
	RoleTitle   string
	Company     string
	Summary     string
	Skills      []string
	Experience  []ExperienceSection
	Education   []string
}

// ExperienceSection represents one position in the rendered draft
type ExperienceSection struct {
	Role       string
	Company    string
	Dates      string
	Highlights []string
}

// RenderMarkdown renders the tailored resume draft for the given profile,
// job analysis, and match result.
func RenderMarkdown(profile *types.Profile, ja *types.JobAnalysis, match *types.MatchResult) (string, error) {
	tmpl, err := template.New("resume").Parse(resumeTemplate)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse resume template", Cause: err}
	}

	data := buildTemplateData(profile, ja, match)

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{Message: "failed to execute resume template", Cause: err}
	}

	return strings.TrimSpace(result.String()) + "\n", nil
}

// buildTemplateData constructs the template data structure from inputs
func buildTemplateData(profile *types.Profile, ja *types.JobAnalysis, match *types.MatchResult) *TemplateData {
	matched := matchedSkillSet(match)

	data := &TemplateData{
		Name:        profile.Contact.Name,
		ContactLine: contactLine(profile.Contact),
		RoleTitle:   ja.RoleTitle,
		Company:     ja.Company,
		Summary:     tailoredSummary(profile, match),
		Skills:      orderSkills(profile.AllSkills(), matched),
		Experience:  orderExperience(profile.Experience, matched),
	}

	for _, edu := range profile.Education {
		data.Education = append(data.Education, educationLine(edu))
	}

	return data
}

// contactLine joins the available contact fields with separators
func contactLine(c types.Contact) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{c.Email, c.Phone, c.Location, c.Website} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " · ")
}

// tailoredSummary extends the profile summary with the matched keywords so the
// draft speaks to the posting.
func tailoredSummary(profile *types.Profile, match *types.MatchResult) string {
	summary := strings.TrimSpace(profile.Summary)
	if summary == "" {
		summary = "Experienced professional."
	}

	if match != nil && len(match.MatchedKeywords) > 0 {
		summary += " Relevant strengths for this role: " + strings.Join(match.MatchedKeywords, ", ") + "."
	}

	return summary
}

// canonicalSkill reduces a skill name to the form matching compares on, so
// profile variants like "golang" line up with matched skills like "Go".
func canonicalSkill(s string) string {
	return strings.ToLower(analysis.NormalizeSkillName(s))
}

// matchedSkillSet returns the canonical set of profile skills that matched
func matchedSkillSet(match *types.MatchResult) map[string]bool {
	set := make(map[string]bool)
	if match == nil {
		return set
	}
	for _, s := range match.MatchedSkills() {
		set[canonicalSkill(s)] = true
	}
	return set
}

// orderSkills lists matched skills first, preserving profile order within each group
func orderSkills(skills []string, matched map[string]bool) []string {
	ordered := make([]string, len(skills))
	copy(ordered, skills)

	sort.SliceStable(ordered, func(i, j int) bool {
		return matched[canonicalSkill(ordered[i])] && !matched[canonicalSkill(ordered[j])]
	})

	return ordered
}

// orderExperience lists positions touching matched skills first, preserving
// profile order within each group.
func orderExperience(entries []types.ExperienceEntry, matched map[string]bool) []ExperienceSection {
	type scored struct {
		section ExperienceSection
		hits    int
	}

	sections := make([]scored, 0, len(entries))
	for _, entry := range entries {
		hits := 0
		for _, s := range entry.Skills {
			if matched[canonicalSkill(s)] {
				hits++
			}
		}
		sections = append(sections, scored{
			section: ExperienceSection{
				Role:       entry.Role,
				Company:    entry.Company,
				Dates:      dateRange(entry.StartDate, entry.EndDate),
				Highlights: entry.Highlights,
			},
			hits: hits,
		})
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].hits > sections[j].hits
	})

	out := make([]ExperienceSection, len(sections))
	for i, s := range sections {
		out[i] = s.section
	}
	return out
}

// dateRange formats a start/end pair, treating "present" as ongoing
func dateRange(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case end == "" || strings.EqualFold(end, "present"):
		return start + " – Present"
	case start == "":
		return end
	default:
		return start + " – " + end
	}
}

// educationLine formats a single education entry
func educationLine(edu types.Education) string {
	parts := make([]string, 0, 3)
	if edu.Degree != "" {
		degree := edu.Degree
		if edu.Field != "" {
			degree += " in " + edu.Field
		}
		parts = append(parts, degree)
	}
	parts = append(parts, edu.Institution)
	if edu.Year != "" {
		parts = append(parts, edu.Year)
	}
	return strings.Join(parts, ", ")
}
