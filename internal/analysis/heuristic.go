package analysis

import (
	"strings"

	"github.com/yamshy/resume-assistant/internal/types"
)

// knownSkills is the dictionary the heuristic extractor scans postings against.
// Names are canonical; matching is case-insensitive with token boundaries.
var knownSkills = []string{
	"Go", "Python", "Java", "JavaScript", "TypeScript", "Rust", "C++", "C#",
	"Ruby", "PHP", "Kotlin", "Swift", "Scala", "SQL",
	"React", "Vue", "Angular", "Node.js",
	"Kubernetes", "Docker", "Terraform", "Ansible", "Helm",
	"AWS", "GCP", "Azure",
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch", "Kafka",
	"RabbitMQ", "gRPC", "GraphQL", "REST",
	"CI/CD", "Git", "Linux", "Microservices", "Distributed Systems",
	"Machine Learning", "Data Engineering", "Observability",
}

// seniorityLevels maps title tokens to seniority labels, checked in order
var seniorityLevels = []struct {
	token string
	level string
}{
	{"principal", "lead"},
	{"staff", "staff"},
	{"lead", "lead"},
	{"senior", "senior"},
	{"sr.", "senior"},
	{"junior", "junior"},
	{"jr.", "junior"},
	{"intern", "junior"},
}

// section labels used while walking posting lines
const (
	sectionNone             = ""
	sectionRequirements     = "requirements"
	sectionNiceToHave       = "nice_to_have"
	sectionResponsibilities = "responsibilities"
)

// ExtractHeuristic builds a JobAnalysis from posting text without any agent.
// It detects section headings, collects bullet lines, and scans every line
// against the known-skill dictionary. Output is deterministic for fixed input.
func ExtractHeuristic(text string) *types.JobAnalysis {
	lines := strings.Split(text, "\n")

	ja := &types.JobAnalysis{}
	section := sectionNone

	seenReq := make(map[string]bool)
	seenNice := make(map[string]bool)
	keywords := make([]string, 0)
	seenKeyword := make(map[string]bool)

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if company, ok := companyLine(trimmed); ok {
			if ja.Company == "" {
				ja.Company = company
			}
			continue
		}

		// Section headings are never title candidates
		if heading := classifyHeading(trimmed); heading != sectionNone {
			section = heading
			continue
		}

		if ja.RoleTitle == "" && !isBullet(trimmed) {
			ja.RoleTitle = strings.TrimLeft(trimmed, "# \t")
		}

		// Collect skill hits on this line
		for _, skill := range knownSkills {
			if !containsToken(trimmed, skill) {
				continue
			}

			kw := strings.ToLower(skill)
			if !seenKeyword[kw] {
				seenKeyword[kw] = true
				keywords = append(keywords, kw)
			}

			switch section {
			case sectionRequirements:
				if !seenReq[kw] {
					seenReq[kw] = true
					ja.Requirements = append(ja.Requirements, types.Requirement{
						Skill:    skill,
						Evidence: stripBullet(trimmed),
					})
				}
			case sectionNiceToHave:
				if !seenNice[kw] && !seenReq[kw] {
					seenNice[kw] = true
					ja.NiceToHaves = append(ja.NiceToHaves, types.Requirement{
						Skill:    skill,
						Evidence: stripBullet(trimmed),
					})
				}
			}
		}

		if section == sectionResponsibilities && isBullet(trimmed) {
			ja.Responsibilities = append(ja.Responsibilities, stripBullet(trimmed))
		}
	}

	ja.Seniority = inferSeniority(ja.RoleTitle)
	ja.Keywords = keywords

	// A posting with no recognizable sections still yields requirements:
	// treat every dictionary hit as a requirement so matching has input.
	if len(ja.Requirements) == 0 && len(ja.NiceToHaves) == 0 {
		for _, kw := range keywords {
			ja.Requirements = append(ja.Requirements, types.Requirement{
				Skill: NormalizeSkillName(kw),
			})
		}
	}

	postProcess(ja)
	return ja
}

// classifyHeading returns the section a heading line opens, if any
func classifyHeading(line string) string {
	lower := strings.ToLower(strings.TrimLeft(line, "#-* \t"))
	isHeadingShaped := strings.HasSuffix(lower, ":") || len(lower) < 60

	if !isHeadingShaped {
		return sectionNone
	}

	switch {
	case strings.Contains(lower, "nice to have"),
		strings.Contains(lower, "nice-to-have"),
		strings.Contains(lower, "preferred"),
		strings.Contains(lower, "bonus"):
		return sectionNiceToHave
	case strings.Contains(lower, "requirement"),
		strings.Contains(lower, "qualification"),
		strings.Contains(lower, "must have"),
		strings.Contains(lower, "what you'll need"),
		strings.Contains(lower, "who you are"):
		return sectionRequirements
	case strings.Contains(lower, "responsibilit"),
		strings.Contains(lower, "what you'll do"),
		strings.Contains(lower, "what you will do"):
		return sectionResponsibilities
	}

	return sectionNone
}

// companyLine extracts a company name from lines like "Company: Acme Corp"
func companyLine(line string) (string, bool) {
	lower := strings.ToLower(line)
	for _, prefix := range []string{"company:", "employer:", "organization:"} {
		if strings.HasPrefix(lower, prefix) {
			name := strings.TrimSpace(line[len(prefix):])
			if name != "" {
				return name, true
			}
		}
	}
	return "", false
}

// inferSeniority maps role title tokens to a seniority label
func inferSeniority(title string) string {
	lower := strings.ToLower(title)
	for _, sl := range seniorityLevels {
		if strings.Contains(lower, sl.token) {
			return sl.level
		}
	}
	return ""
}

// isBullet reports whether a line is a bulleted list item
func isBullet(line string) bool {
	return strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") || strings.HasPrefix(line, "•")
}

// stripBullet removes list markers from a line
func stripBullet(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "-*• \t"))
}

// containsToken reports whether text contains sub with token boundaries on both
// sides, case-insensitively. Plain substring search is not enough: "Go" must
// not match inside "Google".
func containsToken(text, sub string) bool {
	lowerText := strings.ToLower(text)
	lowerSub := strings.ToLower(sub)

	for start := 0; ; {
		idx := strings.Index(lowerText[start:], lowerSub)
		if idx < 0 {
			return false
		}
		idx += start

		before := idx == 0 || isBoundary(rune(lowerText[idx-1]))
		afterIdx := idx + len(lowerSub)
		after := afterIdx >= len(lowerText) || isBoundary(rune(lowerText[afterIdx]))
		if before && after {
			return true
		}

		start = idx + 1
	}
}

// isBoundary reports whether r separates tokens
func isBoundary(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return false
	case r == '+', r == '#': // keep "c++" and "c#" out of neighboring words
		return false
	}
	return true
}
