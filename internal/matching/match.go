// Package matching scores a stored profile against a job analysis.
// Scoring is a deterministic single pass: case-insensitive substring
// containment between requirement skills and the profile skill list, plus a
// keyword overlap ratio over the profile text.
package matching

import (
	"strings"

	"github.com/yamshy/resume-assistant/internal/analysis"
	"github.com/yamshy/resume-assistant/internal/types"
)

// Component weights for the overall score. Weights of absent components are
// redistributed so the overall score stays in [0, 1].
const (
	requirementWeight = 0.6
	niceToHaveWeight  = 0.15
	keywordWeight     = 0.25
)

// Containment scores: an exact skill match outranks a substring match
const (
	exactMatchScore       = 1.0
	containmentMatchScore = 0.7
)

// Match scores the profile against the job analysis
func Match(ja *types.JobAnalysis, profile *types.Profile) *types.MatchResult {
	profileSkills := normalizedProfileSkills(profile)
	profileText := buildProfileText(profile)

	result := &types.MatchResult{
		Requirements: matchRequirements(ja.Requirements, profileSkills),
		NiceToHaves:  matchRequirements(ja.NiceToHaves, profileSkills),
	}

	result.MatchedKeywords, result.MissingKeywords = matchKeywords(ja.Keywords, profileSkills, profileText)
	result.OverallScore = overallScore(result, len(ja.Keywords))

	return result
}

// normalizedProfileSkills returns the profile's skills in canonical form
func normalizedProfileSkills(profile *types.Profile) []string {
	raw := profile.AllSkills()
	skills := make([]string, 0, len(raw))
	seen := make(map[string]bool)
	for _, s := range raw {
		canonical := analysis.NormalizeSkillName(s)
		key := strings.ToLower(canonical)
		if canonical == "" || seen[key] {
			continue
		}
		seen[key] = true
		skills = append(skills, canonical)
	}
	return skills
}

// buildProfileText concatenates the searchable free text of the profile
func buildProfileText(profile *types.Profile) string {
	var sb strings.Builder
	sb.WriteString(profile.Summary)
	sb.WriteString(" ")
	for _, exp := range profile.Experience {
		sb.WriteString(exp.Role)
		sb.WriteString(" ")
		for _, h := range exp.Highlights {
			sb.WriteString(h)
			sb.WriteString(" ")
		}
	}
	return strings.ToLower(sb.String())
}

// matchRequirements scores each requirement against the profile skill list
func matchRequirements(reqs []types.Requirement, profileSkills []string) []types.RequirementMatch {
	matches := make([]types.RequirementMatch, 0, len(reqs))

	for _, req := range reqs {
		rm := types.RequirementMatch{Requirement: req}
		reqLower := strings.ToLower(analysis.NormalizeSkillName(req.Skill))

		for _, skill := range profileSkills {
			skillLower := strings.ToLower(skill)

			var score float64
			switch {
			case skillLower == reqLower:
				score = exactMatchScore
			case strings.Contains(reqLower, skillLower) || strings.Contains(skillLower, reqLower):
				score = containmentMatchScore
			default:
				continue
			}

			rm.Matched = true
			rm.ProfileSkills = append(rm.ProfileSkills, skill)
			if score > rm.Score {
				rm.Score = score
			}
		}

		matches = append(matches, rm)
	}

	return matches
}

// matchKeywords splits job keywords into matched and missing sets.
// A keyword matches when it appears in the profile skill list or anywhere in
// the profile's free text.
func matchKeywords(keywords, profileSkills []string, profileText string) (matched, missing []string) {
	matched = make([]string, 0, len(keywords))
	missing = make([]string, 0)

	for _, kw := range keywords {
		kwLower := strings.ToLower(kw)

		found := strings.Contains(profileText, kwLower)
		if !found {
			for _, skill := range profileSkills {
				if strings.Contains(strings.ToLower(skill), kwLower) {
					found = true
					break
				}
			}
		}

		if found {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	return matched, missing
}

// overallScore combines component scores, redistributing weights of components
// with no input so an analysis without nice-to-haves is not penalized.
func overallScore(result *types.MatchResult, keywordCount int) float64 {
	total := 0.0
	weightUsed := 0.0

	if len(result.Requirements) > 0 {
		total += requirementWeight * averageScore(result.Requirements)
		weightUsed += requirementWeight
	}
	if len(result.NiceToHaves) > 0 {
		total += niceToHaveWeight * averageScore(result.NiceToHaves)
		weightUsed += niceToHaveWeight
	}
	if keywordCount > 0 {
		total += keywordWeight * (float64(len(result.MatchedKeywords)) / float64(keywordCount))
		weightUsed += keywordWeight
	}

	if weightUsed == 0 {
		return 0
	}
	return total / weightUsed
}

// averageScore returns the mean requirement score
func averageScore(matches []types.RequirementMatch) float64 {
	sum := 0.0
	for _, rm := range matches {
		sum += rm.Score
	}
	return sum / float64(len(matches))
}
