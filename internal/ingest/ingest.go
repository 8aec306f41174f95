// Package ingest prepares raw job postings for analysis: reading from disk,
// stripping markup, and normalizing whitespace.
package ingest

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// maxConsecutiveBlankLines is the cap applied when collapsing blank runs
const maxConsecutiveBlankLines = 2

var multiSpaceRe = regexp.MustCompile(`[ \t]{2,}`)

// FromFile reads a job posting from disk and returns cleaned plain text
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job posting %s: %w", path, err)
	}
	return FromString(string(data))
}

// FromString cleans a raw job posting, stripping HTML when the input is markup
func FromString(raw string) (string, error) {
	text := raw
	if LooksLikeHTML(raw) {
		extracted, err := ExtractText(raw)
		if err != nil {
			return "", err
		}
		text = extracted
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", &EmptyPostingError{}
	}

	return cleaned, nil
}

// CleanText normalizes text content while preserving line structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF -> LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		line = multiSpaceRe.ReplaceAllString(line, " ")
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = collapseBlankLines(result)

	return strings.TrimSpace(result)
}

// collapseBlankLines limits runs of blank lines to maxConsecutiveBlankLines
func collapseBlankLines(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))

	blanks := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blanks++
			if blanks > maxConsecutiveBlankLines {
				continue
			}
			out = append(out, "")
			continue
		}
		blanks = 0
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}
