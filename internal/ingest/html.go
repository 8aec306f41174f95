package ingest

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LooksLikeHTML reports whether the posting appears to be markup rather than plain text
func LooksLikeHTML(content string) bool {
	trimmed := strings.TrimSpace(strings.ToLower(content))
	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		return true
	}
	// A posting pasted from a browser often carries body-level tags without a full document
	for _, tag := range []string{"<div", "<p>", "<ul>", "<li>", "<body", "<section"} {
		if strings.Contains(trimmed, tag) {
			return true
		}
	}
	return false
}

// ExtractText parses HTML and returns the visible text, one block element per line
func ExtractText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", &ExtractionError{Message: "failed to parse HTML", Cause: err}
	}

	// Drop non-content elements before extracting text
	doc.Find("script, style, noscript, nav, footer, header, form").Remove()

	var sb strings.Builder
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, td, div").Each(func(_ int, s *goquery.Selection) {
		// Skip container divs whose text is covered by child block elements
		if goquery.NodeName(s) == "div" && s.ChildrenFiltered("p, ul, ol, div, h1, h2, h3, h4, h5, h6, table").Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	})

	extracted := sb.String()
	if strings.TrimSpace(extracted) == "" {
		// Fallback for fragments with no recognized block elements
		extracted = doc.Text()
	}

	return extracted, nil
}
