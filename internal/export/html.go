package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/yamshy/resume-assistant/internal/types"
)

// pageStyle keeps the PDF output compact and print-friendly
const pageStyle = `body { font-family: Georgia, serif; margin: 2.5em auto; max-width: 46em; color: #222; }
h1 { font-size: 1.6em; margin-bottom: 0.1em; }
h2 { font-size: 1.1em; border-bottom: 1px solid #999; margin-top: 1.2em; }
h3 { font-size: 1.0em; margin-bottom: 0.2em; }
ul { margin-top: 0.2em; }
em { color: #555; }`

// buildHTML wraps the draft's markdown, converted to HTML, in a printable document
func buildHTML(resume *types.TailoredResume) string {
	title := "Resume"
	if resume.JobAnalysis != nil && resume.JobAnalysis.RoleTitle != "" {
		title = "Resume – " + resume.JobAnalysis.RoleTitle
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
%s
</style>
</head>
<body>
%s
</body>
</html>
`, html.EscapeString(title), pageStyle, markdownToHTML(resume.Markdown))
}

// markdownToHTML converts the markdown subset the renderer emits: headings,
// bullet lists, emphasis-only lines, and plain paragraphs. It is not a general
// markdown parser and does not need to be.
func markdownToHTML(md string) string {
	var sb strings.Builder
	inList := false

	closeList := func() {
		if inList {
			sb.WriteString("</ul>\n")
			inList = false
		}
	}

	for _, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			closeList()
		case strings.HasPrefix(trimmed, "### "):
			closeList()
			sb.WriteString("<h3>" + html.EscapeString(trimmed[4:]) + "</h3>\n")
		case strings.HasPrefix(trimmed, "## "):
			closeList()
			sb.WriteString("<h2>" + html.EscapeString(trimmed[3:]) + "</h2>\n")
		case strings.HasPrefix(trimmed, "# "):
			closeList()
			sb.WriteString("<h1>" + html.EscapeString(trimmed[2:]) + "</h1>\n")
		case strings.HasPrefix(trimmed, "- "):
			if !inList {
				sb.WriteString("<ul>\n")
				inList = true
			}
			sb.WriteString("<li>" + html.EscapeString(trimmed[2:]) + "</li>\n")
		case strings.HasPrefix(trimmed, "*") && strings.HasSuffix(trimmed, "*") && len(trimmed) > 2:
			closeList()
			sb.WriteString("<p><em>" + html.EscapeString(strings.Trim(trimmed, "*")) + "</em></p>\n")
		default:
			closeList()
			sb.WriteString("<p>" + html.EscapeString(trimmed) + "</p>\n")
		}
	}

	closeList()
	return sb.String()
}
