package generator

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// sectionMarkers are the labels the prompt demands. If none of them appear in
// the model output, the article is wrapped in a minimal scaffold so the
// layout stage always has headings to work with.
var sectionMarkers = []string{
	"Title:",
	"Introduction:",
	"Key Concepts:",
	"Practical Examples:",
	"Further Reading:",
	"Summary:",
}

var titleLineRe = regexp.MustCompile(`(?mi)^(?:title:|#)\s*(.+)$`)

// HasSections reports whether the article already carries any of the
// canonical section labels.
func HasSections(article string) bool {
	for _, m := range sectionMarkers {
		if strings.Contains(article, m) {
			return true
		}
	}
	return false
}

// EnsureSections returns the article unchanged when it is already structured,
// otherwise it wraps the raw text in the canonical scaffold.
func EnsureSections(article, topic string) string {
	if HasSections(article) {
		return article
	}
	title := cases.Title(language.English).String(strings.TrimSpace(topic))
	lines := []string{
		"Title: " + title,
		"",
		"Introduction:",
		article,
		"",
		"Key Concepts:",
		"- (See above — split into bullets for clarity)",
		"",
		"Practical Examples:",
		"- Example 1: (Please refine)",
		"- Example 2: (Please refine)",
		"",
		"Further Reading:",
		"- (Search current resources on the topic)",
		"",
		"Summary:",
		"- (Brief summary)",
	}
	return strings.Join(lines, "\n")
}

// ExtractTitle pulls the article title from a "Title:" or markdown heading
// line. It returns the empty string when no title line is present.
func ExtractTitle(article string) string {
	m := titleLineRe.FindStringSubmatch(article)
	if len(m) >= 2 {
		return strings.TrimSpace(strings.TrimLeft(m[1], "# "))
	}
	return ""
}
