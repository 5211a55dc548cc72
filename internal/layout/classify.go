package layout

import "strings"

// Kind is the rendering style assigned to a prepared line.
type Kind int

const (
	KindBlank Kind = iota
	KindHeading
	KindBullet
	KindBody
)

// wrapWidth is the column limit applied to non-heading lines.
const wrapWidth = 90

// sectionLabels are the canonical section markers the prompt asks the model
// to emit, lowercased with the trailing colon included.
var sectionLabels = []string{
	"title:",
	"introduction:",
	"key concepts:",
	"practical examples:",
	"further reading:",
	"summary:",
}

// PrepareLines splits an article body into render-ready lines. Headings pass
// through untouched, blank lines survive as empty strings, and everything
// else is word-wrapped at wrapWidth columns without splitting inside a word.
func PrepareLines(body string) []string {
	var out []string
	for _, raw := range strings.Split(body, "\n") {
		stripped := strings.TrimSpace(raw)
		if stripped == "" {
			out = append(out, "")
			continue
		}
		if isPassThroughHeading(stripped) {
			out = append(out, stripped)
			continue
		}
		out = append(out, wrapLine(stripped, wrapWidth)...)
	}
	return out
}

// isPassThroughHeading decides whether a line skips wrapping. The heuristic
// is a trailing colon, a short line that equals its own uppercasing, or a
// markdown heading marker. A short all-caps line that is not a heading (an
// acronym on its own line) is knowingly misclassified; callers rely on this
// matching the classification stage.
func isPassThroughHeading(s string) bool {
	if strings.HasSuffix(s, ":") {
		return true
	}
	if isMarkdownHeading(s) {
		return true
	}
	return s == strings.ToUpper(s) && len(strings.Fields(s)) <= 6
}

func isMarkdownHeading(s string) bool {
	return strings.HasPrefix(s, "# ") || strings.HasPrefix(s, "## ")
}

// wrapLine greedily breaks a line at existing space boundaries so that each
// piece is at most width characters. Whitespace is dropped only around the
// break point; runs of spaces inside a piece survive untouched. A single word
// longer than width gets a line of its own.
func wrapLine(s string, width int) []string {
	var lines []string
	for len(s) > width {
		cut := strings.LastIndexByte(s[:width+1], ' ')
		if cut <= 0 {
			// First word is longer than width; break after it.
			end := strings.IndexByte(s, ' ')
			if end < 0 {
				break
			}
			lines = append(lines, s[:end])
			s = strings.TrimLeft(s[end:], " ")
			continue
		}
		lines = append(lines, strings.TrimRight(s[:cut], " "))
		s = strings.TrimLeft(s[cut:], " ")
	}
	return append(lines, s)
}

// Classify assigns the render style for a prepared line.
func Classify(line string) Kind {
	if strings.TrimSpace(line) == "" {
		return KindBlank
	}
	if strings.HasSuffix(line, ":") || hasSectionLabel(line) || isMarkdownHeading(line) {
		return KindHeading
	}
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "• ") || strings.HasPrefix(line, "* ") {
		return KindBullet
	}
	return KindBody
}

func hasSectionLabel(line string) bool {
	lower := strings.ToLower(line)
	for _, label := range sectionLabels {
		if strings.HasPrefix(lower, label) {
			return true
		}
	}
	return false
}

// HeadingText returns the display text for a heading line: markdown markers
// and trailing colons are stripped.
func HeadingText(line string) string {
	s := strings.TrimSpace(line)
	if strings.HasPrefix(s, "#") {
		s = strings.TrimLeft(s, "#")
	}
	return strings.TrimSpace(strings.TrimRight(s, ":"))
}
