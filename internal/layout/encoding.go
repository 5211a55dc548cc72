package layout

import "golang.org/x/text/encoding/charmap"

// sanitize substitutes runes the backend's core fonts cannot encode. The
// built-in Helvetica variants are cp1252 only, so anything outside that set
// (emoji, CJK) is replaced with '?' instead of failing the whole document.
func sanitize(s string) string {
	clean := true
	for _, r := range s {
		if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
			clean = false
			break
		}
	}
	if clean {
		return s
	}
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if _, ok := charmap.Windows1252.EncodeRune(r); ok {
			out = append(out, r)
		} else {
			out = append(out, '?')
		}
	}
	return string(out)
}
