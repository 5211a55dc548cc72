package layout

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"codeberg.org/go-pdf/fpdf"
)

// defaultTitle replaces an empty topic on the title block.
const defaultTitle = "Educational Article"

// Engine renders generated articles into paginated PDF artifacts. One engine
// is shared read-only across requests; every Render call produces a new file.
type Engine struct {
	outDir string

	// Now is swappable for tests.
	Now func() time.Time
}

func NewEngine(outDir string) *Engine {
	return &Engine{outDir: outDir, Now: time.Now}
}

// Render lays out the article under the given title and writes a new PDF into
// the output directory. It returns the path of the written file. On failure
// no file is left behind.
func (e *Engine) Render(title, body string) (string, error) {
	if err := os.MkdirAll(e.outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	now := e.Now()
	path := filepath.Join(e.outDir, Filename(title, now))

	doc := fpdf.New("P", "mm", "A4", "")
	// Pin both info timestamps so identical input at the same clock reading
	// produces byte-identical documents.
	doc.SetCreationDate(now)
	doc.SetModificationDate(now)
	doc.SetAutoPageBreak(true, 15)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Helvetica", "I", 8)
		doc.SetTextColor(100, 100, 100)
		doc.CellFormat(0, 10, fmt.Sprintf("Page %d", doc.PageNo()), "", 0, "C", false, 0, "")
	})
	doc.AddPage()

	display := strings.TrimSpace(title)
	if display == "" {
		display = defaultTitle
	}
	doc.SetFont("Helvetica", "B", 20)
	doc.SetTextColor(40, 40, 80)
	doc.MultiCell(0, 10, tr(sanitize(display)), "", "C", false)
	doc.Ln(4)

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(90, 90, 110)
	doc.MultiCell(0, 6, "Generated on: "+now.Format("January 02, 2006 15:04:05"), "", "C", false)
	doc.Ln(8)

	doc.SetFont("Helvetica", "", 11)
	doc.SetTextColor(10, 10, 30)
	for _, line := range PrepareLines(body) {
		switch Classify(line) {
		case KindBlank:
			doc.Ln(4)
		case KindHeading:
			doc.SetFont("Helvetica", "B", 14)
			doc.SetTextColor(40, 40, 80)
			doc.MultiCell(0, 8, tr(sanitize(HeadingText(line))), "", "L", false)
			doc.Ln(2)
			doc.SetFont("Helvetica", "", 11)
			doc.SetTextColor(10, 10, 30)
		case KindBullet:
			doc.SetFont("Helvetica", "", 11)
			doc.Cell(8, 6, "")
			doc.MultiCell(0, 6, tr(sanitize(line)), "", "L", false)
		default:
			doc.SetFont("Helvetica", "", 11)
			doc.MultiCell(0, 6, tr(sanitize(line)), "", "L", false)
		}
	}

	if err := doc.OutputFileAndClose(path); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write pdf: %w", err)
	}
	log.Printf("[Layout] wrote %s", path)
	return path, nil
}

// Filename builds the artifact name for a topic and timestamp:
// article_<sanitized topic>_<YYYYMMDD_HHMMSS>.pdf
func Filename(topic string, ts time.Time) string {
	safe := sanitizeTopic(topic)
	if safe == "" {
		safe = "topic"
	}
	return fmt.Sprintf("article_%s_%s.pdf", safe, ts.Format("20060102_150405"))
}

// sanitizeTopic keeps letters, digits, spaces, hyphens and underscores, then
// truncates to 40 characters.
func sanitizeTopic(topic string) string {
	var b strings.Builder
	for _, r := range topic {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	runes := []rune(strings.TrimSpace(b.String()))
	if len(runes) > 40 {
		runes = runes[:40]
	}
	return string(runes)
}
