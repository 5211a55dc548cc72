package layout

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func readHeader(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if len(data) < 5 {
		t.Fatalf("artifact too short: %d bytes", len(data))
	}
	return string(data[:5])
}

func TestRender_WritesArtifact(t *testing.T) {
	e := NewEngine(t.TempDir())
	e.Now = fixedClock(time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC))

	path, err := e.Render("Quantum Computing", "Introduction:\nQubits are the unit of quantum information.\n\n- superposition\n- entanglement")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := readHeader(t, path); got != "%PDF-" {
		t.Errorf("artifact is not a PDF, header %q", got)
	}
	if filepath.Base(path) != "article_Quantum Computing_20260314_150926.pdf" {
		t.Errorf("unexpected artifact name: %s", filepath.Base(path))
	}
}

func TestRender_EmptyBodyStillProducesArtifact(t *testing.T) {
	e := NewEngine(t.TempDir())
	path, err := e.Render("", "")
	if err != nil {
		t.Fatalf("Render of empty body failed: %v", err)
	}
	if got := readHeader(t, path); got != "%PDF-" {
		t.Errorf("artifact is not a PDF, header %q", got)
	}
	if !strings.Contains(filepath.Base(path), "article_topic_") {
		t.Errorf("empty topic should fall back to 'topic': %s", filepath.Base(path))
	}
}

func TestRender_UnsupportedRunesDoNotFail(t *testing.T) {
	e := NewEngine(t.TempDir())
	if _, err := e.Render("emoji test", "This line has an emoji \U0001F680 in it.\n\nSummary:\n- done ✅"); err != nil {
		t.Fatalf("Render with unsupported runes failed: %v", err)
	}
}

func TestRender_SequentialCallsGetDistinctFiles(t *testing.T) {
	dir := t.TempDir()
	e := NewEngine(dir)
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	e.Now = fixedClock(base)
	first, err := e.Render("Same Topic", "Same body.")
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	e.Now = fixedClock(base.Add(time.Second))
	second, err := e.Render("Same Topic", "Same body.")
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if first == second {
		t.Errorf("expected distinct filenames, both %s", first)
	}
}

// Identical input rendered at the same instant produces byte-identical
// documents; only the clock feeds variation into the output.
func TestRender_IdenticalInputYieldsIdenticalContent(t *testing.T) {
	clock := fixedClock(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	title := "Same Topic"
	body := "Introduction:\nThe same body rendered twice.\n\n- one\n- two"

	render := func(dir string) []byte {
		e := NewEngine(dir)
		e.Now = clock
		path, err := e.Render(title, body)
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read artifact: %v", err)
		}
		return data
	}

	first := render(t.TempDir())
	second := render(t.TempDir())
	if !bytes.Equal(first, second) {
		t.Errorf("identical input produced differing documents (%d vs %d bytes)", len(first), len(second))
	}
}

func TestFilename_Sanitization(t *testing.T) {
	ts := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		topic string
		want  string
	}{
		{"REST APIs", "article_REST APIs_20260830_120000.pdf"},
		{"what/about: punctuation?!", "article_whatabout punctuation_20260830_120000.pdf"},
		{"", "article_topic_20260830_120000.pdf"},
		{"!!!", "article_topic_20260830_120000.pdf"},
	}
	for _, c := range cases {
		if got := Filename(c.topic, ts); got != c.want {
			t.Errorf("Filename(%q) = %q, want %q", c.topic, got, c.want)
		}
	}
}

func TestFilename_TruncatesLongTopics(t *testing.T) {
	ts := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	long := strings.Repeat("abcde", 20)
	got := Filename(long, ts)
	want := "article_" + long[:40] + "_20260830_120000.pdf"
	if got != want {
		t.Errorf("Filename truncation: got %q, want %q", got, want)
	}
}
