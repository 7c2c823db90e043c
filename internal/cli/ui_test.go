package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/petspa/salonsite/pkg/layout"
)

// captureUI redirects status lines for the duration of the test.
func captureUI(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := uiOut
	uiOut = &buf
	t.Cleanup(func() { uiOut = prev })
	return &buf
}

func TestStatusLines(t *testing.T) {
	buf := captureUI(t)

	printSuccess("Exported %d profiles", 14)
	printError("render %s", "bento")
	printInfo("Nothing changed")
	printFile("/tmp/site")
	printKeyValue("Palette", "Premium Spa")

	out := buf.String()
	for _, want := range []string{"✓", "Exported 14 profiles", "✗", "render bento", "›", "Nothing changed", "/tmp/site", "Premium Spa"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "\n"); n != 5 {
		t.Errorf("got %d lines, want 5", n)
	}
}

func TestProfileTable(t *testing.T) {
	var buf bytes.Buffer
	profileTable(&buf, layout.Sidebar)

	out := buf.String()
	for _, p := range layout.Profiles() {
		if !strings.Contains(out, string(p)) {
			t.Errorf("table missing profile %s", p)
		}
	}
	if strings.Count(out, "●") != 1 {
		t.Error("exactly one profile should be marked current")
	}
}
