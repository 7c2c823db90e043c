package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/petspa/salonsite/pkg/errors"
	"github.com/petspa/salonsite/pkg/layout"
)

func TestRunRenderStdout(t *testing.T) {
	isolateDirs(t)
	ctx := testContext()

	var buf bytes.Buffer
	opts := renderOpts{palette: "premium-spa", baseURL: defaultBaseURL, faq: true, noCache: true}
	if err := runRender(ctx, &buf, []string{"sidebar"}, opts); err != nil {
		t.Fatalf("runRender: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`data-layout="sidebar"`, `id="faq"`, defaultBaseURL} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, `id="pricing"`) {
		t.Error("pricing rendered without --pricing")
	}
}

func TestRunRenderUsesPickedProfile(t *testing.T) {
	isolateDirs(t)
	ctx := testContext()

	prefs, err := openPreferences()
	if err != nil {
		t.Fatal(err)
	}
	if err := applyPick(ctx, prefs, "bento", "warm-friendly"); err != nil {
		t.Fatal(err)
	}
	prefs.Close()

	var buf bytes.Buffer
	if err := runRender(ctx, &buf, nil, renderOpts{baseURL: defaultBaseURL}); err != nil {
		t.Fatalf("runRender: %v", err)
	}
	if !strings.Contains(buf.String(), `data-layout="bento"`) {
		t.Error("render should default to the picked profile")
	}

	// A second render is served from the page cache and is identical.
	var again bytes.Buffer
	if err := runRender(ctx, &again, nil, renderOpts{baseURL: defaultBaseURL}); err != nil {
		t.Fatalf("runRender: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), again.Bytes()) {
		t.Error("cached render differs from the first render")
	}
}

func TestRunRenderAll(t *testing.T) {
	isolateDirs(t)
	ctx := testContext()
	dir := filepath.Join(t.TempDir(), "site")

	if err := runRender(ctx, nil, nil, renderOpts{all: true, output: dir, baseURL: defaultBaseURL, noCache: true}); err != nil {
		t.Fatalf("runRender --all: %v", err)
	}
	for _, p := range layout.Profiles() {
		data, err := os.ReadFile(filepath.Join(dir, string(p)+".html"))
		if err != nil {
			t.Fatalf("missing page for %s: %v", p, err)
		}
		if !bytes.Contains(data, []byte(`data-layout="`+string(p)+`"`)) {
			t.Errorf("%s.html does not carry its profile", p)
		}
	}
	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(index, []byte(`data-layout="`+string(layout.DefaultProfile)+`"`)) {
		t.Error("index.html should hold the default profile")
	}
	if _, err := os.Stat(filepath.Join(dir, "static", "site.css")); err != nil {
		t.Errorf("stylesheet not copied: %v", err)
	}
}

func TestRunRenderErrors(t *testing.T) {
	isolateDirs(t)
	ctx := testContext()

	tests := []struct {
		name string
		args []string
		opts renderOpts
		code errors.Code
	}{
		{"unknown profile", []string{"retro"}, renderOpts{noCache: true}, errors.ErrCodeInvalidProfile},
		{"unknown palette", nil, renderOpts{palette: "neon", noCache: true}, errors.ErrCodeInvalidPalette},
		{"all without output", nil, renderOpts{all: true, noCache: true}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runRender(ctx, &bytes.Buffer{}, tt.args, tt.opts)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}
