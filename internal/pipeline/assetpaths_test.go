package pipeline

// Notes:
// - Tests ResolveAssetPaths through its public API, plus assetURL directly
//   for the reference classification table
// - Paths are built with filepath so expectations hold on Windows too
// - Parse and render errors from x/net/html are not exercised: the parser
//   accepts any input

import (
	"net/url"
	"path/filepath"
	"strings"
	"testing"
)

func fileURL(t *testing.T, path string) string {
	t.Helper()
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}

// ---------------------------------------------------------------------------
// TestResolveAssetPaths - Relative references become file URLs
// ---------------------------------------------------------------------------

func TestResolveAssetPaths(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	img := fileURL(t, filepath.Join(base, "ch1", "img", "diagram.png"))

	tests := []struct {
		name         string
		html         string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "relative image",
			html:         `<p><img src="ch1/img/diagram.png" alt="d"/></p>`,
			wantContains: []string{`src="` + img + `"`, `alt="d"`},
		},
		{
			name:         "dot slash image",
			html:         `<img src="./ch1/img/diagram.png">`,
			wantContains: []string{`src="` + img + `"`},
		},
		{
			name:         "video source and poster",
			html:         `<video poster="p.png"><source src="clip.mp4"></video>`,
			wantContains: []string{fileURL(t, filepath.Join(base, "p.png")), fileURL(t, filepath.Join(base, "clip.mp4"))},
		},
		{
			name:         "link keeps fragment",
			html:         `<a href="notes.md#part-2">notes</a>`,
			wantContains: []string{fileURL(t, filepath.Join(base, "notes.md")) + "#part-2"},
		},
		{
			name:         "anchor unchanged",
			html:         `<a href="#unit-a">a</a>`,
			wantContains: []string{`href="#unit-a"`},
		},
		{
			name:         "web URL unchanged",
			html:         `<img src="https://example.com/logo.png">`,
			wantContains: []string{`src="https://example.com/logo.png"`},
		},
		{
			name:         "mailto unchanged",
			html:         `<a href="mailto:team@example.com">mail</a>`,
			wantContains: []string{`href="mailto:team@example.com"`},
		},
		{
			name:         "absolute path unchanged",
			html:         `<img src="/srv/logo.png">`,
			wantContains: []string{`src="/srv/logo.png"`},
		},
		{
			name:         "traversal unchanged",
			html:         `<img src="../../etc/passwd">`,
			wantContains: []string{`src="../../etc/passwd"`},
			wantExcludes: []string{"file://"},
		},
		{
			name:         "script not rewritten",
			html:         `<script src="app.js"></script>`,
			wantContains: []string{`src="app.js"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveAssetPaths("<!DOCTYPE html><html><body>"+tt.html+"</body></html>", base)
			if err != nil {
				t.Fatalf("ResolveAssetPaths() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("ResolveAssetPaths() = %q, want to contain %q", got, want)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(got, exclude) {
					t.Errorf("ResolveAssetPaths() = %q, should not contain %q", got, exclude)
				}
			}
		})
	}
}

func TestResolveAssetPaths_EmptyBase(t *testing.T) {
	t.Parallel()

	doc := `<img src="a.png">`
	got, err := ResolveAssetPaths(doc, "")
	if err != nil {
		t.Fatalf("ResolveAssetPaths() error = %v", err)
	}
	if got != doc {
		t.Errorf("ResolveAssetPaths() = %q, want unchanged %q", got, doc)
	}
}

func TestResolveAssetPaths_KeepsDocument(t *testing.T) {
	t.Parallel()

	doc := "<!DOCTYPE html>\n<html>\n<head>\n<title>Intro</title>\n</head>\n<body>\n<h1>Intro</h1>\n</body>\n</html>"
	got, err := ResolveAssetPaths(doc, t.TempDir())
	if err != nil {
		t.Fatalf("ResolveAssetPaths() error = %v", err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "<title>Intro</title>", "<h1>Intro</h1>"} {
		if !strings.Contains(got, want) {
			t.Errorf("ResolveAssetPaths() = %q, want to contain %q", got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestAssetURL - Reference classification
// ---------------------------------------------------------------------------

func TestAssetURL(t *testing.T) {
	t.Parallel()

	base := t.TempDir()

	tests := []struct {
		ref    string
		wantOK bool
	}{
		{"", false},
		{"#top", false},
		{"/abs.png", false},
		{"//cdn.example.com/x.png", false},
		{"data:image/png;base64,AAAA", false},
		{"file:///tmp/x.png", false},
		{"..", false},
		{"../x.png", false},
		{"?q=1", false},
		{"a.png", true},
		{"img/a%20b.png", true},
		{"a/../b.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			t.Parallel()

			got, ok := assetURL(tt.ref, base)
			if ok != tt.wantOK {
				t.Fatalf("assetURL(%q) ok = %v, want %v (got %q)", tt.ref, ok, tt.wantOK, got)
			}
			if ok && !strings.HasPrefix(got, "file://") {
				t.Errorf("assetURL(%q) = %q, want file:// URL", tt.ref, got)
			}
		})
	}
}
