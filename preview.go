package mdcourse

import (
	"context"
	"strings"

	"github.com/alnah/go-mdcourse/internal/assets"
	"github.com/alnah/go-mdcourse/internal/pipeline"
)

// Compile-time interface implementation check.
var _ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)

const defaultPreviewTitle = "Course"

// PreviewOption configures RenderHTML.
type PreviewOption func(*previewOptions)

type previewOptions struct {
	assetDir string
}

// WithAssetDir resolves relative image, media and link references in the
// preview against dir, usually the course root.
func WithAssetDir(dir string) PreviewOption {
	return func(o *previewOptions) {
		o.assetDir = dir
	}
}

// RenderHTML renders a compiled document as a standalone HTML page for
// previewing, styled with the embedded course stylesheet. The page title
// is the course title when one can be read.
func RenderHTML(ctx context.Context, markdown string, opts ...PreviewOption) (string, error) {
	var o previewOptions
	for _, opt := range opts {
		opt(&o)
	}

	css, err := assets.LoadStyle(assets.DefaultStyle)
	if err != nil {
		return "", err
	}
	page, err := pipeline.NewGoldmarkConverter(pipeline.WithCSS(css)).ToHTML(ctx, previewTitle(markdown), markdown)
	if err != nil {
		return "", err
	}
	return pipeline.ResolveAssetPaths(page, o.assetDir)
}

// previewTitle takes the title from the first line's course heading.
func previewTitle(markdown string) string {
	first, _, _ := strings.Cut(markdown, "\n")
	if !strings.HasPrefix(first, "# ") {
		return defaultPreviewTitle
	}
	if t := parseCourseHeading(strings.TrimSpace(first[2:])).Title; t != "" {
		return t
	}
	return defaultPreviewTitle
}
