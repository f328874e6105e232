package mdcourse

import (
	"strings"

	"github.com/alnah/go-mdcourse/internal/pipeline"
)

// HasUncommentedText reports whether body still holds non-whitespace text
// once every HTML comment is removed. Index documents use comments for
// author notes, so only uncommented text is worth a warning.
func HasUncommentedText(body string) bool {
	return strings.TrimSpace(pipeline.StripComments(body)) != ""
}
