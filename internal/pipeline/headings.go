package pipeline

import (
	"bytes"
	"regexp"
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ATX opening sequence: up to 3 spaces, 1-6 '#', then space or end of line.
var atxHeadingLine = regexp.MustCompile(`^ {0,3}#{1,6}(?:[ \t]|$)`)

// Heading is a document-level heading located in a Markdown source.
// Headings nested in lists, blockquotes or fenced code are not reported.
type Heading struct {
	Level int
	Title string

	// Source lines covered by the heading, 0-based, [StartLine, EndLine).
	// Setext headings include their underline.
	StartLine int
	EndLine   int
}

// HeadingScanner locates top-level headings with a CommonMark parser, so that
// '#' lines inside code blocks or HTML blocks never count as structure.
type HeadingScanner struct {
	md goldmark.Markdown
}

// NewHeadingScanner creates a scanner backed by a plain CommonMark goldmark.
func NewHeadingScanner() *HeadingScanner {
	return &HeadingScanner{md: goldmark.New()}
}

// Scan returns the top-level headings of src in document order.
// Empty ATX headings carry no source segment and are not reported.
func (s *HeadingScanner) Scan(src []byte) []Heading {
	doc := s.md.Parser().Parse(text.NewReader(src))
	starts := lineStarts(src)

	var headings []Heading
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		lines := h.Lines()
		if lines.Len() == 0 {
			continue
		}

		first := lineOf(starts, lines.At(0).Start)
		last := lineOf(starts, lines.At(lines.Len()-1).Start)
		end := last + 1
		if !atxHeadingLine.Match(lineAt(src, starts, first)) {
			end++ // setext underline
		}

		parts := make([][]byte, 0, lines.Len())
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			parts = append(parts, bytes.TrimSpace(seg.Value(src)))
		}

		headings = append(headings, Heading{
			Level:     h.Level,
			Title:     string(bytes.Join(parts, []byte(" "))),
			StartLine: first,
			EndLine:   end,
		})
	}
	return headings
}

// lineStarts returns the byte offset at which each line of src begins.
func lineStarts(src []byte) []int {
	starts := []int{0}
	for i, c := range src {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// lineOf maps a byte offset to its 0-based line index.
func lineOf(starts []int, offset int) int {
	return sort.Search(len(starts), func(i int) bool { return starts[i] > offset }) - 1
}

// lineAt returns line i of src without its newline.
func lineAt(src []byte, starts []int, i int) []byte {
	end := len(src)
	if i+1 < len(starts) {
		end = starts[i+1] - 1
	}
	return src[starts[i]:end]
}
