package mdcourse

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-mdcourse/internal/pipeline"
)

// Course heading suffix written by courseHeading.
var courseAttributes = regexp.MustCompile(`^(.*) \{olx-org=(.*) olx-course=(.*) olx-url_name=(.*)\}$`)

// Outline is the course structure read back from a compiled document.
type Outline struct {
	Title    string    `yaml:"title"`
	Org      string    `yaml:"org,omitempty"`
	Course   string    `yaml:"course,omitempty"`
	URLName  string    `yaml:"url_name,omitempty"`
	Chapters []Chapter `yaml:"chapters,omitempty"`
}

type Chapter struct {
	Title       string       `yaml:"title"`
	Sequentials []Sequential `yaml:"sequentials,omitempty"`
}

type Sequential struct {
	Title string `yaml:"title"`
	Units []Unit `yaml:"units,omitempty"`
}

// Unit is a leaf of the outline. Body text sitting directly under a
// sequential heading becomes a Unit with an empty Title.
type Unit struct {
	Title string `yaml:"title,omitempty"`
	Body  string `yaml:"body,omitempty"`
}

// DocumentReader consumes a compiled course document.
type DocumentReader interface {
	Read(ctx context.Context, markdown string) (*Outline, error)
}

// Compile-time interface implementation check.
var _ DocumentReader = (*OutlineReader)(nil)

// OutlineReader parses a compiled document back into an Outline.
// Headings of level 1 to 4 are structure; anything deeper is unit body.
type OutlineReader struct {
	scanner *pipeline.HeadingScanner
}

// NewOutlineReader creates an OutlineReader.
func NewOutlineReader() *OutlineReader {
	return &OutlineReader{scanner: pipeline.NewHeadingScanner()}
}

// ReadOutline reads markdown with a default OutlineReader.
func ReadOutline(ctx context.Context, markdown string) (*Outline, error) {
	return NewOutlineReader().Read(ctx, markdown)
}

// Read returns the outline of markdown. It fails with ErrOutline when the
// document does not open with a course heading, repeats it, skips a level,
// or puts text where only headings are allowed.
func (r *OutlineReader) Read(ctx context.Context, markdown string) (*Outline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines := strings.Split(markdown, "\n")
	var headings []pipeline.Heading
	for _, h := range r.scanner.Scan([]byte(markdown)) {
		if h.Level <= unitDepth {
			headings = append(headings, h)
		}
	}

	if len(headings) == 0 || headings[0].Level != 1 {
		return nil, fmt.Errorf("%w: document must start with a level-1 course heading", ErrOutline)
	}
	if text := sliceText(lines, 0, headings[0].StartLine); text != "" {
		return nil, fmt.Errorf("%w: line 1: text before the course heading", ErrOutline)
	}

	out := parseCourseHeading(headings[0].Title)

	for i, h := range headings {
		end := len(lines)
		if i+1 < len(headings) {
			end = headings[i+1].StartLine
		}
		body := sliceText(lines, h.EndLine, end)
		line := h.StartLine + 1

		switch h.Level {
		case 1:
			if i > 0 {
				return nil, fmt.Errorf("%w: line %d: second course heading", ErrOutline, line)
			}
			if body != "" {
				return nil, fmt.Errorf("%w: line %d: text directly under the course heading", ErrOutline, line)
			}
		case 2:
			out.Chapters = append(out.Chapters, Chapter{Title: h.Title})
			if body != "" {
				return nil, fmt.Errorf("%w: line %d: text directly under a chapter heading", ErrOutline, line)
			}
		case 3:
			ch := lastChapter(out)
			if ch == nil {
				return nil, fmt.Errorf("%w: line %d: sequential %q outside a chapter", ErrOutline, line, h.Title)
			}
			ch.Sequentials = append(ch.Sequentials, Sequential{Title: h.Title})
			if body != "" {
				seq := &ch.Sequentials[len(ch.Sequentials)-1]
				seq.Units = append(seq.Units, Unit{Body: body})
			}
		case 4:
			seq := lastSequential(out)
			if seq == nil {
				return nil, fmt.Errorf("%w: line %d: unit %q outside a sequential", ErrOutline, line, h.Title)
			}
			seq.Units = append(seq.Units, Unit{Title: h.Title, Body: body})
		}
	}

	return out, nil
}

// parseCourseHeading splits the course title from its identifiers.
// A heading without the suffix yields only a Title.
func parseCourseHeading(title string) *Outline {
	m := courseAttributes.FindStringSubmatch(title)
	if m == nil {
		return &Outline{Title: title}
	}
	return &Outline{Title: m[1], Org: m[2], Course: m[3], URLName: m[4]}
}

func lastChapter(o *Outline) *Chapter {
	if len(o.Chapters) == 0 {
		return nil
	}
	return &o.Chapters[len(o.Chapters)-1]
}

func lastSequential(o *Outline) *Sequential {
	ch := lastChapter(o)
	if ch == nil || len(ch.Sequentials) == 0 {
		return nil
	}
	return &ch.Sequentials[len(ch.Sequentials)-1]
}

// sliceText joins lines[from:to] and trims surrounding whitespace.
func sliceText(lines []string, from, to int) string {
	to = min(to, len(lines))
	if from >= to {
		return ""
	}
	return strings.TrimSpace(strings.Join(lines[from:to], "\n"))
}
