package mdcourse

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestReadOutline - Compiled document back to structure
// ---------------------------------------------------------------------------

func TestReadOutline_RoundTrip(t *testing.T) {
	t.Parallel()

	fsys := courseFS(map[string]string{
		"index.md":            introIndex,
		"ch1/index.md":        "---\ntitle: Chapter One\n---\n",
		"ch1/seq1/index.md":   "---\ntitle: Seq One\n---\n",
		"ch1/seq1/a.md":       "---\ntitle: Unit A\norder: 1\n---\nHello\n",
		"ch1/seq1/b.md":       "---\ntitle: Unit B\norder: 2\n---\nFirst\n\n##### Deep heading\n\nLast\n",
		"ch1/seq2/index.md":   "---\ntitle: Seq Two\n---\n",
		"ch1/seq2/intro.md":   "No title here",
		"ch2/index.md":        "---\ntitle: Chapter Two\n---\n",
		"ch2/empty/index.md":  "---\ntitle: Empty Seq\n---\n",
		"ch2/empty/notes.txt": "ignored",
	})

	res := compileFS(t, fsys)
	got, err := ReadOutline(context.Background(), res.Markdown)
	if err != nil {
		t.Fatalf("ReadOutline() error = %v\n%s", err, res.Markdown)
	}

	want := &Outline{
		Title:   "Intro",
		Org:     "X",
		Course:  "C1",
		URLName: "u1",
		Chapters: []Chapter{
			{
				Title: "Chapter One",
				Sequentials: []Sequential{
					{
						Title: "Seq One",
						Units: []Unit{
							{Title: "Unit A", Body: "Hello"},
							{Title: "Unit B", Body: "First\n\n##### Deep heading\n\nLast"},
						},
					},
					{
						Title: "Seq Two",
						Units: []Unit{{Body: "No title here"}},
					},
				},
			},
			{
				Title:       "Chapter Two",
				Sequentials: []Sequential{{Title: "Empty Seq"}},
			},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadOutline() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadOutline_Markdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		md   string
		want *Outline
	}{
		{
			name: "plain course heading",
			md:   "# Just A Title\n",
			want: &Outline{Title: "Just A Title"},
		},
		{
			name: "setext course heading",
			md:   "Course\n======\n\n## Chapter\n",
			want: &Outline{Title: "Course", Chapters: []Chapter{{Title: "Chapter"}}},
		},
		{
			name: "hash lines in fenced code stay in body",
			md:   "# C\n\n## Ch\n\n### S\n\n#### U\n\n```sh\n# not a heading\n```\n",
			want: &Outline{
				Title: "C",
				Chapters: []Chapter{{
					Title: "Ch",
					Sequentials: []Sequential{{
						Title: "S",
						Units: []Unit{{Title: "U", Body: "```sh\n# not a heading\n```"}},
					}},
				}},
			},
		},
		{
			name: "consecutive untitled units merge",
			md:   "# C\n\n## Ch\n\n### S\n\none\n\ntwo\n\n#### T\n",
			want: &Outline{
				Title: "C",
				Chapters: []Chapter{{
					Title: "Ch",
					Sequentials: []Sequential{{
						Title: "S",
						Units: []Unit{{Body: "one\n\ntwo"}, {Title: "T"}},
					}},
				}},
			},
		},
		{
			name: "empty identifiers",
			md:   "# T {olx-org= olx-course= olx-url_name=}\n",
			want: &Outline{Title: "T"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewOutlineReader().Read(context.Background(), tt.md)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Read() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadOutline_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		md      string
		wantMsg string
	}{
		{"empty document", "", "must start with a level-1 course heading"},
		{"starts with chapter", "## Chapter\n", "must start with a level-1 course heading"},
		{"text before course", "intro\n\n# Course\n", "text before the course heading"},
		{"second course", "# A\n\n# B\n", "line 3: second course heading"},
		{"text under course", "# A\n\ntext\n", "text directly under the course heading"},
		{"text under chapter", "# A\n\n## C\n\ntext\n", "line 3: text directly under a chapter heading"},
		{"sequential outside chapter", "# A\n\n### S\n", `sequential "S" outside a chapter`},
		{"unit outside sequential", "# A\n\n## C\n\n#### U\n", `unit "U" outside a sequential`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ReadOutline(context.Background(), tt.md)
			if !errors.Is(err, ErrOutline) {
				t.Fatalf("ReadOutline() error = %v, want ErrOutline", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestReadOutline_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := ReadOutline(ctx, "# C\n"); !errors.Is(err, context.Canceled) {
		t.Errorf("ReadOutline() error = %v, want context.Canceled", err)
	}
}
