package mdcourse

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseFrontmatter - Metadata/body split
// ---------------------------------------------------------------------------

func TestParseFrontmatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantTitle string
		wantKeys  int
		wantBody  string
	}{
		{
			name:      "frontmatter and body",
			input:     "---\ntitle: Unit A\n---\n\nHello\n",
			wantTitle: "Unit A",
			wantKeys:  1,
			wantBody:  "Hello\n",
		},
		{
			name:     "no frontmatter keeps text unchanged",
			input:    "\n  Plain body\n",
			wantBody: "\n  Plain body\n",
		},
		{
			name:     "text before delimiter is not frontmatter",
			input:    "Intro\n---\ntitle: x\n---\n",
			wantBody: "Intro\n---\ntitle: x\n---\n",
		},
		{
			name:     "single delimiter keeps text unchanged",
			input:    "---\ntitle: never closed\n",
			wantBody: "---\ntitle: never closed\n",
		},
		{
			name:     "empty block is empty mapping",
			input:    "---\n---\nBody",
			wantBody: "Body",
		},
		{
			name:      "later delimiters stay in body",
			input:     "---\ntitle: T\n---\nabove\n---\nbelow\n",
			wantTitle: "T",
			wantKeys:  1,
			wantBody:  "above\n---\nbelow\n",
		},
		{
			name:      "duplicate key keeps last value",
			input:     "---\ntitle: a\ntitle: b\n---\nx",
			wantTitle: "b",
			wantKeys:  1,
			wantBody:  "x",
		},
		{
			name:      "leading whitespace of body stripped",
			input:     "---\ntitle: T\n---\n \t\n\n  indented\n",
			wantTitle: "T",
			wantKeys:  1,
			wantBody:  "indented\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fm, body, err := ParseFrontmatter(tt.input)
			if err != nil {
				t.Fatalf("ParseFrontmatter() error = %v", err)
			}
			if len(fm) != tt.wantKeys {
				t.Errorf("len(frontmatter) = %d, want %d (%v)", len(fm), tt.wantKeys, fm)
			}
			if got := fm.String("title", ""); got != tt.wantTitle {
				t.Errorf("title = %q, want %q", got, tt.wantTitle)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestParseFrontmatter_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"unclosed flow sequence", "---\ntitle: [unclosed\n---\nBody"},
		{"sequence instead of mapping", "---\n- a\n- b\n---\nBody"},
		{"scalar instead of mapping", "---\njust words\n---\nBody"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := ParseFrontmatter(tt.input)
			if !errors.Is(err, ErrParse) {
				t.Errorf("ParseFrontmatter() error = %v, want ErrParse", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFrontmatter_Accessors - Typed views over decoded values
// ---------------------------------------------------------------------------

func TestFrontmatter_Order(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"integer", "---\norder: 3\n---\n", 3},
		{"negative", "---\norder: -2\n---\n", -2},
		{"float", "---\norder: 1.5\n---\n", 1.5},
		{"absent", "---\ntitle: x\n---\n", defaultOrder},
		{"string", "---\norder: first\n---\n", defaultOrder},
		{"boolean", "---\norder: true\n---\n", defaultOrder},
		{"null", "---\norder:\n---\n", defaultOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fm, _, err := ParseFrontmatter(tt.input)
			if err != nil {
				t.Fatalf("ParseFrontmatter() error = %v", err)
			}
			if got := fm.Order(); got != tt.want {
				t.Errorf("Order() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFrontmatter_Suppressed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fm   Frontmatter
		want bool
	}{
		{"empty", Frontmatter{}, false},
		{"hidden true", Frontmatter{"hidden": true}, true},
		{"draft true", Frontmatter{"draft": true}, true},
		{"hidden false", Frontmatter{"hidden": false}, false},
		{"draft false hidden true", Frontmatter{"draft": false, "hidden": true}, true},
		{"hidden null", Frontmatter{"hidden": nil}, false},
		{"hidden zero", Frontmatter{"hidden": uint64(0)}, false},
		{"hidden one", Frontmatter{"hidden": uint64(1)}, true},
		{"hidden empty string", Frontmatter{"hidden": ""}, false},
		{"hidden yes string", Frontmatter{"hidden": "yes"}, true},
		{"hidden on string", Frontmatter{"hidden": "on"}, true},
		{"hidden no string", Frontmatter{"hidden": "no"}, false},
		{"hidden No string", Frontmatter{"hidden": "No"}, false},
		{"hidden off string", Frontmatter{"hidden": "off"}, false},
		{"draft OFF string", Frontmatter{"draft": "OFF"}, false},
		{"draft False string", Frontmatter{"draft": "False"}, false},
		{"hidden mixed case nO stays truthy", Frontmatter{"hidden": "nO"}, true},
		{"other keys ignored", Frontmatter{"private": true, "archived": true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.fm.Suppressed(); got != tt.want {
				t.Errorf("Suppressed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFrontmatter_YAML11FalseWords(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"---\nhidden: no\n---\nx",
		"---\ndraft: off\n---\nx",
		"---\nhidden: No\ndraft: OFF\n---\nx",
	} {
		fm, _, err := ParseFrontmatter(input)
		if err != nil {
			t.Fatalf("ParseFrontmatter(%q) error = %v", input, err)
		}
		if fm.Suppressed() {
			t.Errorf("ParseFrontmatter(%q).Suppressed() = true, want false (%v)", input, fm)
		}
	}
}

func TestFrontmatter_OrderKey(t *testing.T) {
	t.Parallel()

	// 2^53 and 2^53+1 are the same float64.
	lo := Frontmatter{"order": uint64(9007199254740992)}
	hi := Frontmatter{"order": uint64(9007199254740993)}

	if c := lo.orderKey().compare(hi.orderKey()); c >= 0 {
		t.Errorf("compare(2^53, 2^53+1) = %d, want < 0", c)
	}
	if c := (Frontmatter{"order": 1.5}).orderKey().compare(Frontmatter{"order": uint64(2)}.orderKey()); c >= 0 {
		t.Errorf("compare(1.5, 2) = %d, want < 0", c)
	}
	if c := (Frontmatter{}).orderKey().compare(Frontmatter{"order": int64(defaultOrder)}.orderKey()); c != 0 {
		t.Errorf("compare(absent, 9999) = %d, want 0", c)
	}
}

func TestFrontmatter_Title(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fm     Frontmatter
		want   string
		wantOK bool
	}{
		{"set", Frontmatter{"title": "Unit A"}, "Unit A", true},
		{"absent", Frontmatter{}, "", false},
		{"empty", Frontmatter{"title": ""}, "", false},
		{"null", Frontmatter{"title": nil}, "", false},
		{"number", Frontmatter{"title": uint64(42)}, "42", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := tt.fm.Title()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Title() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFrontmatter_String(t *testing.T) {
	t.Parallel()

	fm := Frontmatter{"org": "X", "course": uint64(101), "url_name": nil}

	if got := fm.String("org", "org"); got != "X" {
		t.Errorf("String(org) = %q, want %q", got, "X")
	}
	if got := fm.String("course", "course"); got != "101" {
		t.Errorf("String(course) = %q, want %q", got, "101")
	}
	if got := fm.String("url_name", "course"); got != "course" {
		t.Errorf("String(url_name) = %q, want fallback %q", got, "course")
	}
	if got := fm.String("missing", "dflt"); got != "dflt" {
		t.Errorf("String(missing) = %q, want %q", got, "dflt")
	}
}
