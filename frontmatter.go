package mdcourse

import (
	"cmp"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/alnah/go-mdcourse/internal/yamlutil"
)

const (
	frontmatterDelimiter = "---"

	// defaultOrder sorts entries without an explicit order after the rest.
	defaultOrder = 9999
)

// Frontmatter is the metadata block at the top of a course document.
// Values keep the types the YAML decoder produced.
type Frontmatter map[string]any

// ParseFrontmatter splits a document into its frontmatter and body.
//
// A document starting with "---" is split on the first two "---" markers.
// The text between them is decoded as a YAML mapping and the body is what
// follows the second marker, leading whitespace removed. Without a leading
// marker, or with only one, the frontmatter is empty and the body is text
// unchanged. Malformed YAML returns an error wrapping ErrParse.
func ParseFrontmatter(text string) (Frontmatter, string, error) {
	if !strings.HasPrefix(text, frontmatterDelimiter) {
		return Frontmatter{}, text, nil
	}

	parts := strings.SplitN(text, frontmatterDelimiter, 3)
	if len(parts) < 3 {
		return Frontmatter{}, text, nil
	}

	fm, err := yamlutil.UnmarshalMapping([]byte(parts[1]))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrParse, err)
	}

	return Frontmatter(fm), strings.TrimLeftFunc(parts[2], unicode.IsSpace), nil
}

// String returns the value for key rendered as text, or fallback when the
// key is absent or null.
func (fm Frontmatter) String(key, fallback string) string {
	v, ok := fm[key]
	if !ok || v == nil {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Title returns the title and whether it is set to a truthy value.
func (fm Frontmatter) Title() (string, bool) {
	v := fm["title"]
	if !truthy(v) {
		return "", false
	}
	return fm.String("title", ""), true
}

// Order returns the numeric "order" value, or 9999 when it is absent or
// not a number.
func (fm Frontmatter) Order() float64 {
	return fm.orderKey().n
}

// orderKey is a sortable "order" value. Integers compare exactly, any other
// pairing compares as float64.
type orderKey struct {
	n     float64
	i     int64
	exact bool // i holds the value
}

func intKey(i int64) orderKey {
	return orderKey{n: float64(i), i: i, exact: true}
}

func (fm Frontmatter) orderKey() orderKey {
	switch v := fm["order"].(type) {
	case int:
		return intKey(int64(v))
	case int64:
		return intKey(v)
	case uint64:
		if v <= math.MaxInt64 {
			return intKey(int64(v))
		}
		return orderKey{n: float64(v)}
	case float64:
		return orderKey{n: v}
	default:
		return intKey(defaultOrder)
	}
}

func (a orderKey) compare(b orderKey) int {
	if a.exact && b.exact {
		return cmp.Compare(a.i, b.i)
	}
	return cmp.Compare(a.n, b.n)
}

// Suppressed reports whether "hidden" or "draft" is set to a truthy value.
func (fm Frontmatter) Suppressed() bool {
	return truthy(fm["hidden"]) || truthy(fm["draft"])
}

// yaml11False lists the YAML 1.1 boolean words for false that a YAML 1.2
// decoder leaves as strings.
var yaml11False = map[string]bool{
	"no": true, "No": true, "NO": true,
	"off": true, "Off": true, "OFF": true,
	"false": true, "False": true, "FALSE": true,
}

// truthy follows YAML-friendly truthiness: null, false, zero, empty string
// and empty collections are false, anything else is true. The YAML 1.1
// false words (no, off, false in their three casings) are false too.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != "" && !yaml11False[t]
	case int:
		return t != 0
	case int64:
		return t != 0
	case uint64:
		return t != 0
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}
