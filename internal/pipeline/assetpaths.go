package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// assetAttrs lists the attributes that reference course assets, by element.
var assetAttrs = map[string][]string{
	"a":      {"href"},
	"img":    {"src"},
	"source": {"src"},
	"video":  {"src", "poster"},
	"audio":  {"src"},
}

// ResolveAssetPaths rewrites relative asset references in an HTML document
// to file:// URLs under baseDir, so a preview written anywhere still finds
// the course images and media. References that escape baseDir, carry a URL
// scheme or start with '/' or '#' are left as written. An empty baseDir
// returns the document unchanged.
func ResolveAssetPaths(doc, baseDir string) (string, error) {
	if baseDir == "" {
		return doc, nil
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}

	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return "", err
	}
	resolveNode(root, absBase)

	var buf strings.Builder
	if err := html.Render(&buf, root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func resolveNode(n *html.Node, base string) {
	if n.Type == html.ElementNode {
		for _, key := range assetAttrs[n.Data] {
			for i := range n.Attr {
				if n.Attr[i].Key != key {
					continue
				}
				if u, ok := assetURL(n.Attr[i].Val, base); ok {
					n.Attr[i].Val = u
				}
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		resolveNode(c, base)
	}
}

// assetURL returns the file:// URL for ref relative to base. The query and
// fragment of ref are kept.
func assetURL(ref, base string) (string, bool) {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "/") {
		return "", false
	}
	parsed, err := url.Parse(ref)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" || parsed.Path == "" {
		return "", false
	}
	if filepath.IsAbs(parsed.Path) || filepath.VolumeName(parsed.Path) != "" {
		return "", false
	}

	abs := filepath.Join(base, filepath.FromSlash(parsed.Path))
	rel, err := filepath.Rel(base, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}

	path := filepath.ToSlash(abs)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path // Windows drive paths
	}
	u := url.URL{
		Scheme:   "file",
		Path:     path,
		RawQuery: parsed.RawQuery,
		Fragment: parsed.Fragment,
	}
	return u.String(), true
}
