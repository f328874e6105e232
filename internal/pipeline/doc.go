// Package pipeline holds the Markdown text stages used around compilation:
//   - text transforms applied while reading sources (line endings, comments)
//   - heading discovery on the compiled document via goldmark
//   - HTML preview rendering via goldmark and chroma
//   - asset reference resolution in the preview via x/net/html
//
// The course traversal itself lives in the root mdcourse package. This
// package only knows about Markdown text, never about folders.
package pipeline
