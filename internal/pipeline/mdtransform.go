package pipeline

import (
	"regexp"
	"strings"
)

// HTML comment markers.
const (
	commentOpen  = "<!--"
	commentClose = "-->"
)

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// StripComments removes every <!-- ... --> span from content.
// An unterminated comment swallows the rest of the text. The scan restarts
// from the joined text, so markers split around a removed span still count.
func StripComments(content string) string {
	for {
		start := strings.Index(content, commentOpen)
		if start < 0 {
			return content
		}
		end := strings.Index(content[start:], commentClose)
		if end < 0 {
			return content[:start]
		}
		content = content[:start] + content[start+end+len(commentClose):]
	}
}
