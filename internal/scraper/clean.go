package scraper

import (
	"regexp"
	"strings"
)

var (
	whitespacePattern  = regexp.MustCompile(`\s+`)
	boilerplatePattern = regexp.MustCompile(`(?i)\b(add to calendar|read more|learn more|view details)\b`)
)

func collapseWhitespace(s string) string {
	return whitespacePattern.ReplaceAllString(s, " ")
}

func stripBoilerplate(s string) string {
	return boilerplatePattern.ReplaceAllString(s, "")
}

// cleanups run in order. Boilerplate patterns assume collapsed whitespace,
// and stripping can leave doubled spaces, so the collapse runs again before
// the final trim.
var cleanups = []func(string) string{
	collapseWhitespace,
	stripBoilerplate,
	collapseWhitespace,
	strings.TrimSpace,
}

// Clean applies the text cleanup chain to one extracted field.
func Clean(s string) string {
	for _, f := range cleanups {
		s = f(s)
	}
	return s
}
