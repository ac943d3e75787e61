package latexlearn

import (
	"regexp"
	"strings"
)

var (
	// Leading answer-choice label: "A) ", "b.", "C:", "d -". The separator is
	// required so that ordinary words starting with a-d are left alone.
	labelPrefixRe = regexp.MustCompile(`^\s*[A-Da-d]\s*[\)\.\:\-]\s*`)

	// A whole string that is nothing but a letter label. The separator is
	// optional here because the pattern is anchored to the full string.
	letterKeyRe = regexp.MustCompile(`^\s*([A-Da-d])\s*[\)\.\:\-]?\s*$`)

	spaceRunRe = regexp.MustCompile(`\s+`)
)

// StripLabel removes a leading answer-choice label from s and trims the
// remainder. Interior content is never altered. If s carries no label it is
// returned trimmed but otherwise unchanged.
func StripLabel(s string) string {
	return strings.TrimSpace(labelPrefixRe.ReplaceAllString(s, ""))
}

// Canonicalize trims s and collapses every internal run of whitespace to a
// single space. Case is preserved: LaTeX commands are case-sensitive.
func Canonicalize(s string) string {
	return spaceRunRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// LetterIndex interprets s as a bare answer letter and returns its 0-based
// option index (A=0). Anything beyond a single letter plus optional separator,
// such as full answer text, yields ok=false rather than a false positive.
func LetterIndex(s string) (int, bool) {
	m := letterKeyRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	c := m[1][0]
	if c >= 'a' {
		c -= 'a' - 'A'
	}
	return int(c - 'A'), true
}
