package util

import (
	"regexp"
	"strings"
)

var phoneJunk = regexp.MustCompile(`[^\d\+]+`)

// NormalizePhone tries to normalize user input into E.164-like format.
// Bare 10/11-digit numbers are assumed NANP.
func NormalizePhone(raw string) string {
	s := strings.TrimSpace(raw)
	s = phoneJunk.ReplaceAllString(s, "")

	if strings.HasPrefix(s, "+") {
		return s
	}
	if strings.HasPrefix(s, "00") {
		return "+" + s[2:]
	}
	if len(s) == 11 && strings.HasPrefix(s, "1") {
		return "+" + s
	}
	if len(s) == 10 {
		return "+1" + s
	}

	return s
}
