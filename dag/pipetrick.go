package dag

import "strings"

// ResolvePipeTrick derives Wikipedia's "pipe trick" display text from a
// target page title: [[Category:Foo (bar)|]] displays as "Foo".
//
// This intentionally does not try to handle every corner case, because
// Wikipedia itself does not fully define them. The four steps below are
// the ones the source implementation documents and tests.
func ResolvePipeTrick(s string) string {
	// Strip everything up to and including the first colon found at or
	// after index 1, then strip one more leading colon if present.
	if s != "" {
		if colon := strings.IndexByte(s[1:], ':'); colon != -1 {
			s = s[1+colon:]
		}
		if s != "" && s[0] == ':' {
			s = s[1:]
		}
	}

	// Strip from the last '(' onward; failing that, from the first ',' onward.
	if lparen := strings.LastIndexByte(s, '('); lparen != -1 {
		s = s[:lparen]
	} else if comma := strings.IndexByte(s, ','); comma != -1 {
		s = s[:comma]
	}

	return strings.TrimSpace(s)
}
