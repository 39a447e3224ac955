package client

import (
	"fmt"
	"net/url"
	"strings"
)

// expandPath substitutes the {name} and {+name} variables of a URI template
// with values from params, consuming each substituted key so it is not
// re-serialized as a query parameter.
//
// {+name} is the reserved-expansion form: the value is percent-encoded per
// path-segment rules but "/" stays literal, so multi-segment resource names
// remain paths. {name} additionally encodes "/". Both encodings round-trip:
// decoding the resulting path recovers the original value exactly.
func expandPath(template string, params *Params) (string, error) {
	var b strings.Builder
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:open])
		rest = rest[open+1:]

		close := strings.IndexByte(rest, '}')
		if close < 0 {
			return "", fmt.Errorf("unterminated variable in path template %q", template)
		}
		name := rest[:close]
		rest = rest[close+1:]

		reserved := strings.HasPrefix(name, "+")
		if reserved {
			name = name[1:]
		}
		if name == "" {
			return "", fmt.Errorf("empty variable in path template %q", template)
		}

		value, ok := params.Get(name)
		if !ok {
			return "", fmt.Errorf("no value for path parameter %q", name)
		}
		params.Del(name)

		if reserved {
			b.WriteString(encodeReserved(value))
		} else {
			b.WriteString(url.PathEscape(value))
		}
	}
}

// encodeReserved percent-encodes value per path-segment rules while keeping
// "/" literal, matching URI Template reserved expansion for path use.
func encodeReserved(value string) string {
	if value == "" {
		return ""
	}
	segments := strings.Split(value, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}
