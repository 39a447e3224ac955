package cli

import (
	"fmt"
	"sort"
	"strings"
)

// standardParams maps the CLI spelling of the standard Google API query
// parameters to their wire names. Every API accepts these on any method.
var standardParams = map[string]string{
	"alt":             "alt",
	"callback":        "callback",
	"fields":          "fields",
	"key":             "key",
	"access-token":    "access_token",
	"oauth-token":     "oauth_token",
	"pretty-print":    "prettyPrint",
	"quota-user":      "quotaUser",
	"upload-type":     "uploadType",
	"upload-protocol": "upload_protocol",
	"xgafv":           "$.xgafv",
}

// ParseKV splits a name=value argument. The value may contain further '='
// characters; the name may not be empty.
func ParseKV(arg string) (key, value string, err error) {
	key, value, ok := strings.Cut(arg, "=")
	if !ok || key == "" {
		return "", "", usageErrorf("%q is not of the form name=value", arg)
	}
	return key, value, nil
}

// ExtraParams resolves every -p flag against the standard parameter table,
// returning wire-name/value pairs in flag order. An unknown name is a usage
// error listing the known parameters and the nearest match.
func (e *Engine) ExtraParams() ([][2]string, error) {
	var out [][2]string
	for _, arg := range e.params {
		key, value, err := ParseKV(arg)
		if err != nil {
			return nil, err
		}
		wire, ok := standardParams[key]
		if !ok {
			known := make([]string, 0, len(standardParams))
			for name := range standardParams {
				known = append(known, name)
			}
			sort.Strings(known)
			return nil, usageErrorf("unknown parameter %q%s; known parameters: %s",
				key, didYouMean(key, known), strings.Join(known, ", "))
		}
		out = append(out, [2]string{wire, value})
	}
	return out, nil
}

// didYouMean suggests the candidate closest to input, if any is close
// enough to plausibly be a typo.
func didYouMean(input string, candidates []string) string {
	best, bestDist := "", len(input)/2+1
	for _, c := range candidates {
		if d := levenshtein(input, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}

// levenshtein is the edit distance between two ASCII-ish strings. The
// vocabulary here is flag and field names, so a byte-wise comparison is
// accurate enough for suggestions.
func levenshtein(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
