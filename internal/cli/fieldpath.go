package cli

import (
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/sjson"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldType is the JSON type a request body field is coerced to. Int64
// fields follow the Google wire rule of crossing as strings and are
// declared String in field tables.
type FieldType int

const (
	String FieldType = iota
	Int              // int32, a JSON number
	Float
	Bool
)

// FieldSpec describes one settable request body field.
type FieldSpec struct {
	Type FieldType

	// Repeated fields accumulate into a JSON array; each occurrence of the
	// flag appends one element.
	Repeated bool
}

// FieldTable lists a command's settable request body fields, keyed by their
// kebab-case dotted CLI path (e.g. "budget.display-name"). The wire path is
// derived per segment: kebab-case becomes camelCase.
type FieldTable map[string]FieldSpec

var titleCaser = cases.Title(language.English, cases.NoLower)

// WirePath converts a kebab-case dotted CLI path to the camelCase JSON path
// it addresses: "budget.amount.specified-amount.units" becomes
// "budget.amount.specifiedAmount.units".
func WirePath(cliPath string) string {
	segments := strings.Split(cliPath, ".")
	for i, seg := range segments {
		words := strings.Split(seg, "-")
		for j := 1; j < len(words); j++ {
			words[j] = titleCaser.String(words[j])
		}
		segments[i] = strings.Join(words, "")
	}
	return strings.Join(segments, ".")
}

// BuildBody assembles a JSON request body from -r path=value arguments,
// validating each path against the table and coercing values to the
// declared types. Unknown paths are usage errors carrying a nearest-match
// suggestion.
func BuildBody(table FieldTable, kvs []string) ([]byte, error) {
	body := []byte(`{}`)
	for _, kv := range kvs {
		key, value, err := ParseKV(kv)
		if err != nil {
			return nil, err
		}
		spec, ok := table[key]
		if !ok {
			return nil, usageErrorf("unknown request field %q%s", key, didYouMean(key, fieldNames(table)))
		}

		var typed any
		switch spec.Type {
		case String:
			typed = value
		case Int:
			n, err := strconv.ParseInt(value, 10, 32)
			if err != nil {
				return nil, usageErrorf("field %q wants an integer, got %q", key, value)
			}
			typed = n
		case Float:
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, usageErrorf("field %q wants a number, got %q", key, value)
			}
			typed = f
		case Bool:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return nil, usageErrorf("field %q wants true or false, got %q", key, value)
			}
			typed = b
		}

		path := WirePath(key)
		if spec.Repeated {
			path += ".-1"
		}
		body, err = sjson.SetBytes(body, path, typed)
		if err != nil {
			return nil, usageErrorf("setting field %q: %v", key, err)
		}
	}
	return body, nil
}

func fieldNames(table FieldTable) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
