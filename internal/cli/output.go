package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/tidwall/gjson"

	"github.com/MOZGIII/google-apis-go/internal/json"
)

// WriteOutput renders a decoded response as pretty-printed JSON, with null
// values pruned at every depth, to the --out file or standard output.
func (e *Engine) WriteOutput(v any) error {
	w, closeFn, err := e.outputWriter()
	if err != nil {
		return err
	}
	defer closeFn()

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	pretty, err := json.MarshalIndent(pruneNulls(gjson.ParseBytes(raw)), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	if _, err := w.Write(append(pretty, '\n')); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func (e *Engine) outputWriter() (io.Writer, func() error, error) {
	if e.outPath == "" || e.outPath == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(e.outPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening output file %q: %w", e.outPath, err)
	}
	return f, f.Close, nil
}

// PruneNulls removes null members and elements from a JSON document at
// every depth, returning the compacted result.
func PruneNulls(raw []byte) ([]byte, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("invalid JSON")
	}
	return json.Marshal(pruneNulls(gjson.ParseBytes(raw)))
}

func pruneNulls(r gjson.Result) any {
	switch {
	case r.IsObject():
		m := make(map[string]any)
		r.ForEach(func(key, value gjson.Result) bool {
			if value.Type != gjson.Null {
				m[key.String()] = pruneNulls(value)
			}
			return true
		})
		return m
	case r.IsArray():
		var items []any
		r.ForEach(func(_, value gjson.Result) bool {
			if value.Type != gjson.Null {
				items = append(items, pruneNulls(value))
			}
			return true
		})
		if items == nil {
			items = []any{}
		}
		return items
	default:
		return r.Value()
	}
}
