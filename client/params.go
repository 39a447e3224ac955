package client

import (
	"net/url"
	"strings"
)

type pair struct {
	key   string
	value string
}

// Params is an ordered multimap of request parameters. Insertion order is
// preserved through encoding so serialization is deterministic; the order
// itself carries no meaning. Set de-duplicates by key, Add appends repeated
// values for keys that accept them.
type Params struct {
	pairs []pair
}

// NewParams creates an empty parameter map.
func NewParams() *Params {
	return &Params{}
}

// Set replaces every value of key with value, keeping the position of the
// first occurrence. A new key is appended at the tail.
func (p *Params) Set(key, value string) {
	replaced := false
	kept := p.pairs[:0]
	for _, kv := range p.pairs {
		if kv.key == key {
			if replaced {
				continue
			}
			kv.value = value
			replaced = true
		}
		kept = append(kept, kv)
	}
	p.pairs = kept
	if !replaced {
		p.pairs = append(p.pairs, pair{key: key, value: value})
	}
}

// Add appends a value for key, allowing repeats.
func (p *Params) Add(key, value string) {
	p.pairs = append(p.pairs, pair{key: key, value: value})
}

// Get returns the first value of key.
func (p *Params) Get(key string) (string, bool) {
	for _, kv := range p.pairs {
		if kv.key == key {
			return kv.value, true
		}
	}
	return "", false
}

// Values returns all values of key in insertion order.
func (p *Params) Values(key string) []string {
	var vals []string
	for _, kv := range p.pairs {
		if kv.key == key {
			vals = append(vals, kv.value)
		}
	}
	return vals
}

// Has reports whether key is present.
func (p *Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Del removes every pair with key and reports whether any existed.
func (p *Params) Del(key string) bool {
	kept := p.pairs[:0]
	found := false
	for _, kv := range p.pairs {
		if kv.key == key {
			found = true
			continue
		}
		kept = append(kept, kv)
	}
	p.pairs = kept
	return found
}

// Len returns the number of stored pairs.
func (p *Params) Len() int {
	return len(p.pairs)
}

// Keys returns the distinct keys in insertion order.
func (p *Params) Keys() []string {
	seen := make(map[string]struct{}, len(p.pairs))
	var keys []string
	for _, kv := range p.pairs {
		if _, ok := seen[kv.key]; ok {
			continue
		}
		seen[kv.key] = struct{}{}
		keys = append(keys, kv.key)
	}
	return keys
}

// Clone returns an independent copy.
func (p *Params) Clone() *Params {
	out := &Params{pairs: make([]pair, len(p.pairs))}
	copy(out.pairs, p.pairs)
	return out
}

// Encode serializes the pairs as a query string in insertion order.
func (p *Params) Encode() string {
	if len(p.pairs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, kv := range p.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.value))
	}
	return b.String()
}
