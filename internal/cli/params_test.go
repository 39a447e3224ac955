package cli

import (
	"errors"
	"strings"
	"testing"
)

func TestParseKV(t *testing.T) {
	tests := []struct {
		arg        string
		key, value string
		wantErr    bool
	}{
		{arg: "fields=items(title,link)", key: "fields", value: "items(title,link)"},
		{arg: "quota-user=user=1", key: "quota-user", value: "user=1"},
		{arg: "pretty-print=", key: "pretty-print", value: ""},
		{arg: "novalue", wantErr: true},
		{arg: "=orphan", wantErr: true},
	}
	for _, tt := range tests {
		key, value, err := ParseKV(tt.arg)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseKV(%q) succeeded, want error", tt.arg)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseKV(%q): %v", tt.arg, err)
			continue
		}
		if key != tt.key || value != tt.value {
			t.Errorf("ParseKV(%q) = (%q, %q), want (%q, %q)", tt.arg, key, value, tt.key, tt.value)
		}
	}
}

func TestExtraParamsResolvesWireNames(t *testing.T) {
	e := New("test", "0.0.0", "test binary")
	e.params = []string{"quota-user=alice", "pretty-print=true", "xgafv=1"}

	got, err := e.ExtraParams()
	if err != nil {
		t.Fatalf("ExtraParams: %v", err)
	}
	want := [][2]string{
		{"quotaUser", "alice"},
		{"prettyPrint", "true"},
		{"$.xgafv", "1"},
	}
	if len(got) != len(want) {
		t.Fatalf("ExtraParams = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ExtraParams[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExtraParamsUnknownName(t *testing.T) {
	e := New("test", "0.0.0", "test binary")
	e.params = []string{"quota-usr=alice"}

	_, err := e.ExtraParams()
	if err == nil {
		t.Fatal("ExtraParams accepted an unknown parameter")
	}
	var usage *UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("error = %T, want *UsageError", err)
	}
	if !strings.Contains(err.Error(), `did you mean "quota-user"`) {
		t.Errorf("error = %q, want a did-you-mean suggestion", err)
	}
	if !strings.Contains(err.Error(), "known parameters:") {
		t.Errorf("error = %q, want the known parameter list", err)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"fields", "fields", 0},
		{"quota-usr", "quota-user", 1},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
