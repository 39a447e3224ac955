package cli

import (
	"testing"

	"github.com/tidwall/gjson"
)

func TestPruneNulls(t *testing.T) {
	in := []byte(`{
		"name": "b-1",
		"etag": null,
		"amount": {"specifiedAmount": {"units": "100", "nanos": null}},
		"rules": [null, {"thresholdPercent": 0.9, "spendBasis": null}],
		"empty": {"inner": null}
	}`)

	out, err := PruneNulls(in)
	if err != nil {
		t.Fatalf("PruneNulls: %v", err)
	}
	doc := gjson.ParseBytes(out)

	if doc.Get("etag").Exists() {
		t.Error("etag survived pruning")
	}
	if doc.Get("amount.specifiedAmount.nanos").Exists() {
		t.Error("nested null survived pruning")
	}
	if got, want := doc.Get("amount.specifiedAmount.units").String(), "100"; got != want {
		t.Errorf("units = %q, want %q", got, want)
	}
	rules := doc.Get("rules").Array()
	if len(rules) != 1 {
		t.Fatalf("rules = %s, want the null element dropped", doc.Get("rules").Raw)
	}
	if rules[0].Get("spendBasis").Exists() {
		t.Error("null inside array element survived pruning")
	}
	inner := doc.Get("empty")
	if !inner.Exists() || len(inner.Map()) != 0 {
		t.Errorf("empty = %s, want an emptied object", inner.Raw)
	}
}

func TestPruneNullsInvalidInput(t *testing.T) {
	if _, err := PruneNulls([]byte(`{"trailing":`)); err == nil {
		t.Error("PruneNulls accepted invalid JSON")
	}
}
