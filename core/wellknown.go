package core

// Money is an amount of money in the google.type.Money wire form. Units is
// an int64 and therefore crosses the wire as a JSON string, per the Google
// JSON encoding rules for 64-bit integers.
type Money struct {
	// CurrencyCode is the three-letter ISO 4217 code, e.g. "USD".
	CurrencyCode string `json:"currencyCode,omitempty"`
	// Units is the whole currency units part of the amount.
	Units int64 `json:"units,string,omitempty"`
	// Nanos is the fractional part in nano units, same sign as Units.
	Nanos int32 `json:"nanos,omitempty"`
}

// Status is the google.rpc.Status error payload embedded in resources that
// report partial failures.
type Status struct {
	Code    int32            `json:"code,omitempty"`
	Message string           `json:"message,omitempty"`
	Details []map[string]any `json:"details,omitempty"`
}

// Empty is the google.protobuf.Empty response of operations that return no
// data, such as deletes. It decodes from the literal "{}" body.
type Empty struct{}
