package core

import (
	"testing"
	"time"

	"github.com/MOZGIII/google-apis-go/internal/json"
)

func TestDateZeroSentinelRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want string
	}{
		{
			name: "complete date",
			date: Date{Year: 2024, Month: 6, Day: 1},
			want: `{"year":2024,"month":6,"day":1}`,
		},
		{
			name: "year unspecified",
			date: Date{Year: 0, Month: 12, Day: 31},
			want: `{"year":0,"month":12,"day":31}`,
		},
		{
			name: "day unspecified",
			date: Date{Year: 2024, Month: 6, Day: 0},
			want: `{"year":2024,"month":6,"day":0}`,
		},
		{
			name: "fully unspecified",
			date: Date{},
			want: `{"year":0,"month":0,"day":0}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.date)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}

			var back Date
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}
			if back != tt.date {
				t.Errorf("round trip = %+v, want %+v", back, tt.date)
			}
		})
	}
}

func TestDateAbsentComponentsDecodeAsZero(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`{"month":2,"day":15}`), &d); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	want := Date{Year: 0, Month: 2, Day: 15}
	if d != want {
		t.Errorf("decoded = %+v, want %+v", d, want)
	}
}

func TestDateComplete(t *testing.T) {
	tests := []struct {
		name     string
		date     Date
		expected bool
	}{
		{"all components", Date{Year: 2024, Month: 1, Day: 15}, true},
		{"missing year", Date{Month: 1, Day: 15}, false},
		{"missing day", Date{Year: 2024, Month: 1}, false},
		{"zero", Date{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.date.Complete(); got != tt.expected {
				t.Errorf("Complete() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDateIsZero(t *testing.T) {
	if !(Date{}).IsZero() {
		t.Errorf("IsZero() = false for the zero date, want true")
	}
	if (Date{Month: 2}).IsZero() {
		t.Errorf("IsZero() = true for a partial date, want false")
	}
}

func TestDateString(t *testing.T) {
	if got := (Date{Year: 2024, Month: 6, Day: 1}).String(); got != "2024-06-01" {
		t.Errorf("String() = %q, want '2024-06-01'", got)
	}
	if got := (Date{Month: 12, Day: 31}).String(); got != "date(year=0, month=12, day=31)" {
		t.Errorf("String() = %q, want the partial form", got)
	}
}

func TestDateBefore(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Date
		expected bool
	}{
		{"earlier year", Date{2023, 12, 31}, Date{2024, 1, 1}, true},
		{"same year earlier month", Date{2024, 5, 20}, Date{2024, 6, 1}, true},
		{"same day", Date{2024, 6, 1}, Date{2024, 6, 1}, false},
		{"later day", Date{2024, 6, 2}, Date{2024, 6, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Before(tt.b); got != tt.expected {
				t.Errorf("Before() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNewDateAndIn(t *testing.T) {
	src := time.Date(2024, time.June, 1, 13, 45, 0, 0, time.UTC)
	d := NewDate(src)

	want := Date{Year: 2024, Month: 6, Day: 1}
	if d != want {
		t.Errorf("NewDate() = %+v, want %+v", d, want)
	}

	back := d.In(time.UTC)
	if !back.Equal(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("In(UTC) = %v, want midnight 2024-06-01", back)
	}
}
