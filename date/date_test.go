package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in   string
		want Date
	}{
		{"2025-07-01", New(2025, 7, 1)},
		{"2025-7-1", New(2025, 7, 1)},
		{"2025-07-01 16:00:00", New(2025, 7, 1)},
		{"2025-07-01T16:00:00Z", New(2025, 7, 1)},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v want %v", tc.in, got, tc.want)
		}
	}

	if _, err := Parse("yesterday"); err == nil {
		t.Errorf("Parse(%q) expected an error", "yesterday")
	}
}

func TestStartOf(t *testing.T) {
	d := New(2025, time.September, 10) // a Wednesday
	testCases := []struct {
		period Period
		want   Date
	}{
		{Daily, d},
		{Weekly, New(2025, time.September, 8)},
		{Monthly, New(2025, time.September, 1)},
		{Quarterly, New(2025, time.July, 1)},
		{Yearly, New(2025, time.January, 1)},
	}
	for _, tc := range testCases {
		if got := d.StartOf(tc.period); got != tc.want {
			t.Errorf("StartOf(%v) = %v want %v", tc.period, got, tc.want)
		}
	}
}

func TestJSON(t *testing.T) {
	var got struct {
		Date Date `json:"date"`
	}
	if err := json.Unmarshal([]byte(`{"date":"2025-03-04"}`), &got); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}
	if got.Date != New(2025, 3, 4) {
		t.Errorf("Unmarshal() = %v want 2025-03-04", got.Date)
	}
	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if string(data) != `{"date":"2025-03-04"}` {
		t.Errorf("Marshal() = %s", data)
	}
}

func TestRange(t *testing.T) {
	d := New(2025, 3, 15)
	r := ToDate(d, Monthly)
	if r.From != New(2025, 3, 1) || r.To != d {
		t.Errorf("ToDate(Monthly) = %v", r)
	}
	if !r.Contains(New(2025, 3, 1)) || r.Contains(New(2025, 2, 28)) {
		t.Errorf("Contains() does not include boundaries as expected")
	}
	if got := LastDays(d, 30).From; got != New(2025, 2, 13) {
		t.Errorf("LastDays(30).From = %v want 2025-02-13", got)
	}
}

func TestParsePeriod(t *testing.T) {
	for in, want := range map[string]Period{"mtd": Monthly, "YTD": Yearly, "week": Weekly, " Daily ": Daily, "monthly": Monthly} {
		got, err := ParsePeriod(in)
		if err != nil || got != want {
			t.Errorf("ParsePeriod(%q) = %v, %v want %v", in, got, err, want)
		}
	}
	if _, err := ParsePeriod("fortnight"); err == nil {
		t.Errorf("ParsePeriod(fortnight) should fail")
	}
	for _, p := range []Period{Daily, Weekly, Monthly, Quarterly, Yearly} {
		got, err := ParsePeriod(p.ToDateName())
		if err != nil || got != p {
			t.Errorf("ParsePeriod(%q) = %v, %v want %v", p.ToDateName(), got, err, p)
		}
	}
}
