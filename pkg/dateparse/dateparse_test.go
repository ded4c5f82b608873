package dateparse

import (
	"errors"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/vanderheijden86/gantry/pkg/model"
)

func TestParse_Formats(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{"iso", "2026-03-15", model.Date(2026, time.March, 15)},
		{"iso single digit", "2026-3-5", model.Date(2026, time.March, 5)},
		{"named month", "15-Mar-2026", model.Date(2026, time.March, 15)},
		{"named month lowercase", "15-mar-2026", model.Date(2026, time.March, 15)},
		{"slash ambiguous defaults to day first", "01/05/2026", model.Date(2026, time.May, 1)},
		{"slash second over 12 flips to month first", "05/13/2026", model.Date(2026, time.May, 13)},
		{"slash day over 12 stays day first", "13/05/2026", model.Date(2026, time.May, 13)},
		{"leap day", "2024-02-29", model.Date(2024, time.February, 29)},
		{"long form", "15 March 2026", model.Date(2026, time.March, 15)},
		{"us long form", "March 15, 2026", model.Date(2026, time.March, 15)},
		{"whitespace trimmed", "  2026-03-15  ", model.Date(2026, time.March, 15)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tc.in, err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"not a date",
		"2026-13-01",
		"2026-02-30",
		"32/01/2026",
		"13/13/2026",
		"2023-02-29", // not a leap year
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			if _, err := Parse(in); !errors.Is(err, ErrUnparseable) {
				t.Fatalf("Parse(%q) = %v, want ErrUnparseable", in, err)
			}
		})
	}
}

func TestParse_NormalizesToNoonUTC(t *testing.T) {
	got, err := Parse("2026-07-04")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got.Hour() != 12 || got.Location() != time.UTC {
		t.Fatalf("got %v, want noon UTC", got)
	}
}

func TestParseCell_ExcelSerial(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		// Serial 45292 is 2024-01-01 against the 1899-12-30 epoch.
		{"serial", "45292", model.Date(2024, time.January, 1)},
		{"serial with fraction", "45292.5", model.Date(2024, time.January, 1)},
		{"text date still works", "2026-03-15", model.Date(2026, time.March, 15)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCell(tc.in)
			if err != nil {
				t.Fatalf("ParseCell(%q) error: %v", tc.in, err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("ParseCell(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseCell_SerialOutOfRange(t *testing.T) {
	for _, in := range []string{"0", "60", "2958466"} {
		if _, err := ParseCell(in); err == nil {
			t.Fatalf("ParseCell(%q) accepted an out-of-range serial", in)
		}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		year := rapid.IntRange(1990, 2100).Draw(t, "year")
		month := rapid.IntRange(1, 12).Draw(t, "month")
		want := model.Date(year, time.Month(month), 1)
		day := rapid.IntRange(1, model.DaysInMonth(want)).Draw(t, "day")
		want = model.Date(year, time.Month(month), day)

		for _, layout := range []string{"2006-01-02", "2-Jan-2006"} {
			in := want.Format(layout)
			got, err := Parse(in)
			if err != nil {
				t.Fatalf("Parse(%s) error: %v", in, err)
			}
			if !got.Equal(want) {
				t.Fatalf("round trip via %s: got %v, want %v", in, got, want)
			}
		}
	})
}
