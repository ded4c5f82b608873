// Package dateparse turns the heterogeneous date strings found in imported
// spreadsheets into normalized calendar dates.
//
// Rules are tried in order, first match wins:
//
//  1. ISO numeric YYYY-M-D (1-2 digit month/day, 4-digit year)
//  2. D-MMM-YYYY with a case-insensitive English month abbreviation
//  3. Slash-delimited triples A/B/C, disambiguated below
//  4. A small set of generic layouts as a last resort
//
// Slash triples where both leading components could be a month are genuinely
// ambiguous. Parse resolves them as DD/MM/YYYY. That is a documented policy
// default inherited from the original schedule format, not a detection:
// "01/05/2026" is the 1st of May. Unambiguous inputs are honoured regardless
// of the policy ("13/05/2026" is the 13th of May, "05/13/2026" likewise).
package dateparse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/vanderheijden86/gantry/pkg/model"
)

// ErrUnparseable reports that no rule matched or the matched components do
// not form a valid calendar date. It is always wrapped with the raw input.
var ErrUnparseable = errors.New("unparseable date")

var (
	isoRe   = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	mmmRe   = regexp.MustCompile(`^(\d{1,2})-([A-Za-z]{3})-(\d{4})$`)
	slashRe = regexp.MustCompile(`^(\d{1,4})/(\d{1,4})/(\d{1,4})$`)
)

var monthAbbr = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// Fallback layouts for rule 4. These cover the formats spreadsheet tools
// emit when a cell was typed rather than date-formatted.
var genericLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2 January 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"Jan 2, 2006",
}

// Parse converts raw into a calendar date at noon UTC. It never panics;
// inputs that match no rule, or that name an impossible date, return an
// error wrapping ErrUnparseable.
func Parse(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty input", ErrUnparseable)
	}

	if m := isoRe.FindStringSubmatch(s); m != nil {
		return makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3]), raw)
	}

	if m := mmmRe.FindStringSubmatch(s); m != nil {
		month, ok := monthAbbr[strings.ToLower(m[2])]
		if !ok {
			return time.Time{}, fmt.Errorf("%w: unknown month abbreviation in %q", ErrUnparseable, raw)
		}
		return makeDate(atoi(m[3]), int(month), atoi(m[1]), raw)
	}

	if m := slashRe.FindStringSubmatch(s); m != nil {
		a, b, year := atoi(m[1]), atoi(m[2]), atoi(m[3])
		day, month := disambiguate(a, b)
		return makeDate(year, month, day, raw)
	}

	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return model.Normalize(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseable, raw)
}

// disambiguate applies the slash-triple policy: a component above 12 can
// only be a day, otherwise the DD/MM default applies.
func disambiguate(a, b int) (day, month int) {
	switch {
	case b > 12:
		// Second component cannot be a month, so this is MM/DD.
		return b, a
	default:
		// Covers both the unambiguous a > 12 case and the ambiguous
		// both-<=12 case; the latter falls to the DD/MM policy default.
		return a, b
	}
}

// makeDate validates components by round-tripping them through time.Date:
// Go normalizes out-of-range values (Feb 30 becomes Mar 2), so any shift
// means the components were not a real date.
func makeDate(year, month, day int, raw string) (time.Time, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseable, raw)
	}
	t := model.Date(year, time.Month(month), day)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseable, raw)
	}
	return t, nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// excelEpoch is day zero of the 1900 date system. Serial 1 is 1900-01-01;
// using Dec 30 rather than Dec 31 absorbs the fictitious 1900 leap day that
// spreadsheet serials carry.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ParseCell is the importer-facing entry point: it runs the Parse rule
// chain first and falls back to interpreting the raw value as an Excel
// serial day number, which is how date-formatted cells surface when read
// without style information.
func ParseCell(raw string) (time.Time, error) {
	if t, err := Parse(raw); err == nil {
		return t, nil
	}

	serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || serial < 61 || serial > 2_958_465 { // 61 = 1900-03-01, upper bound = 9999-12-31
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseable, raw)
	}
	return model.Normalize(excelEpoch.AddDate(0, 0, int(serial))), nil
}
