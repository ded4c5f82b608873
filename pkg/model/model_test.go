package model

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", Date(2026, time.March, 1), Date(2026, time.March, 1), 0},
		{"adjacent", Date(2026, time.March, 1), Date(2026, time.March, 2), 1},
		{"across leap day", Date(2024, time.February, 28), Date(2024, time.March, 1), 2},
		{"inverted is negative", Date(2026, time.March, 10), Date(2026, time.March, 1), -9},
		{"ignores time of day", time.Date(2026, time.March, 1, 23, 0, 0, 0, time.UTC), time.Date(2026, time.March, 2, 1, 0, 0, 0, time.UTC), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysBetween(tc.a, tc.b); got != tc.want {
				t.Fatalf("DaysBetween = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		in   time.Time
		want int
	}{
		{Date(2026, time.January, 15), 31},
		{Date(2026, time.February, 1), 28},
		{Date(2024, time.February, 1), 29},
		{Date(2026, time.April, 30), 30},
		{Date(2026, time.December, 31), 31},
	}
	for _, tc := range cases {
		if got := DaysInMonth(tc.in); got != tc.want {
			t.Errorf("DaysInMonth(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMonthsIn(t *testing.T) {
	got := MonthsIn(Date(2025, time.November, 20), Date(2026, time.February, 3))
	want := []time.Time{
		Date(2025, time.November, 1),
		Date(2025, time.December, 1),
		Date(2026, time.January, 1),
		Date(2026, time.February, 1),
	}
	if len(got) != len(want) {
		t.Fatalf("MonthsIn yielded %d months, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("months[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if MonthsIn(Date(2026, time.March, 1), Date(2026, time.February, 1)) != nil {
		t.Fatal("inverted range should yield no months")
	}
}

func TestItemLevels(t *testing.T) {
	cases := []struct {
		name       string
		level      int
		wantKind   Kind
		wantIndent int
	}{
		{"level 1 is a phase", 1, KindPhase, 0},
		{"level 2 is a task", 2, KindTask, 1},
		{"level 3 is an indented task", 3, KindTask, 2},
		{"out of range falls back to task", 7, KindTask, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it := ItemForLevel(tc.level)
			if it.Kind != tc.wantKind || it.Indent != tc.wantIndent {
				t.Fatalf("ItemForLevel(%d) = kind %v indent %d, want kind %v indent %d",
					tc.level, it.Kind, it.Indent, tc.wantKind, tc.wantIndent)
			}
		})
	}
}

func TestItemLevelRoundTrip(t *testing.T) {
	for level := 1; level <= 3; level++ {
		if got := ItemForLevel(level).Level(); got != level {
			t.Errorf("Level round trip for %d gave %d", level, got)
		}
	}
}

func TestSeedSchedule(t *testing.T) {
	now := Date(2026, time.August, 17)
	items, milestones := SeedSchedule(now)

	if len(items) == 0 || len(milestones) == 0 {
		t.Fatalf("seed produced %d items and %d milestones", len(items), len(milestones))
	}
	anchor := StartOfMonth(now)
	if !items[0].Start.Equal(anchor) {
		t.Fatalf("seed anchor = %v, want %v", items[0].Start, anchor)
	}
	for _, it := range items {
		if it.End.Before(it.Start) {
			t.Fatalf("seed item %s has end before start", it.ID)
		}
		if it.Progress < 0 || it.Progress > 100 {
			t.Fatalf("seed item %s has progress %d", it.ID, it.Progress)
		}
	}
}
