// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civil_test

import (
	"math"
	"testing"
	"time"

	"cloudeng.io/civil"
)

func fixedClock(t time.Time) civil.Clock {
	return civil.ClockFunc(func() time.Time { return t })
}

// truncatingWeekday computes the weekday using truncating modulo only,
// adjusting for negative day counts explicitly.
func truncatingWeekday(d int64) time.Weekday {
	if d >= -4 {
		return time.Weekday((d + 4) % 7)
	}
	return time.Weekday((d+5)%7 + 6)
}

func TestEpochDaysFixedPoints(t *testing.T) {
	moonLanding := time.Date(1969, time.July, 20, 20, 17, 40, 0, time.UTC)
	for _, tc := range []struct {
		name    string
		ts      int64
		days    civil.EpochDays
		weekday time.Weekday
	}{
		{"epoch", 0, 0, time.Thursday},
		{"moon landing", moonLanding.UnixMilli(), -165, time.Sunday},
		{"year 2038", 2_147_483_647 * 1000, 24855, time.Tuesday},
		{"last ms of epoch day", civil.MillisPerDay - 1, 0, time.Thursday},
		{"first ms before epoch", -1, -1, time.Wednesday},
	} {
		days := civil.DaysFromTimestamp(tc.ts, civil.UTC)
		if got, want := days, tc.days; got != want {
			t.Errorf("%v: got %v, want %v", tc.name, got, want)
		}
		if got, want := days.Weekday(), tc.weekday; got != want {
			t.Errorf("%v: got %v, want %v", tc.name, got, want)
		}
		if got, want := civil.Weekday(days), tc.weekday; got != want {
			t.Errorf("%v: got %v, want %v", tc.name, got, want)
		}
	}

	if got, want := civil.DaysFromTime(moonLanding, civil.UTC), civil.EpochDays(-165); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := civil.EpochDays(-165).ElapsedDays(), int64(-165); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWeekdayNegativeDays(t *testing.T) {
	check := func(d int64) {
		t.Helper()
		if got, want := civil.EpochDays(d).Weekday(), truncatingWeekday(d); got != want {
			t.Errorf("day %v: got %v, want %v", d, got, want)
		}
	}
	for d := int64(-100_000); d <= 100_000; d++ {
		check(d)
	}
	for _, d := range []int64{-1e15, -1e15 + 1, -1e12 - 3, 1e12 + 3, 1e15} {
		check(d)
	}
	// Consecutive days cycle through the week.
	prev := civil.EpochDays(-1000).Weekday()
	for d := civil.EpochDays(-999); d < 1000; d++ {
		wd := d.Weekday()
		if got, want := wd, (prev+1)%7; got != want {
			t.Errorf("day %v: got %v, want %v", d, got, want)
		}
		prev = wd
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	now := time.Now()
	days := civil.DaysFromTime(now, civil.UTC)
	midnight := days.Timestamp(civil.UTC)
	if got, want := midnight, time.Date(now.UTC().Year(), now.UTC().Month(), now.UTC().Day(), 0, 0, 0, 0, time.UTC).UnixMilli(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := civil.DaysFromTimestamp(midnight, civil.UTC).Timestamp(civil.UTC), midnight; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// Sub-day timestamps map to the start of their day.
	for _, ms := range []int64{1, 3_600_000, civil.MillisPerDay - 1} {
		if got, want := civil.DaysFromTimestamp(midnight+ms, civil.UTC).Timestamp(civil.UTC), midnight; got != want {
			t.Errorf("%v: got %v, want %v", ms, got, want)
		}
	}

	// Local offset, held constant across both conversions.
	zone := time.FixedZone(now.Zone())
	local := civil.LocalTo(fixedClock(now.In(zone)))
	startloc := time.Date(now.In(zone).Year(), now.In(zone).Month(), now.In(zone).Day(), 0, 0, 0, 0, zone)
	got := civil.DaysFromTime(startloc, local).Time(local)
	if !got.Equal(startloc) {
		t.Errorf("got %v, want %v", got, startloc)
	}

	// Fixed offsets are added going to days and subtracted coming back.
	for _, off := range []civil.TimeOffset{
		civil.FixedOffset(5*time.Hour + 30*time.Minute),
		civil.FixedOffset(-8 * time.Hour),
		civil.OffsetMillis(14 * 3_600_000),
		civil.OffsetMillis(-12 * 3_600_000),
	} {
		loc := off.Location()
		start := time.Date(2024, time.February, 29, 0, 0, 0, 0, loc)
		days := civil.DaysFromTime(start, off)
		if got, want := days, civil.MustGregorian(2024, time.February, 29).EpochDays(); got != want {
			t.Errorf("%v: got %v, want %v", off, got, want)
		}
		if got, want := days.Timestamp(off), start.UnixMilli(); got != want {
			t.Errorf("%v: got %v, want %v", off, got, want)
		}
		if got, want := civil.DaysFromTime(start.Add(-time.Millisecond), off), days-1; got != want {
			t.Errorf("%v: got %v, want %v", off, got, want)
		}
	}
}

func TestTimestampRange(t *testing.T) {
	// The largest day whose start is representable in int64 milliseconds.
	last := civil.EpochDays(math.MaxInt64 / civil.MillisPerDay)
	if got, want := last, civil.EpochDays(106_751_991_167); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, d := range []civil.EpochDays{last, -last, 1e11, -1e11} {
		ts := d.Timestamp(civil.UTC)
		if got, want := civil.DaysFromTimestamp(ts, civil.UTC), d; got != want {
			t.Errorf("%v: got %v, want %v", d, got, want)
		}
		if got, want := ts/civil.MillisPerDay, int64(d); got != want {
			t.Errorf("%v: got %v, want %v", d, got, want)
		}
	}
}

func TestTimeOffset(t *testing.T) {
	zone := time.FixedZone("test", -(3*3600 + 30*60))
	local := civil.LocalTo(fixedClock(time.Date(2024, time.March, 1, 12, 0, 0, 0, zone)))
	for _, tc := range []struct {
		off    civil.TimeOffset
		millis int64
		local  bool
		str    string
	}{
		{civil.UTC, 0, false, "UTC"},
		{civil.FixedOffset(time.Hour), 3_600_000, false, "UTC+01:00"},
		{civil.FixedOffset(5*time.Hour + 45*time.Minute), 20_700_000, false, "UTC+05:45"},
		{civil.OffsetMillis(-8 * 3_600_000), -28_800_000, false, "UTC-08:00"},
		{civil.FixedOffset(time.Hour + 1500*time.Microsecond), 3_600_001, false, "UTC+01:00+1ms"},
		{local, -12_600_000, true, "Local"},
	} {
		if got, want := tc.off.Millis(), tc.millis; got != want {
			t.Errorf("%v: got %v, want %v", tc.str, got, want)
		}
		if got, want := tc.off.IsLocal(), tc.local; got != want {
			t.Errorf("%v: got %v, want %v", tc.str, got, want)
		}
		if got, want := tc.off.String(), tc.str; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		_, secs := time.Date(2000, 1, 1, 0, 0, 0, 0, tc.off.Location()).Zone()
		if got, want := int64(secs)*1000, tc.millis-tc.millis%1000; got != want {
			t.Errorf("%v: got %v, want %v", tc.str, got, want)
		}
	}

	if !civil.Local.IsLocal() {
		t.Errorf("Local is not local")
	}
	_, secs := time.Now().Zone()
	if got, want := civil.Local.Millis(), int64(secs)*1000; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := civil.UTC.Location(), time.UTC; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTimeOffsetEquality(t *testing.T) {
	clock := civil.ClockFunc(time.Now)
	a, b := civil.LocalTo(clock), civil.LocalTo(clock)
	if c := a; a != c {
		t.Errorf("%v is not equal to itself", a)
	}
	if a == b {
		t.Errorf("separately created local offsets are equal")
	}
	if l := civil.Local; a == l || civil.Local != l {
		t.Errorf("Local compared incorrectly")
	}
	if civil.FixedOffset(time.Hour) != civil.OffsetMillis(3_600_000) {
		t.Errorf("equal fixed offsets are not equal")
	}
	offsets := map[civil.TimeOffset]bool{a: true, b: true, civil.UTC: true}
	if got, want := len(offsets), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
