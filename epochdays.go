// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civil

import "time"

// MillisPerDay is the number of milliseconds in a day.
const MillisPerDay = 86_400_000

// EpochDays is a signed count of days since 1970-01-01, which is day 0.
// Every value is valid, including negative ones.
type EpochDays int64

// DaysFromTimestamp returns the day containing the millisecond timestamp
// ts when aligned using off.
func DaysFromTimestamp(ts int64, off TimeOffset) EpochDays {
	return daysFromTimestamp(ts, off, SystemClock)
}

// DaysFromTime returns the day containing t when aligned using off. Only
// the instant of t is used, its location is ignored.
func DaysFromTime(t time.Time, off TimeOffset) EpochDays {
	return daysFromTimestamp(t.UnixMilli(), off, SystemClock)
}

func daysFromTimestamp(ts int64, off TimeOffset, clock Clock) EpochDays {
	return EpochDays(floorDiv(ts+off.resolve(clock), MillisPerDay))
}

func (d EpochDays) timestamp(off TimeOffset, clock Clock) int64 {
	return int64(d)*MillisPerDay - off.resolve(clock)
}

// EpochDays implements Date.
func (d EpochDays) EpochDays() EpochDays {
	return d
}

// ElapsedDays returns the number of days since 1970-01-01.
func (d EpochDays) ElapsedDays() int64 {
	return int64(d)
}

// Weekday returns the day of the week for d, 1970-01-01 being a Thursday.
func (d EpochDays) Weekday() time.Weekday {
	return time.Weekday(floorMod(int64(d)+int64(time.Thursday), 7))
}

// Timestamp returns the millisecond timestamp for the start of d.
// It overflows for days more than about 1e11 days from 1970-01-01.
func (d EpochDays) Timestamp(off TimeOffset) int64 {
	return Timestamp(d, off)
}

// Time returns the start of d as a time.Time, see the Time function.
func (d EpochDays) Time(off TimeOffset) time.Time {
	return Time(d, off)
}

// Gregorian returns d as a Gregorian date.
func (d EpochDays) Gregorian() Gregorian {
	return GregorianFromEpochDays(d)
}

// floorDiv returns a/b rounded towards negative infinity, b must be
// positive.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// floorMod returns a mod b in [0, b), b must be positive.
func floorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
