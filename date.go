// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civil

import "time"

// Date is implemented by all calendar representations. A representation
// need only map itself to EpochDays, timestamps, time.Time values,
// weekdays and conversions to other representations are all derived
// from that mapping by the functions below.
type Date interface {
	EpochDays() EpochDays
}

// Timestamp returns the millisecond timestamp of the start of d when
// aligned using off. The result overflows for days more than about
// 1e11 days from 1970-01-01.
func Timestamp(d Date, off TimeOffset) int64 {
	return d.EpochDays().timestamp(off, SystemClock)
}

// Time returns the start of d as a time.Time in the location implied by
// off, see TimeOffset.Location. The result always reads as midnight on d,
// for a local offset in a zone whose offset differs on d from the current
// one it carries the current offset. The range is as for Timestamp.
func Time(d Date, off TimeOffset) time.Time {
	return timeAt(d, off, SystemClock)
}

func timeAt(d Date, off TimeOffset, clock Clock) time.Time {
	ms, loc := off.sample(clock)
	ts := int64(d.EpochDays())*MillisPerDay - ms
	return time.UnixMilli(ts).In(loc)
}

// ToGregorian returns d as a Gregorian date.
func ToGregorian(d Date) Gregorian {
	return GregorianCalendar.From(d)
}

// Weekday returns the day of the week of d.
func Weekday(d Date) time.Weekday {
	return d.EpochDays().Weekday()
}
