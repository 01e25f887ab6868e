// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civil

import "time"

// CalendarType provides the constructors for a calendar representation
// T. Only the mapping from EpochDays needs to be supplied, all other
// constructors are derived from it by routing through EpochDays.
type CalendarType[T Date] struct {
	fromDays func(EpochDays) T
	clock    Clock
}

// Option represents an option to NewCalendarType.
type Option func(o *options)

type options struct {
	clock Clock
}

// WithClock specifies the Clock used to determine the current day and,
// for local offsets created without their own clock, the local offset.
// The default is SystemClock.
func WithClock(c Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// NewCalendarType returns a CalendarType for T given the mapping from
// EpochDays to T. fromDays must be the inverse of T's EpochDays method.
func NewCalendarType[T Date](fromDays func(EpochDays) T, opts ...Option) CalendarType[T] {
	o := options{clock: SystemClock}
	for _, fn := range opts {
		fn(&o)
	}
	return CalendarType[T]{fromDays: fromDays, clock: o.clock}
}

var (
	// EpochCalendar is the CalendarType for EpochDays.
	EpochCalendar = NewCalendarType(func(d EpochDays) EpochDays { return d })

	// GregorianCalendar is the CalendarType for Gregorian.
	GregorianCalendar = NewCalendarType(GregorianFromEpochDays)
)

// WithClock returns a copy of ct that uses the supplied clock.
func (ct CalendarType[T]) WithClock(c Clock) CalendarType[T] {
	ct.clock = c
	return ct
}

// FromEpochDays returns the T for d.
func (ct CalendarType[T]) FromEpochDays(d EpochDays) T {
	return ct.fromDays(d)
}

// FromTimestamp returns the T containing the millisecond timestamp ts
// when aligned using off.
func (ct CalendarType[T]) FromTimestamp(ts int64, off TimeOffset) T {
	return ct.fromDays(daysFromTimestamp(ts, off, ct.clock))
}

// FromTime returns the T containing t when aligned using off.
func (ct CalendarType[T]) FromTime(t time.Time, off TimeOffset) T {
	return ct.FromTimestamp(t.UnixMilli(), off)
}

// Today returns the current day when aligned using off.
func (ct CalendarType[T]) Today(off TimeOffset) T {
	return ct.FromTime(ct.clock.Now(), off)
}

// From returns d as a T. d is returned unchanged if it is already a T.
func (ct CalendarType[T]) From(d Date) T {
	if t, ok := d.(T); ok {
		return t
	}
	return ct.fromDays(d.EpochDays())
}

// Timestamp is like the Timestamp function except that local offsets
// created without their own clock are resolved using ct's clock.
func (ct CalendarType[T]) Timestamp(d T, off TimeOffset) int64 {
	return d.EpochDays().timestamp(off, ct.clock)
}

// Time is like the Time function except that local offsets created
// without their own clock are resolved using ct's clock.
func (ct CalendarType[T]) Time(d T, off TimeOffset) time.Time {
	return timeAt(d, off, ct.clock)
}
