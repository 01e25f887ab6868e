// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civil

import (
	"fmt"
	"time"
)

// Clock provides the current instant. The location of the returned
// time determines the offset used for Local.
type Clock interface {
	Now() time.Time
}

// ClockFunc is an adapter that allows an ordinary function to be
// used as a Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock is the Clock backed by time.Now.
var SystemClock Clock = systemClock{}

// TimeOffset determines how a timestamp is aligned to a day boundary.
// It is either a fixed offset in milliseconds, which is added to a
// timestamp when converting it to a day count and subtracted when
// converting back, or the local sentinel which uses the offset of the
// ambient local time zone.
//
// The local offset is sampled when a conversion is performed, not at the
// instant being converted. Dates that fall in a different daylight saving
// regime from the current one are therefore aligned using the current
// offset rather than their own.
//
// TimeOffset values may be compared with ==. Two local offsets created by
// separate calls to LocalTo are never equal.
type TimeOffset struct {
	millis int64
	local  bool
	clock  *clockRef
}

type clockRef struct {
	Clock
}

var (
	// UTC is the zero offset.
	UTC = TimeOffset{}
	// Local uses the offset of the system's local time zone.
	Local = TimeOffset{local: true}
)

// FixedOffset returns a TimeOffset for the given duration east of UTC,
// truncated to milliseconds.
func FixedOffset(d time.Duration) TimeOffset {
	return TimeOffset{millis: d.Milliseconds()}
}

// OffsetMillis returns a TimeOffset of ms milliseconds east of UTC.
func OffsetMillis(ms int64) TimeOffset {
	return TimeOffset{millis: ms}
}

// LocalTo returns a local TimeOffset whose offset is obtained from the
// zone of the times returned by clock.
func LocalTo(clock Clock) TimeOffset {
	return TimeOffset{local: true, clock: &clockRef{clock}}
}

// IsLocal returns true if o is a local offset.
func (o TimeOffset) IsLocal() bool {
	return o.local
}

// Millis returns the effective offset in milliseconds.
func (o TimeOffset) Millis() int64 {
	return o.resolve(SystemClock)
}

// resolve returns the effective offset, consulting fallback for local
// offsets that were not created with their own clock.
func (o TimeOffset) resolve(fallback Clock) int64 {
	ms, _ := o.sample(fallback)
	return ms
}

// sample returns the effective offset and the zone that times aligned
// using o are reported in. Both come from a single reading of the clock
// so that such times always read as midnight.
func (o TimeOffset) sample(fallback Clock) (int64, *time.Location) {
	switch {
	case o.local:
		name, secs := o.clockOr(fallback).Now().Zone()
		return int64(secs) * 1000, time.FixedZone(name, secs)
	case o.millis == 0:
		return 0, time.UTC
	}
	return o.millis, time.FixedZone(o.String(), int(o.millis/1000))
}

func (o TimeOffset) clockOr(fallback Clock) Clock {
	if o.clock != nil {
		return o.clock.Clock
	}
	return fallback
}

// Location returns the location that times created using o are
// reported in: time.UTC for a zero offset, a fixed zone for any other
// fixed offset and, for a local offset, a fixed zone with the name and
// offset of the clock's current zone. The current offset rather than the
// zone's rules is used since it is the offset that dates are aligned to.
func (o TimeOffset) Location() *time.Location {
	_, loc := o.sample(SystemClock)
	return loc
}

func (o TimeOffset) String() string {
	if o.local {
		return "Local"
	}
	if o.millis == 0 {
		return "UTC"
	}
	sign, ms := '+', o.millis
	if ms < 0 {
		sign, ms = '-', -ms
	}
	d := time.Duration(ms) * time.Millisecond
	h, m := int(d/time.Hour), int(d%time.Hour/time.Minute)
	if rem := d % time.Minute; rem != 0 {
		return fmt.Sprintf("UTC%c%02d:%02d+%v", sign, h, m, rem)
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, h, m)
}
