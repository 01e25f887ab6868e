// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package civil provides lossless conversions between millisecond
// timestamps, day counts relative to 1970-01-01 (EpochDays) and
// proleptic Gregorian calendar dates, together with the weekday of any
// of them.
//
// EpochDays is the canonical representation: every calendar converts
// to and from it and all other behaviour (timestamps, host time.Time
// values, weekdays) is derived from that single mapping. New calendar
// representations implement the Date interface and obtain timestamp,
// time.Time and 'today' constructors by way of NewCalendarType:
//
//	g, err := civil.NewGregorian(2024, time.February, 29)
//	days := g.EpochDays()                        // 19782
//	g.Weekday()                                  // time.Thursday
//	civil.GregorianCalendar.Today(civil.Local)   // today's date locally
//	civil.EpochCalendar.FromTimestamp(ts, civil.UTC)
//
// Timestamps are aligned to day boundaries using a TimeOffset which is
// either a fixed offset (UTC is the zero offset) or Local, the ambient
// system offset sampled at the time of the call.
package civil
