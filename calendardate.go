// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civil

import (
	"time"

	"cloudeng.io/datetime"
)

// CalendarDate returns g as a datetime.CalendarDate.
func (g Gregorian) CalendarDate() datetime.CalendarDate {
	return datetime.CalendarDate{
		Year:  g.year,
		Month: datetime.Month(g.month),
		Day:   g.day,
	}
}

// FromCalendarDate returns the Gregorian date for cd. Unlike
// datetime.CalendarDate a Gregorian date cannot refer to an entire month
// and hence a Day of zero is rejected as invalid.
func FromCalendarDate(cd datetime.CalendarDate) (Gregorian, error) {
	return NewGregorian(cd.Year, time.Month(cd.Month), cd.Day)
}
