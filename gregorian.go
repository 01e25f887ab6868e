// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civil

import (
	"fmt"
	"time"
)

var (
	daysInMonth     = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	daysInMonthLeap = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
)

const (
	// daysPerEra is the number of days in 400 Gregorian years, the
	// period after which the calendar repeats.
	daysPerEra = 146_097
	// marchEpochShift is the number of days from 0000-03-01 to 1970-01-01.
	marchEpochShift = 719_468
)

// IsLeapYear returns true if year is a leap year in the proleptic
// Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInMonth returns the number of days in the given month of year, or
// zero if month is not in the range 1-12.
func DaysInMonth(year int, month time.Month) int {
	if month < time.January || month > time.December {
		return 0
	}
	if IsLeapYear(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// CE returns the proleptic year for a year of the common era.
func CE(year int) int {
	return year
}

// BCE returns the proleptic year for a year before the common era, there
// is no year zero in that numbering so 1 BCE is year 0.
func BCE(year int) int {
	return 1 - year
}

// AD is an alias for CE.
func AD(year int) int {
	return CE(year)
}

// BC is an alias for BCE.
func BC(year int) int {
	return BCE(year)
}

// Gregorian is a date in the proleptic Gregorian calendar, year 0 being
// 1 BCE. A Gregorian value is always a valid date: it can only be created
// by NewGregorian, which validates its arguments, or by conversion from
// another representation. The zero value is not a valid date; use
// NewGregorian or GregorianCalendar to obtain one.
type Gregorian struct {
	year  int
	month time.Month
	day   int
}

// NewGregorian returns the Gregorian date for year, month and day. It
// returns an *InvalidDateError if month or day are out of range.
func NewGregorian(year int, month time.Month, day int) (Gregorian, error) {
	if day < 1 || day > DaysInMonth(year, month) {
		return Gregorian{}, &InvalidDateError{Year: year, Month: month, Day: day}
	}
	return Gregorian{year: year, month: month, day: day}, nil
}

// MustGregorian is like NewGregorian but panics on error.
func MustGregorian(year int, month time.Month, day int) Gregorian {
	g, err := NewGregorian(year, month, day)
	if err != nil {
		panic(err)
	}
	return g
}

// GregorianFromEpochDays returns the Gregorian date for d. The conversion
// is closed form: the day count is rebased to start on 0000-03-01 so that
// leap days fall at the end of each year, split into 400 year eras and the
// year, month and day recovered arithmetically within the era. See
// http://howardhinnant.github.io/date_algorithms.html#civil_from_days.
func GregorianFromEpochDays(d EpochDays) Gregorian {
	z := int64(d) + marchEpochShift
	era := floorDiv(z, daysPerEra)
	doe := z - era*daysPerEra // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365], March 1st is 0
	mp := (5*doy + 2) / 153                  // [0, 11], March is 0
	day := doy - (153*mp+2)/5 + 1
	month := mp + 3
	if mp >= 10 {
		month = mp - 9
	}
	year := yoe + era*400
	if month <= 2 {
		year++
	}
	return Gregorian{year: int(year), month: time.Month(month), day: int(day)}
}

// EpochDays implements Date.
func (g Gregorian) EpochDays() EpochDays {
	y, m := int64(g.year), int64(g.month)
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400 // [0, 399]
	mp := m - 3
	if m <= 2 {
		mp = m + 9
	}
	doy := (153*mp+2)/5 + int64(g.day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return EpochDays(era*daysPerEra + doe - marchEpochShift)
}

// Year returns the proleptic year, year 0 is 1 BCE.
func (g Gregorian) Year() int {
	return g.year
}

// Month returns the month of the year.
func (g Gregorian) Month() time.Month {
	return g.month
}

// Day returns the day of the month.
func (g Gregorian) Day() int {
	return g.day
}

// Date returns the year, month and day.
func (g Gregorian) Date() (year int, month time.Month, day int) {
	return g.year, g.month, g.day
}

// IsLeapYear returns true if g falls in a leap year.
func (g Gregorian) IsLeapYear() bool {
	return IsLeapYear(g.year)
}

// Weekday returns the day of the week of g.
func (g Gregorian) Weekday() time.Weekday {
	return Weekday(g)
}

// Timestamp returns the millisecond timestamp for the start of g.
// It overflows for days more than about 1e11 days from 1970-01-01.
func (g Gregorian) Timestamp(off TimeOffset) int64 {
	return Timestamp(g, off)
}

// Time returns the start of g as a time.Time, see the Time function.
func (g Gregorian) Time(off TimeOffset) time.Time {
	return Time(g, off)
}

func (g Gregorian) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", g.year, g.month, g.day)
}
