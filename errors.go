// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civil

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is matched, via errors.Is, by all *InvalidDateError values.
var ErrInvalidDate = errors.New("invalid date")

// InvalidDateError is returned when a month or day is out of range for
// the Gregorian calendar.
type InvalidDateError struct {
	Year  int
	Month time.Month
	Day   int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %d-%d-%d", e.Year, int(e.Month), e.Day)
}

// Is supports errors.Is.
func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}
