// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command civil converts between millisecond timestamps, days since
// 1970-01-01 and Gregorian dates. Each converted value is printed as
// a line of tab separated epoch day, date, weekday and the timestamp of
// the start of that day.
//
//	civil days -- -165 24855
//	civil timestamp --offset=local 1709164800000
//	civil gregorian 2024 2 29
//
// Note that negative values must follow -- or a non-negative value to
// avoid being parsed as flags.
package main

import (
	"context"
	"os"

	"cloudeng.io/civil"
	"cloudeng.io/cmdutil/subcmd"
)

const commands = `name: civil
summary: convert between timestamps, epoch days and gregorian dates
commands:
  - name: today
    summary: print the current date
  - name: timestamp
    summary: convert millisecond timestamps
    arguments:
      - <millis>
      - ...
  - name: days
    summary: convert days since 1970-01-01
    arguments:
      - <days>
      - ...
  - name: gregorian
    summary: convert a gregorian date, year 0 is 1 BCE
    arguments:
      - <year>
      - <month>
      - <day>
  - name: time
    summary: convert times in RFC3339, DateTime, TimeOnly or DateOnly formats
    arguments:
      - <time>
      - ...
`

func newCommandSet(c *converter) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(commands)
	cmdSet.Set("today").MustRunnerAndFlags(c.today,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("timestamp").MustRunnerAndFlags(c.timestamps,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("days").MustRunnerAndFlags(c.days,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("gregorian").MustRunnerAndFlags(c.gregorian,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("time").MustRunnerAndFlags(c.times,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	return cmdSet
}

func main() {
	cmdSet := newCommandSet(&converter{out: os.Stdout, clock: civil.SystemClock})
	subcmd.Dispatch(context.Background(), cmdSet)
}
