// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/civil"
	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

type CommonFlags struct {
	Offset    string `subcmd:"offset,utc,'day alignment: utc, local or a duration east of UTC such as 5h30m or -8h'"`
	LogLevel  int    `subcmd:"log-level,0,'logging level: 0=error, 1=warn, 2=info, 3=debug'"`
	LogFormat string `subcmd:"log-format,text,'log format: text or json'"`
}

func parseOffset(v string) (civil.TimeOffset, error) {
	switch strings.ToLower(v) {
	case "", "utc":
		return civil.UTC, nil
	case "local":
		return civil.Local, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return civil.TimeOffset{}, fmt.Errorf("invalid offset %q: %w", v, err)
	}
	return civil.FixedOffset(d), nil
}

type converter struct {
	out   io.Writer
	clock civil.Clock
}

func (c *converter) calendar() civil.CalendarType[civil.Gregorian] {
	return civil.GregorianCalendar.WithClock(c.clock)
}

// setup creates the logger for the command and determines the offset to
// use. The returned function must be called to close the logger.
func (c *converter) setup(ctx context.Context, values any) (context.Context, civil.TimeOffset, func(), error) {
	fv := values.(*CommonFlags)
	cfg := cmdutil.LoggingConfig{Level: fv.LogLevel, Format: fv.LogFormat}
	logger, err := cfg.NewLogger()
	if err != nil {
		return ctx, civil.TimeOffset{}, nil, err
	}
	closer := func() { logger.Close() }
	off, err := parseOffset(fv.Offset)
	if err != nil {
		closer()
		return ctx, civil.TimeOffset{}, nil, err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	ctx = ctxlog.WithAttributes(ctx, "offset", off.String())
	return ctx, off, closer, nil
}

func (c *converter) print(ctx context.Context, input string, g civil.Gregorian, off civil.TimeOffset) {
	days, ts := g.EpochDays(), c.calendar().Timestamp(g, off)
	ctxlog.Logger(ctx).Debug("converted", "input", input, "days", int64(days), "timestamp", ts)
	fmt.Fprintf(c.out, "%v\t%v\t%v\t%v\n", days, g, g.Weekday(), ts)
}

// each calls fn for each argument, all errors are collected and
// returned together.
func (c *converter) each(ctx context.Context, values any, args []string, fn func(string, civil.TimeOffset) (civil.Gregorian, error)) error {
	ctx, off, closer, err := c.setup(ctx, values)
	if err != nil {
		return err
	}
	defer closer()
	var errs errors.M
	for _, arg := range args {
		g, err := fn(arg, off)
		if err != nil {
			ctxlog.Logger(ctx).Warn("conversion failed", "input", arg, "error", err)
			errs.Append(fmt.Errorf("%q: %w", arg, err))
			continue
		}
		c.print(ctx, arg, g, off)
	}
	return errs.Err()
}

func (c *converter) today(ctx context.Context, values any, _ []string) error {
	ctx, off, closer, err := c.setup(ctx, values)
	if err != nil {
		return err
	}
	defer closer()
	c.print(ctx, "today", c.calendar().Today(off), off)
	return nil
}

func (c *converter) timestamps(ctx context.Context, values any, args []string) error {
	return c.each(ctx, values, args, func(arg string, off civil.TimeOffset) (civil.Gregorian, error) {
		ts, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return civil.Gregorian{}, err
		}
		return c.calendar().FromTimestamp(ts, off), nil
	})
}

func (c *converter) days(ctx context.Context, values any, args []string) error {
	return c.each(ctx, values, args, func(arg string, _ civil.TimeOffset) (civil.Gregorian, error) {
		d, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return civil.Gregorian{}, err
		}
		return civil.EpochDays(d).Gregorian(), nil
	})
}

func (c *converter) times(ctx context.Context, values any, args []string) error {
	return c.each(ctx, values, args, func(arg string, off civil.TimeOffset) (civil.Gregorian, error) {
		var tf flags.Time
		if err := tf.Set(arg); err != nil {
			return civil.Gregorian{}, err
		}
		return c.calendar().FromTime(tf.Get().(time.Time), off), nil
	})
}

func (c *converter) gregorian(ctx context.Context, values any, args []string) error {
	ctx, off, closer, err := c.setup(ctx, values)
	if err != nil {
		return err
	}
	defer closer()
	var errs errors.M
	ymd := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			errs.Append(fmt.Errorf("%q: %w", arg, err))
		}
		ymd[i] = v
	}
	if err := errs.Err(); err != nil {
		return err
	}
	g, err := civil.NewGregorian(ymd[0], time.Month(ymd[1]), ymd[2])
	if err != nil {
		return err
	}
	c.print(ctx, strings.Join(args, " "), g, off)
	return nil
}
