package wrappers

import (
	"fmt"
	"strconv"
	"strings"

	"worldgen/internal/errx"
)

// DayMonth is a zero-indexed day of month and month of year, written D.M
// in weather period ranges: 0.0 is January 1st, 30.11 is December 31st.
type DayMonth struct {
	Day   uint8
	Month uint8
}

// ParseDayMonth parses a D.M token. Day must be 0..30 and month 0..11.
func ParseDayMonth(s string) (DayMonth, error) {
	dayStr, monthStr, ok := strings.Cut(s, ".")
	if !ok {
		return DayMonth{}, errx.Parsef("invalid day month %q: missing dot", s)
	}
	day, err := strconv.ParseUint(dayStr, 10, 8)
	if err != nil {
		return DayMonth{}, errx.Parsef("invalid day in %q", s).WithCause(err)
	}
	month, err := strconv.ParseUint(monthStr, 10, 8)
	if err != nil {
		return DayMonth{}, errx.Parsef("invalid month in %q", s).WithCause(err)
	}
	if day > 30 {
		return DayMonth{}, errx.Parsef("day %d out of range in %q", day, s)
	}
	if month > 11 {
		return DayMonth{}, errx.Parsef("month %d out of range in %q", month, s)
	}
	return DayMonth{Day: uint8(day), Month: uint8(month)}, nil
}

func (dm DayMonth) String() string {
	return fmt.Sprintf("%d.%d", dm.Day, dm.Month)
}

// GameDate is a Y.M.D calendar date as written in season definitions,
// for example 00.12.1. Year 0 marks a yearly recurring date.
type GameDate struct {
	Year  int16
	Month uint8
	Day   uint8
}

// ParseGameDate parses a Y.M.D token. Month must be 1..12 and day 1..31.
func ParseGameDate(s string) (GameDate, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return GameDate{}, errx.Parsef("invalid date %q: want Y.M.D", s)
	}
	year, err := strconv.ParseInt(parts[0], 10, 16)
	if err != nil {
		return GameDate{}, errx.Parsef("invalid year in %q", s).WithCause(err)
	}
	month, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return GameDate{}, errx.Parsef("invalid month in %q", s).WithCause(err)
	}
	day, err := strconv.ParseUint(parts[2], 10, 8)
	if err != nil {
		return GameDate{}, errx.Parsef("invalid day in %q", s).WithCause(err)
	}
	if month < 1 || month > 12 {
		return GameDate{}, errx.Parsef("month %d out of range in %q", month, s)
	}
	if day < 1 || day > 31 {
		return GameDate{}, errx.Parsef("day %d out of range in %q", day, s)
	}
	return GameDate{Year: int16(year), Month: uint8(month), Day: uint8(day)}, nil
}

func (d GameDate) String() string {
	return fmt.Sprintf("%d.%d.%d", d.Year, d.Month, d.Day)
}
