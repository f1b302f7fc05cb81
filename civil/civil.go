// Package civil provides dates and datetimes without a time zone.
package civil

import (
	"fmt"
	"strings"
	"time"

	"github.com/relvacode/iso8601"
)

const dateLayout = "2006-01-02"

// Date is a calendar date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the date t falls on in its own location.
func DateOf(t time.Time) Date {
	var d Date
	d.Year, d.Month, d.Day = t.Date()
	return d
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

func (d Date) Date() (int, time.Month, int) {
	return d.Year, d.Month, d.Day
}

// IsoFormat renders d as YYYY-MM-DD.
func (d Date) IsoFormat() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) String() string {
	return d.IsoFormat()
}

// DateTime is a date and a wall clock time, no zone attached.
type DateTime struct {
	Year       int
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// DateTimeOf drops the location of t and keeps its wall clock.
func DateTimeOf(t time.Time) DateTime {
	var dt DateTime
	dt.Year, dt.Month, dt.Day = t.Date()
	dt.Hour, dt.Minute, dt.Second = t.Clock()
	dt.Nanosecond = t.Nanosecond()
	return dt
}

// ParseDateTime parses an ISO-8601 datetime. A zone, if present, is dropped
// after the value has been read in it.
func ParseDateTime(s string) (DateTime, error) {
	t, err := iso8601.ParseString(s)
	if err != nil {
		return DateTime{}, err
	}
	return DateTimeOf(t), nil
}

// HasZone reports whether an ISO-8601 datetime string carries a zone designator.
func HasZone(s string) bool {
	i := strings.IndexByte(s, 'T')
	if i < 0 {
		return false
	}
	clock := s[i+1:]
	return strings.HasSuffix(clock, "Z") || strings.ContainsAny(clock, "+-")
}

func (dt DateTime) Date() (int, time.Month, int) {
	return dt.Year, dt.Month, dt.Day
}

func (dt DateTime) Clock() (int, int, int) {
	return dt.Hour, dt.Minute, dt.Second
}

// In returns the instant dt denotes in loc.
func (dt DateTime) In(loc *time.Location) time.Time {
	return time.Date(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, dt.Nanosecond, loc)
}

// IsoFormat renders YYYY-MM-DDTHH:MM:SS, with .ffffff appended when the
// microseconds are not zero.
func (dt DateTime) IsoFormat() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%04d-%02d-%02dT%02d:%02d:%02d",
		dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second)
	if us := dt.Nanosecond / 1000; us != 0 {
		fmt.Fprintf(&b, ".%06d", us)
	}
	return b.String()
}

func (dt DateTime) String() string {
	return dt.IsoFormat()
}

// FormatTime renders t like DateTime.IsoFormat followed by its UTC offset,
// +HH:MM, or +HH:MM:SS when the offset has seconds.
func FormatTime(t time.Time) string {
	_, offset := t.Zone()
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	s := fmt.Sprintf("%s%c%02d:%02d", DateTimeOf(t).IsoFormat(), sign, offset/3600, offset%3600/60)
	if sec := offset % 60; sec != 0 {
		s += fmt.Sprintf(":%02d", sec)
	}
	return s
}
