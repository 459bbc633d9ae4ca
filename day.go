package moneybook

import "time"

// DayFormat is the format used to represent days as strings in ISO-8601 form.
const DayFormat = "2006-01-02"

// Day is a calendar day in ISO-8601 "YYYY-MM-DD" form.
//
// Days compare as raw strings: the ISO form makes lexicographic order
// and chronological order coincide. A Day is never parsed or
// validated; a non-ISO string is carried through untouched and its
// ordering relative to other days is undefined.
type Day string

// Before reports whether the day d sorts strictly before x.
func (d Day) Before(x Day) bool { return d < x }

// After reports whether the day d sorts strictly after x.
func (d Day) After(x Day) bool { return d > x }

func (d Day) String() string { return string(d) }

// Today returns the current date.
func Today() Day { return Day(time.Now().Format(DayFormat)) }

// Range represents a range of days.
//
// Bounds are kept exactly as given: when From sorts after To the range
// contains no day at all.
type Range struct{ From, To Day }

// NewRange creates a new day range.
func NewRange(from, to Day) Range { return Range{From: from, To: to} }

// Contains return true when day is included in the range (boundaries included).
func (r Range) Contains(day Day) bool { return !day.Before(r.From) && !day.After(r.To) }
