package paycalc

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidPeriod = errors.New("invalid payroll period")

var frenchMonths = [12]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// Period is a payroll month. Month is zero-based (January = 0), the way
// payslips have always been keyed.
type Period struct {
	Month int
	Year  int
}

func NewPeriod(month, year int) (Period, error) {
	if month < 0 || month > 11 {
		return Period{}, fmt.Errorf("%w: month %d out of range 0-11", ErrInvalidPeriod, month)
	}
	if year < 1900 || year > 9999 {
		return Period{}, fmt.Errorf("%w: year %d out of range", ErrInvalidPeriod, year)
	}
	return Period{Month: month, Year: year}, nil
}

// FirstDay is the evaluation date for every validity window in the period.
func (p Period) FirstDay() time.Time {
	return time.Date(p.Year, time.Month(p.Month+1), 1, 0, 0, 0, 0, time.UTC)
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month+1)
}

func (p Period) Label() string {
	return fmt.Sprintf("%s %d", frenchMonths[p.Month], p.Year)
}

// onOrBefore compares calendar days, ignoring clock time and zone offsets.
func onOrBefore(a, b time.Time) bool {
	return !dateOf(a).After(dateOf(b))
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// activeOn reports whether [start, end] covers day; a nil end is open.
func activeOn(start time.Time, end *time.Time, day time.Time) bool {
	if !onOrBefore(start, day) {
		return false
	}
	return end == nil || onOrBefore(day, *end)
}
