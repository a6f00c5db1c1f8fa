package orrery

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/julian"
)

// ErrInvalidDate is returned for malformed calendar dates or dates outside
// the supported Gregorian range.
var ErrInvalidDate = errors.New("invalid calendar date")

// The engine only deals in pure Gregorian dates, which sidesteps the 1582
// calendar switchover. Dates outside this range are rejected.
const (
	minYear = 1583
	maxYear = 9999
)

const dateLayout = "2006-01-02"

// startDate is the wall clock date at process start. It is read exactly once;
// the simulation clock owns time from then on.
var startDate = time.Now().UTC()

// DateToJulian converts an ISO-8601 calendar date (YYYY-MM-DD) to a Julian
// Date at midnight UTC of that day.
func DateToJulian(date string) (float64, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	y := t.Year()
	if y < minYear || y > maxYear {
		return 0, fmt.Errorf("%w: year %d out of range [%d, %d]", ErrInvalidDate, y, minYear, maxYear)
	}
	return julian.CalendarGregorianToJD(y, int(t.Month()), float64(t.Day())), nil
}

// JulianToDate converts a Julian Date back to an ISO-8601 calendar date.
// Fractional dates round to the nearest midnight, half away from zero, so
// JulianToDate is an exact left inverse of DateToJulian on day boundaries.
func JulianToDate(jd float64) (string, error) {
	if math.IsNaN(jd) || math.IsInf(jd, 0) {
		return "", fmt.Errorf("%w: non-finite julian date", ErrInvalidDate)
	}
	// Calendar days start at JD x.5, so shift before rounding to land on the
	// nearest midnight. math.Round rounds half away from zero.
	y, m, d := julian.JDToCalendar(math.Round(jd-0.5) + 0.5)
	if y < minYear || y > maxYear {
		return "", fmt.Errorf("%w: year %d out of range [%d, %d]", ErrInvalidDate, y, minYear, maxYear)
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, int(d)), nil
}

// Today returns the wall clock date at process start, formatted as an
// ISO-8601 calendar date. It is not re-queried per frame.
func Today() string {
	return startDate.Format(dateLayout)
}

// TodayJD returns the Julian Date of midnight UTC on the process start date.
func TodayJD() float64 {
	return julian.CalendarGregorianToJD(startDate.Year(), int(startDate.Month()), float64(startDate.Day()))
}
