// Package calendar provides small date/time helpers: ISO week keys for
// civil dates and the Europe/Moscow-localized show timing used by the
// Gantt projection.
package calendar

import (
	"fmt"
	"time"
)

// Moscow is the fixed UTC+3 offset the original system localized show
// timestamps to. Go's standard library expresses fixed offsets natively;
// no timezone-database dependency is warranted for a single constant
// offset with no daylight-saving transitions.
var Moscow = time.FixedZone("MSK", 3*60*60)

// ShowDuration is the fixed visualization duration appended to every
// show's start time when building a Gantt task.
const ShowDuration = 3 * time.Hour

// WeekKey derives the ISO year-week string "YYYY-Www" for a civil date
// (yyyy-mm-dd), interpreted at Moscow midnight. The solver applies its
// weekend terms per slot and does not call this helper.
func WeekKey(date string) (string, error) {
	t, err := time.ParseInLocation("2006-01-02", date, Moscow)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", date, err)
	}
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week), nil
}

// Localize combines a civil date and "HH:MM" start time into a Moscow-zoned
// time.Time.
func Localize(date, startTime string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+startTime, Moscow)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date/time %q %q: %w", date, startTime, err)
	}
	return t, nil
}
