package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ClockLayout is the zero-padded 24-hour format alarms are stored in.
const ClockLayout = "15:04"

const DefaultTone = "Default"

var ErrInvalidClock = errors.New("invalid alarm time")

type Alarm struct {
	ID           string     `json:"id,omitempty"`
	Time         string     `json:"time"`
	IsActive     bool       `json:"isActive"`
	Tone         string     `json:"tone"`
	SnoozedUntil *time.Time `json:"snoozedUntil,omitempty"`
}

type AlarmList []Alarm

func NewAlarm(clock, tone string) Alarm {
	return Alarm{
		ID:       uuid.NewString(),
		Time:     clock,
		IsActive: true,
		Tone:     tone,
	}
}

func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// ParseClock returns the hour and minute of an "HH:MM" value or of a full
// timestamp, the latter read in loc.
func ParseClock(s string, loc *time.Location) (hour, minute int, err error) {
	s = strings.TrimSpace(s)
	if ts, ok := parseTimestamp(s); ok {
		ts = ts.In(loc)
		return ts.Hour(), ts.Minute(), nil
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) < 1 || len(parts[0]) > 2 || len(parts[1]) != 2 ||
		!isDigits(parts[0]) || !isDigits(parts[1]) {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return hour, minute, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// NormalizeClock turns "7:05" into "07:05".
func NormalizeClock(s string) (string, error) {
	if _, ok := parseTimestamp(strings.TrimSpace(s)); ok {
		return "", fmt.Errorf("%w: %q is not a time of day", ErrInvalidClock, s)
	}
	hour, minute, err := ParseClock(s, time.Local)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

func parseTimestamp(s string) (time.Time, bool) {
	if len(s) <= len(ClockLayout) {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// Normalize rewrites a record whose time holds a full timestamp into the
// "HH:MM" + SnoozedUntil form. Records stored without an id keep it empty so
// a load returns what was saved.
func (a *Alarm) Normalize(loc *time.Location) error {
	if ts, ok := parseTimestamp(strings.TrimSpace(a.Time)); ok {
		ts = ts.In(loc)
		a.Time = FormatClock(ts)
		a.SnoozedUntil = &ts
		return nil
	}
	normalized, err := NormalizeClock(a.Time)
	if err != nil {
		return err
	}
	a.Time = normalized
	return nil
}

// Matches reports whether an active alarm is due in the minute of now.
// Seconds are ignored.
func (a Alarm) Matches(now time.Time) bool {
	if !a.IsActive {
		return false
	}
	var hour, minute int
	if a.SnoozedUntil != nil {
		at := a.SnoozedUntil.In(now.Location())
		hour, minute = at.Hour(), at.Minute()
	} else {
		var err error
		hour, minute, err = ParseClock(a.Time, now.Location())
		if err != nil {
			return false
		}
	}
	return hour == now.Hour() && minute == now.Minute()
}

func (l AlarmList) Clone() AlarmList {
	out := make(AlarmList, len(l))
	for i, a := range l {
		if a.SnoozedUntil != nil {
			at := *a.SnoozedUntil
			a.SnoozedUntil = &at
		}
		out[i] = a
	}
	return out
}

// IndexOfTime returns the position of the first alarm set to clock, or -1.
func (l AlarmList) IndexOfTime(clock string) int {
	for i, a := range l {
		if a.Time == clock {
			return i
		}
	}
	return -1
}

func (l AlarmList) ActiveCount() int {
	n := 0
	for _, a := range l {
		if a.IsActive {
			n++
		}
	}
	return n
}
