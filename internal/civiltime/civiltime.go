// Package civiltime converts civil wall-clock readings (date, time of
// day, IANA timezone identifier) into absolute UTC instants. It applies
// the zone's offset in force at that civil moment, so daylight-saving
// shifts are honored, and it resolves the two DST edge cases with one
// uniform policy:
//
//   - A wall time that falls in a spring-forward gap is interpreted
//     with the offset in force before the transition, so the resulting
//     instant renders just after the gap (02:30 in a US gap resolves to
//     the instant displayed as 03:30 daylight time).
//   - A wall time repeated by a fall-back transition resolves to its
//     earlier occurrence.
//
// The IANA database is the Go runtime's, with the embedded time/tzdata
// copy as fallback so binaries resolve zones on hosts without one.
package civiltime

import (
	"strconv"
	"time"
	_ "time/tzdata"
)

// Moment is a civil wall-clock reading awaiting resolution. It is
// produced per request and never persisted.
type Moment struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Zone   string
}

// Parse validates a date ("YYYY-MM-DD"), a time of day ("HH:mm"), and a
// timezone identifier, returning the assembled Moment. All failures are
// *InputError values wrapping ErrInvalidInput.
func Parse(date, timeOfDay, zone string) (Moment, error) {
	year, month, day, err := parseDate(date)
	if err != nil {
		return Moment{}, err
	}
	hour, minute, err := parseTime(timeOfDay)
	if err != nil {
		return Moment{}, err
	}
	if zone == "" {
		return Moment{}, &InputError{Field: FieldZone, Value: zone, Reason: "timezone identifier is required"}
	}
	if _, lerr := time.LoadLocation(zone); lerr != nil {
		return Moment{}, &InputError{Field: FieldZone, Value: zone, Reason: "unknown timezone identifier"}
	}
	return Moment{Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Zone: zone}, nil
}

// Validate checks the date and time-of-day strings without resolving a
// zone. It returns nil for valid input and an *InputError otherwise.
func Validate(date, timeOfDay string) error {
	if _, _, _, err := parseDate(date); err != nil {
		return err
	}
	if _, _, err := parseTime(timeOfDay); err != nil {
		return err
	}
	return nil
}

// ToUTC resolves the wall clock named by date, time of day, and zone to
// the absolute UTC instant it denotes.
func ToUTC(date, timeOfDay, zone string) (time.Time, error) {
	m, err := Parse(date, timeOfDay, zone)
	if err != nil {
		return time.Time{}, err
	}
	return m.UTC()
}

// UTC resolves the moment to an absolute UTC instant under the package
// DST policy.
func (m Moment) UTC() (time.Time, error) {
	loc, err := time.LoadLocation(m.Zone)
	if err != nil {
		return time.Time{}, &InputError{Field: FieldZone, Value: m.Zone, Reason: "unknown timezone identifier"}
	}
	return m.resolve(loc), nil
}

// resolve finds the UTC instant whose rendering in loc reproduces the
// requested wall clock. Candidate offsets are discovered by probing the
// zone around a naive UTC guess; each candidate instant is confirmed by
// rendering it back into the zone. When two candidates survive (a
// fall-back repeat) the earlier instant wins. When none survives (a
// spring-forward gap) the wall clock is interpreted with the smallest
// candidate offset, the one in force before the clocks jumped.
func (m Moment) resolve(loc *time.Location) time.Time {
	naive := time.Date(m.Year, time.Month(m.Month), m.Day, m.Hour, m.Minute, 0, 0, time.UTC)

	offsets := candidateOffsets(naive, loc)
	var best time.Time
	for _, offset := range offsets {
		candidate := naive.Add(-time.Duration(offset) * time.Second)
		if m.rendersAs(candidate, loc) && (best.IsZero() || candidate.Before(best)) {
			best = candidate
		}
	}
	if !best.IsZero() {
		return best.UTC()
	}

	pre := offsets[0]
	for _, offset := range offsets[1:] {
		if offset < pre {
			pre = offset
		}
	}
	return naive.Add(-time.Duration(pre) * time.Second).UTC()
}

// rendersAs reports whether the instant displays in loc as exactly the
// wall clock this moment names.
func (m Moment) rendersAs(instant time.Time, loc *time.Location) bool {
	local := instant.In(loc)
	return local.Year() == m.Year &&
		int(local.Month()) == m.Month &&
		local.Day() == m.Day &&
		local.Hour() == m.Hour &&
		local.Minute() == m.Minute
}

// candidateOffsets returns the distinct UTC offsets, in seconds,
// observed in loc across a window around the naive guess. The window
// spans every offset a real zone can put between wall clock and UTC,
// including a transition on the day itself.
func candidateOffsets(naive time.Time, loc *time.Location) []int {
	var offsets []int
	seen := make(map[int]bool)
	for hours := -30; hours <= 30; hours += 6 {
		_, offset := naive.Add(time.Duration(hours) * time.Hour).In(loc).Zone()
		if !seen[offset] {
			seen[offset] = true
			offsets = append(offsets, offset)
		}
	}
	return offsets
}

// parseDate parses and validates a "YYYY-MM-DD" date string. Calendar
// validity is checked by constructing the date and confirming the month
// survives normalization, which catches day-for-month overflows such as
// February 30.
func parseDate(date string) (year, month, day int, err error) {
	if date == "" {
		return 0, 0, 0, &InputError{Field: FieldDate, Value: date, Reason: "date is required"}
	}
	malformed := &InputError{Field: FieldDate, Value: date, Reason: "date must use the YYYY-MM-DD format"}
	if len(date) != 10 || date[4] != '-' || date[7] != '-' {
		return 0, 0, 0, malformed
	}
	year, ok1 := digits(date[0:4])
	month, ok2 := digits(date[5:7])
	day, ok3 := digits(date[8:10])
	if !ok1 || !ok2 || !ok3 {
		return 0, 0, 0, malformed
	}
	if month < 1 || month > 12 {
		return 0, 0, 0, &InputError{Field: FieldDate, Value: date, Reason: "month must be between 1 and 12"}
	}
	if day < 1 || day > 31 {
		return 0, 0, 0, &InputError{Field: FieldDate, Value: date, Reason: "day must be between 1 and 31"}
	}
	constructed := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if int(constructed.Month()) != month || constructed.Day() != day {
		return 0, 0, 0, &InputError{
			Field:  FieldDate,
			Value:  date,
			Reason: "day " + strconv.Itoa(day) + " does not exist in " + time.Month(month).String(),
		}
	}
	return year, month, day, nil
}

// parseTime parses and validates an "HH:mm" time-of-day string.
func parseTime(timeOfDay string) (hour, minute int, err error) {
	if timeOfDay == "" {
		return 0, 0, &InputError{Field: FieldTime, Value: timeOfDay, Reason: "time is required"}
	}
	malformed := &InputError{Field: FieldTime, Value: timeOfDay, Reason: "time must use the HH:mm format"}
	if len(timeOfDay) != 5 || timeOfDay[2] != ':' {
		return 0, 0, malformed
	}
	hour, ok1 := digits(timeOfDay[0:2])
	minute, ok2 := digits(timeOfDay[3:5])
	if !ok1 || !ok2 {
		return 0, 0, malformed
	}
	if hour > 23 {
		return 0, 0, &InputError{Field: FieldTime, Value: timeOfDay, Reason: "hour must be between 0 and 23"}
	}
	if minute > 59 {
		return 0, 0, &InputError{Field: FieldTime, Value: timeOfDay, Reason: "minute must be between 0 and 59"}
	}
	return hour, minute, nil
}

// digits converts a string of ASCII digits to an int. The second result
// is false if any rune is not a digit.
func digits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
