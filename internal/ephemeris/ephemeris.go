// Package ephemeris computes the Sun's apparent ecliptic longitude for
// an absolute UTC instant. Two models are provided: a low-precision
// analytic almanac formula and the higher-precision series from Meeus,
// Astronomical Algorithms, chapter 25. Both are pure functions of the
// instant with no I/O; they can disagree by a few hundredths of a
// degree, which matters when a longitude falls near a wheel-segment
// boundary, so the caller should surface which model produced a result.
package ephemeris

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrUnknownModel is returned when a model name has no implementation.
var ErrUnknownModel = errors.New("unknown ephemeris model")

// Model names accepted by New.
const (
	ModelMeeus   = "meeus"
	ModelAlmanac = "almanac"
)

// j2000 is the Julian Day of the J2000.0 epoch, 2000-01-01 12:00.
const j2000 = 2451545.0

// Model computes the Sun's apparent ecliptic longitude in degrees,
// folded into [0, 360), for an absolute UTC instant.
type Model interface {
	ApparentLongitude(utc time.Time) float64
	Name() string
}

// New returns the model with the given name, ErrUnknownModel otherwise.
func New(name string) (Model, error) {
	switch name {
	case ModelMeeus:
		return Meeus{}, nil
	case ModelAlmanac:
		return Almanac{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
}

// JulianDay converts an instant to its Julian Day number.
func JulianDay(t time.Time) float64 {
	const unixEpoch = 2440587.5 // JD of 1970-01-01 00:00 UTC
	seconds := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return seconds/86400 + unixEpoch
}

// fold wraps an angle in degrees into [0, 360).
func fold(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// sinDeg returns the sine of an angle given in degrees.
func sinDeg(deg float64) float64 {
	return math.Sin(deg * math.Pi / 180)
}
