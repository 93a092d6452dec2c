package ephemeris

import "time"

// Almanac is the low-precision analytic solar model: mean longitude
// plus a two-harmonic equation of center, computed from days since
// J2000.0. Accurate to roughly 0.01 degrees near the epoch, degrading
// slowly over centuries. Adequate for symbolic use, not for ephemeris
// work.
type Almanac struct{}

// Name returns ModelAlmanac.
func (Almanac) Name() string { return ModelAlmanac }

// ApparentLongitude implements Model.
func (Almanac) ApparentLongitude(utc time.Time) float64 {
	n := JulianDay(utc) - j2000

	meanLongitude := 280.460 + 0.9856474*n
	meanAnomaly := 357.528 + 0.9856003*n

	longitude := meanLongitude +
		1.915*sinDeg(meanAnomaly) +
		0.020*sinDeg(2*meanAnomaly)

	return fold(longitude)
}
