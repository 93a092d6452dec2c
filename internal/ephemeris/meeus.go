package ephemeris

import "time"

// Meeus is the solar model from Meeus, Astronomical Algorithms,
// chapter 25: geometric mean longitude with the full three-term
// equation of center, corrected for aberration and the principal
// nutation term to yield the apparent longitude. Worst-case error is
// about 0.01 degrees, well under an arcminute.
type Meeus struct{}

// Name returns ModelMeeus.
func (Meeus) Name() string { return ModelMeeus }

// ApparentLongitude implements Model.
func (Meeus) ApparentLongitude(utc time.Time) float64 {
	// Julian centuries since J2000.0.
	T := (JulianDay(utc) - j2000) / 36525

	// Geometric mean longitude and mean anomaly of the Sun.
	L0 := 280.46646 + 36000.76983*T + 0.0003032*T*T
	M := 357.52911 + 35999.05029*T - 0.0001537*T*T

	// Equation of center.
	C := (1.914602-0.004817*T-0.000014*T*T)*sinDeg(M) +
		(0.019993-0.000101*T)*sinDeg(2*M) +
		0.000289*sinDeg(3*M)

	trueLongitude := L0 + C

	// Apparent longitude: aberration and nutation in longitude, using
	// the longitude of the Moon's ascending node.
	omega := 125.04 - 1934.136*T
	apparent := trueLongitude - 0.00569 - 0.00478*sinDeg(omega)

	return fold(apparent)
}
