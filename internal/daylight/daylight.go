// Package daylight reports sunrise, sunset, and apparent solar noon
// for a calendar date at a geographic place. Unlike the calculation
// pipeline, these figures genuinely depend on latitude and longitude;
// they are display enrichment computed alongside a result, never an
// input to it.
package daylight

import (
	"fmt"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/papapumpkin/ecliptic/internal/civiltime"
)

// Report holds the daylight times for one date at one place, rendered
// in the place's zone. When the sun neither rises nor sets that day
// (polar day or polar night) Polar is true and the times are zero.
type Report struct {
	Sunrise time.Time `json:"sunrise"`
	Sunset  time.Time `json:"sunset"`
	Noon    time.Time `json:"noon"`
	Polar   bool      `json:"polar,omitempty"`
}

// At computes the daylight report for the moment's calendar date at
// the given coordinates. Times are rendered in the moment's zone.
func At(m civiltime.Moment, latitude, longitude float64) (Report, error) {
	loc, err := time.LoadLocation(m.Zone)
	if err != nil {
		return Report{}, fmt.Errorf("loading zone %q: %w", m.Zone, err)
	}

	rise, set := sunrise.SunriseSunset(latitude, longitude, m.Year, time.Month(m.Month), m.Day)
	if rise.IsZero() || set.IsZero() {
		return Report{Polar: true}, nil
	}

	noon := rise.Add(set.Sub(rise) / 2)
	return Report{
		Sunrise: rise.In(loc),
		Sunset:  set.In(loc),
		Noon:    noon.In(loc),
	}, nil
}
