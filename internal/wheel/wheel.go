// Package wheel models the 64-segment zodiac wheel that maps ecliptic
// longitude to Gene Key numbers. The wheel partitions the full circle
// into equal arcs of 5.625 degrees; each position carries a fixed Gene
// Key assignment taken from the traditional hexagram ring, rotated so
// that the segment beginning at 0 degrees Aries carries Gene Key 13.
package wheel

import (
	"errors"
	"fmt"
	"math"
)

// ErrKeyNotFound is returned when a Gene Key number has no wheel segment.
var ErrKeyNotFound = errors.New("gene key not found")

const (
	// Segments is the number of equal arcs in the wheel.
	Segments = 64

	// SegmentWidth is the arc width of one segment in degrees.
	SegmentWidth = 360.0 / Segments

	// LineWidth is the arc width of one line in degrees. Each segment
	// divides into six lines, numbered 1..6 from the segment start.
	LineWidth = SegmentWidth / 6
)

// ring assigns a Gene Key number to each wheel position. Index 0 is the
// segment [0, 5.625) starting at the vernal equinox; index 63 ends the
// circle at 360. The ordering is the traditional zodiacal hexagram
// sequence and is a fixed permutation of 1..64.
var ring = [Segments]int{
	13, 49, 30, 55, 37, 63, 22, 36,
	25, 17, 21, 51, 42, 3, 27, 24,
	2, 23, 8, 20, 16, 35, 45, 12,
	15, 52, 39, 53, 62, 56, 31, 33,
	7, 4, 29, 59, 40, 64, 47, 6,
	46, 18, 48, 57, 32, 50, 28, 44,
	1, 43, 14, 34, 9, 5, 26, 11,
	10, 58, 38, 54, 61, 60, 41, 19,
}

// keyIndex is the inverse of ring: Gene Key number → wheel position.
var keyIndex = func() map[int]int {
	m := make(map[int]int, Segments)
	for i, key := range ring {
		m[key] = i
	}
	return m
}()

// signs lists the twelve zodiac sign names in ecliptic order, each
// spanning 30 degrees starting from the vernal equinox.
var signs = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Segment is one arc of the wheel. Start and End bound the half-open
// interval [Start, End) in degrees of ecliptic longitude.
type Segment struct {
	Index int     `json:"index"`
	Key   int     `json:"key"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Contains reports whether the longitude falls inside the segment after
// normalization into [0, 360).
func (s Segment) Contains(longitude float64) bool {
	lon := Normalize(longitude)
	return lon >= s.Start && lon < s.End
}

// Normalize folds a longitude into [0, 360), correcting negative values
// by wrapping around the circle.
func Normalize(longitude float64) float64 {
	lon := math.Mod(longitude, 360)
	if lon < 0 {
		lon += 360
	}
	return lon
}

// SegmentForLongitude returns the wheel segment containing the given
// ecliptic longitude. Any finite longitude is accepted; values outside
// [0, 360) are normalized first. Floating error directly below 360 can
// never produce an out-of-range index: the position is clamped to 63.
func SegmentForLongitude(longitude float64) Segment {
	lon := Normalize(longitude)
	index := int(lon / SegmentWidth)
	if index >= Segments {
		index = Segments - 1
	}
	return segmentAt(index)
}

// RangeForKey returns the segment assigned to the given Gene Key number.
// Returns ErrKeyNotFound for numbers outside 1..64. A number inside the
// range that is missing from the ring would mean a corrupted table and
// panics rather than degrading silently.
func RangeForKey(key int) (Segment, error) {
	if key < 1 || key > Segments {
		return Segment{}, fmt.Errorf("%w: %d is outside 1..%d", ErrKeyNotFound, key, Segments)
	}
	index, ok := keyIndex[key]
	if !ok {
		panic(fmt.Sprintf("wheel: ring table is missing gene key %d", key))
	}
	return segmentAt(index), nil
}

// All returns the 64 segments in wheel position order. The slice is
// freshly allocated on each call; callers may reorder it freely.
func All() []Segment {
	segments := make([]Segment, Segments)
	for i := range ring {
		segments[i] = segmentAt(i)
	}
	return segments
}

// SignForLongitude returns the zodiac sign name for the given ecliptic
// longitude, Aries beginning at 0 degrees.
func SignForLongitude(longitude float64) string {
	lon := Normalize(longitude)
	index := int(lon / 30)
	if index >= len(signs) {
		index = len(signs) - 1
	}
	return signs[index]
}

// LineForLongitude returns the line (1..6) within the segment containing
// the given longitude. Lines subdivide each segment into six equal arcs
// counted from the segment start.
func LineForLongitude(longitude float64) int {
	lon := Normalize(longitude)
	seg := SegmentForLongitude(lon)
	line := int((lon-seg.Start)/LineWidth) + 1
	if line > 6 {
		line = 6
	}
	return line
}

// PartnerKey returns the programming partner of the given Gene Key: the
// key assigned to the diametrically opposite wheel segment. Returns
// ErrKeyNotFound for numbers outside 1..64.
func PartnerKey(key int) (int, error) {
	seg, err := RangeForKey(key)
	if err != nil {
		return 0, err
	}
	return ring[(seg.Index+Segments/2)%Segments], nil
}

// segmentAt builds the Segment value for a wheel position. The final
// segment ends exactly at 360 so the segments partition [0, 360) with
// no gap introduced by accumulated floating error.
func segmentAt(index int) Segment {
	end := float64(index+1) * SegmentWidth
	if index == Segments-1 {
		end = 360
	}
	return Segment{
		Index: index,
		Key:   ring[index],
		Start: float64(index) * SegmentWidth,
		End:   end,
	}
}
