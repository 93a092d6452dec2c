// Package profile composes the civil time resolver, the solar
// ephemeris, the zodiac wheel, and the codex into the single
// calculation pipeline: a birth moment and place in, a Gene Key
// result out. The pipeline is a pure function of date, time of day,
// and timezone; latitude and longitude ride along for display only
// and never influence the astronomical fields.
package profile

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/papapumpkin/ecliptic/internal/civiltime"
	"github.com/papapumpkin/ecliptic/internal/codex"
	"github.com/papapumpkin/ecliptic/internal/ephemeris"
	"github.com/papapumpkin/ecliptic/internal/wheel"
)

// ErrInvariant is returned when a resolved Gene Key has no backing
// reference data. It marks a corrupted static table, never bad user
// input.
var ErrInvariant = errors.New("internal invariant violated")

// Location is the resolved geographic input to a calculation. The core
// treats it as opaque: Source records how a caller resolved the place
// and is carried through untouched, and the coordinates only matter to
// display layers.
type Location struct {
	City      string  `json:"city,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	Source    string  `json:"source,omitempty"`
}

// Degrees is an ecliptic longitude that serializes with exactly four
// decimal places.
type Degrees float64

// MarshalJSON implements json.Marshaler.
func (d Degrees) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(d), 'f', 4, 64)), nil
}

// Result is one complete calculation. It is immutable once returned;
// resolving the same inputs again yields a bit-identical value.
type Result struct {
	UTC       time.Time      `json:"utc"`
	Longitude Degrees        `json:"longitude"`
	Sign      string         `json:"sign"`
	Key       int            `json:"key"`
	Line      int            `json:"line"`
	Segment   wheel.Segment  `json:"segment"`
	Shadow    string         `json:"shadow"`
	Gift      string         `json:"gift"`
	Siddhi    string         `json:"siddhi"`
	Hexagram  codex.Hexagram `json:"hexagram"`
	Partner   int            `json:"partner"`
	Model     string         `json:"model"`
	Location  Location       `json:"location"`
}

// Resolver runs the calculation pipeline with a fixed codex and
// ephemeris model. A Resolver is safe for concurrent use; it holds no
// mutable state.
type Resolver struct {
	codex *codex.Codex
	model ephemeris.Model
}

// New builds a Resolver from a loaded codex and an ephemeris model.
func New(c *codex.Codex, model ephemeris.Model) *Resolver {
	return &Resolver{codex: c, model: model}
}

// Model returns the name of the ephemeris model in use.
func (r *Resolver) Model() string {
	return r.model.Name()
}

// Resolve computes the Gene Key result for a civil birth moment at the
// given location. Input failures surface as *civiltime.InputError
// values wrapping civiltime.ErrInvalidInput; a missing codex record
// surfaces as ErrInvariant.
func (r *Resolver) Resolve(date, timeOfDay string, loc Location) (Result, error) {
	instant, err := civiltime.ToUTC(date, timeOfDay, loc.Timezone)
	if err != nil {
		return Result{}, err
	}

	longitude := r.model.ApparentLongitude(instant)
	segment := wheel.SegmentForLongitude(longitude)

	record, err := r.codex.Record(segment.Key)
	if err != nil {
		return Result{}, fmt.Errorf("%w: segment %d resolved to key %d with no record",
			ErrInvariant, segment.Index, segment.Key)
	}
	partner, err := wheel.PartnerKey(segment.Key)
	if err != nil {
		return Result{}, fmt.Errorf("%w: no partner for key %d", ErrInvariant, segment.Key)
	}

	return Result{
		UTC:       instant,
		Longitude: Degrees(longitude),
		Sign:      wheel.SignForLongitude(longitude),
		Key:       segment.Key,
		Line:      wheel.LineForLongitude(longitude),
		Segment:   segment,
		Shadow:    record.Shadow,
		Gift:      record.Gift,
		Siddhi:    record.Siddhi,
		Hexagram:  record.Hexagram,
		Partner:   partner,
		Model:     r.model.Name(),
		Location:  loc,
	}, nil
}
