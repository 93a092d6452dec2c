package profile

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/papapumpkin/ecliptic/internal/civiltime"
	"github.com/papapumpkin/ecliptic/internal/codex"
	"github.com/papapumpkin/ecliptic/internal/ephemeris"
)

func newResolver(t *testing.T, modelName string) *Resolver {
	t.Helper()
	c, err := codex.Load()
	if err != nil {
		t.Fatalf("codex.Load: %v", err)
	}
	model, err := ephemeris.New(modelName)
	if err != nil {
		t.Fatalf("ephemeris.New(%q): %v", modelName, err)
	}
	return New(c, model)
}

func utcLocation() Location {
	return Location{Timezone: "UTC", Source: "test"}
}

func TestResolveJ2000(t *testing.T) {
	t.Parallel()

	res, err := newResolver(t, ephemeris.ModelMeeus).Resolve("2000-01-01", "12:00", utcLocation())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if got := res.UTC.Format("2006-01-02T15:04:05Z07:00"); got != "2000-01-01T12:00:00Z" {
		t.Errorf("UTC = %s, want 2000-01-01T12:00:00Z", got)
	}
	if math.Abs(float64(res.Longitude)-280.37) > 0.05 {
		t.Errorf("Longitude = %v, want near 280.37", res.Longitude)
	}
	if res.Sign != "Capricorn" {
		t.Errorf("Sign = %q, want Capricorn", res.Sign)
	}
	if res.Key != 43 {
		t.Errorf("Key = %d, want 43", res.Key)
	}
	if res.Line != 6 {
		t.Errorf("Line = %d, want 6", res.Line)
	}
	if res.Shadow != "Deafness" || res.Gift != "Insight" || res.Siddhi != "Epiphany" {
		t.Errorf("spectrum = %s/%s/%s, want Deafness/Insight/Epiphany", res.Shadow, res.Gift, res.Siddhi)
	}
	if res.Hexagram.Name != "Breakthrough" {
		t.Errorf("Hexagram.Name = %q, want Breakthrough", res.Hexagram.Name)
	}
	if res.Partner != 23 {
		t.Errorf("Partner = %d, want 23", res.Partner)
	}
	if res.Model != "meeus" {
		t.Errorf("Model = %q, want meeus", res.Model)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	t.Parallel()

	r := newResolver(t, ephemeris.ModelMeeus)
	loc := Location{City: "Berlin", Country: "Germany", Latitude: 52.52, Longitude: 13.405, Timezone: "Europe/Berlin", Source: "geocoder"}

	first, err := r.Resolve("1987-04-11", "06:15", loc)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	second, err := r.Resolve("1987-04-11", "06:15", loc)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeat resolution differs:\n%+v\n%+v", first, second)
	}
}

func TestResolveIgnoresCoordinates(t *testing.T) {
	t.Parallel()

	r := newResolver(t, ephemeris.ModelMeeus)
	inTokyo := Location{City: "Tokyo", Latitude: 35.68, Longitude: 139.69, Timezone: "Asia/Tokyo"}
	atSea := Location{City: "Offshore", Latitude: -40.0, Longitude: -170.0, Timezone: "Asia/Tokyo"}

	a, err := r.Resolve("1999-12-31", "23:45", inTokyo)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	b, err := r.Resolve("1999-12-31", "23:45", atSea)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if a.Longitude != b.Longitude || a.Sign != b.Sign || a.Key != b.Key || a.Line != b.Line {
		t.Errorf("coordinates leaked into the calculation:\n%+v\n%+v", a, b)
	}
	if !a.UTC.Equal(b.UTC) {
		t.Errorf("UTC differs: %s vs %s", a.UTC, b.UTC)
	}
}

// The two ephemeris models disagree across the 0-degree boundary near
// the 2000 vernal equinox, flipping the resolved key between the wheel
// ends. The model name in the result is what keeps such outputs
// interpretable.
func TestResolveModelDisagreementAtBoundary(t *testing.T) {
	t.Parallel()

	meeus, err := newResolver(t, ephemeris.ModelMeeus).Resolve("2000-03-20", "07:30", utcLocation())
	if err != nil {
		t.Fatalf("Resolve meeus: %v", err)
	}
	almanac, err := newResolver(t, ephemeris.ModelAlmanac).Resolve("2000-03-20", "07:30", utcLocation())
	if err != nil {
		t.Fatalf("Resolve almanac: %v", err)
	}

	if meeus.Key != 19 {
		t.Errorf("meeus key = %d, want 19 (segment 63)", meeus.Key)
	}
	if almanac.Key != 13 {
		t.Errorf("almanac key = %d, want 13 (segment 0)", almanac.Key)
	}
	if meeus.Model == almanac.Model {
		t.Error("results do not distinguish their models")
	}
}

func TestResolvePropagatesInputErrors(t *testing.T) {
	t.Parallel()

	r := newResolver(t, ephemeris.ModelMeeus)
	tests := []struct {
		name      string
		date      string
		tod       string
		loc       Location
		wantField civiltime.Field
	}{
		{"invalid day", "2023-02-30", "12:00", utcLocation(), civiltime.FieldDate},
		{"invalid hour", "2023-02-10", "24:30", utcLocation(), civiltime.FieldTime},
		{"unknown zone", "2023-02-10", "12:00", Location{Timezone: "Nowhere/Here"}, civiltime.FieldZone},
		{"empty zone", "2023-02-10", "12:00", Location{}, civiltime.FieldZone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := r.Resolve(tt.date, tt.tod, tt.loc)
			if !errors.Is(err, civiltime.ErrInvalidInput) {
				t.Fatalf("Resolve error = %v, want ErrInvalidInput", err)
			}
			var ierr *civiltime.InputError
			if !errors.As(err, &ierr) {
				t.Fatalf("error %v is not an *InputError", err)
			}
			if ierr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", ierr.Field, tt.wantField)
			}
		})
	}
}

func TestResultJSONShape(t *testing.T) {
	t.Parallel()

	res, err := newResolver(t, ephemeris.ModelMeeus).Resolve("2000-01-01", "12:00", utcLocation())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	body := string(data)

	if !strings.Contains(body, `"utc":"2000-01-01T12:00:00Z"`) {
		t.Errorf("JSON missing ISO-8601 UTC instant: %s", body)
	}
	if !strings.Contains(body, `"longitude":280.3726`) {
		t.Errorf("JSON longitude not serialized to four decimals: %s", body)
	}
	if !strings.Contains(body, `"sign":"Capricorn"`) || !strings.Contains(body, `"key":43`) {
		t.Errorf("JSON missing sign or key: %s", body)
	}
	if !strings.Contains(body, "\"glyph\":\"䷪\"") {
		t.Errorf("JSON missing hexagram glyph: %s", body)
	}
}

func TestDegreesMarshalsFourDecimals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   Degrees
		want string
	}{
		{280.372551234, "280.3726"},
		{0, "0.0000"},
		{359.99999, "360.0000"},
		{5.625, "5.6250"},
	}
	for _, tt := range tests {
		data, err := json.Marshal(tt.in)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", tt.in, err)
		}
		if string(data) != tt.want {
			t.Errorf("Marshal(%v) = %s, want %s", tt.in, data, tt.want)
		}
	}
}
