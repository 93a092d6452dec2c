package cmd

import (
	"encoding/json"
	"io"

	"github.com/papapumpkin/ecliptic/internal/codex"
	"github.com/papapumpkin/ecliptic/internal/daylight"
	"github.com/papapumpkin/ecliptic/internal/profile"
	"github.com/papapumpkin/ecliptic/internal/wheel"
)

// resultJSON is the resolve output envelope: the calculation plus an
// optional daylight report.
type resultJSON struct {
	profile.Result
	Daylight *daylight.Report `json:"daylight,omitempty"`
}

func writeResultJSON(w io.Writer, res profile.Result, rep *daylight.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resultJSON{Result: res, Daylight: rep})
}

// wheelRowJSON is one wheel segment with its spectrum labels.
type wheelRowJSON struct {
	Segment wheel.Segment `json:"segment"`
	Shadow  string        `json:"shadow"`
	Gift    string        `json:"gift"`
	Siddhi  string        `json:"siddhi"`
}

func writeWheelJSON(w io.Writer, c *codex.Codex) error {
	rows := make([]wheelRowJSON, 0, wheel.Segments)
	for _, seg := range wheel.All() {
		rec, err := c.Record(seg.Key)
		if err != nil {
			return err
		}
		rows = append(rows, wheelRowJSON{Segment: seg, Shadow: rec.Shadow, Gift: rec.Gift, Siddhi: rec.Siddhi})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// keyJSON is one Gene Key with its wheel placement.
type keyJSON struct {
	Key      int            `json:"key"`
	Segment  wheel.Segment  `json:"segment"`
	Shadow   string         `json:"shadow"`
	Gift     string         `json:"gift"`
	Siddhi   string         `json:"siddhi"`
	Hexagram codex.Hexagram `json:"hexagram"`
	Partner  int            `json:"partner"`
}

func writeKeyJSON(w io.Writer, seg wheel.Segment, rec codex.Record, partner int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(keyJSON{
		Key:      rec.Number,
		Segment:  seg,
		Shadow:   rec.Shadow,
		Gift:     rec.Gift,
		Siddhi:   rec.Siddhi,
		Hexagram: rec.Hexagram,
		Partner:  partner,
	})
}
