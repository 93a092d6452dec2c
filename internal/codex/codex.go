// Package codex holds the symbolic reference data for the 64 Gene
// Keys: the Shadow/Gift/Siddhi spectrum and the I-Ching hexagram each
// key is bound to. The data ships embedded in the binary and is
// read-only after Load; a malformed table is a defect and fails the
// load rather than degrading silently.
package codex

import (
	_ "embed"
	"errors"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
)

//go:embed spectrum.toml
var spectrumTOML []byte

// ErrRecordNotFound is returned when a Gene Key number has no record.
var ErrRecordNotFound = errors.New("gene key record not found")

// Records is the number of Gene Key records in the codex.
const Records = 64

// Hexagram is the I-Ching identity bound to a Gene Key. The King Wen
// number equals the Gene Key number. Lines holds the six-line pattern
// bottom line first, '1' for yang and '0' for yin; Glyph is the
// corresponding Unicode hexagram symbol.
type Hexagram struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
	Lines  string `json:"lines"`
	Glyph  string `json:"glyph"`
}

// Record is the symbolic payload of one Gene Key.
type Record struct {
	Number   int      `json:"number"`
	Shadow   string   `json:"shadow"`
	Gift     string   `json:"gift"`
	Siddhi   string   `json:"siddhi"`
	Hexagram Hexagram `json:"hexagram"`
}

// Codex is the loaded read-only table of all 64 records.
type Codex struct {
	records map[int]Record
}

// spectrumFile mirrors the embedded TOML document.
type spectrumFile struct {
	Keys []struct {
		Number   int    `toml:"number"`
		Shadow   string `toml:"shadow"`
		Gift     string `toml:"gift"`
		Siddhi   string `toml:"siddhi"`
		Hexagram string `toml:"hexagram"`
		Lines    string `toml:"lines"`
	} `toml:"keys"`
}

// Load parses and validates the embedded spectrum table.
func Load() (*Codex, error) {
	var file spectrumFile
	if err := toml.Unmarshal(spectrumTOML, &file); err != nil {
		return nil, fmt.Errorf("parsing spectrum.toml: %w", err)
	}
	if len(file.Keys) != Records {
		return nil, fmt.Errorf("spectrum.toml holds %d records, want %d", len(file.Keys), Records)
	}

	records := make(map[int]Record, Records)
	for _, key := range file.Keys {
		if key.Number < 1 || key.Number > Records {
			return nil, fmt.Errorf("spectrum.toml: key number %d is outside 1..%d", key.Number, Records)
		}
		if _, dup := records[key.Number]; dup {
			return nil, fmt.Errorf("spectrum.toml: duplicate record for key %d", key.Number)
		}
		if key.Shadow == "" || key.Gift == "" || key.Siddhi == "" {
			return nil, fmt.Errorf("spectrum.toml: key %d has an empty spectrum label", key.Number)
		}
		if key.Hexagram == "" {
			return nil, fmt.Errorf("spectrum.toml: key %d has no hexagram name", key.Number)
		}
		if err := checkLines(key.Lines); err != nil {
			return nil, fmt.Errorf("spectrum.toml: key %d: %w", key.Number, err)
		}
		records[key.Number] = Record{
			Number: key.Number,
			Shadow: key.Shadow,
			Gift:   key.Gift,
			Siddhi: key.Siddhi,
			Hexagram: Hexagram{
				Number: key.Number,
				Name:   key.Hexagram,
				Lines:  key.Lines,
				Glyph:  glyph(key.Number),
			},
		}
	}
	return &Codex{records: records}, nil
}

// Record returns the record for the given Gene Key number, or
// ErrRecordNotFound if the number is outside the table.
func (c *Codex) Record(number int) (Record, error) {
	record, ok := c.records[number]
	if !ok {
		return Record{}, fmt.Errorf("%w: %d", ErrRecordNotFound, number)
	}
	return record, nil
}

// glyph returns the Unicode hexagram symbol for a King Wen number. The
// symbols occupy a contiguous block starting at U+4DC0 in King Wen
// order.
func glyph(number int) string {
	return string(rune(0x4DC0 + number - 1))
}

// checkLines validates a six-line hexagram pattern.
func checkLines(lines string) error {
	if len(lines) != 6 {
		return fmt.Errorf("line pattern %q has %d places, want 6", lines, len(lines))
	}
	for i := 0; i < len(lines); i++ {
		if lines[i] != '0' && lines[i] != '1' {
			return fmt.Errorf("line pattern %q contains %q, want only '0' and '1'", lines, lines[i])
		}
	}
	return nil
}
