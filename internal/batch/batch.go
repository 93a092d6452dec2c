// Package batch resolves many birth rows in one pass. Input is JSONL,
// one request object per line; output is JSONL, one row per request,
// carrying either the result or the error that rejected it. Malformed
// rows never abort a run. A watcher variant monitors a drop directory
// and feeds files through the same runner as they appear.
package batch

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/papapumpkin/ecliptic/internal/profile"
	"github.com/papapumpkin/ecliptic/internal/telemetry"
)

// Request is one input row: the birth data plus the resolved location.
type Request struct {
	Date     string           `json:"date"`
	Time     string           `json:"time"`
	Location profile.Location `json:"location"`
}

// Row is one output row. Row numbers are 1-based ordinals over the
// non-empty input lines. Exactly one of Result and Error is set.
type Row struct {
	Row    int             `json:"row"`
	Result *profile.Result `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// Summary counts the outcomes of one run.
type Summary struct {
	Rows   int `json:"rows"`
	OK     int `json:"ok"`
	Failed int `json:"failed"`
}

// Runner feeds batch requests through a resolver. The telemetry
// emitter may be nil.
type Runner struct {
	resolver *profile.Resolver
	emitter  *telemetry.Emitter
}

// NewRunner builds a Runner around a resolver and an optional emitter.
func NewRunner(resolver *profile.Resolver, emitter *telemetry.Emitter) *Runner {
	return &Runner{resolver: resolver, emitter: emitter}
}

// Run reads JSONL requests from in and writes one JSONL row per
// request to out, preserving input order. source names the input in
// telemetry events. The returned error reports I/O failure only;
// per-row failures are recorded in their rows and counted in the
// summary.
func (r *Runner) Run(in io.Reader, out io.Writer, source string) (Summary, error) {
	_ = r.emitter.Emit(telemetry.Event{Timestamp: time.Now().UTC(), Kind: telemetry.KindBatchStart, Source: source})

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	enc := json.NewEncoder(out)

	var summary Summary
	for scanner.Scan() {
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		summary.Rows++
		row := Row{Row: summary.Rows}

		var req Request
		if err := json.Unmarshal(raw, &req); err != nil {
			row.Error = fmt.Sprintf("malformed request: %v", err)
		} else if result, err := r.resolver.Resolve(req.Date, req.Time, req.Location); err != nil {
			row.Error = err.Error()
		} else {
			row.Result = &result
		}

		if row.Error != "" {
			summary.Failed++
		} else {
			summary.OK++
		}
		if err := enc.Encode(row); err != nil {
			return summary, fmt.Errorf("writing row %d: %w", row.Row, err)
		}
		_ = r.emitter.Emit(telemetry.Event{Timestamp: time.Now().UTC(), Kind: telemetry.KindBatchRow, Source: source, Data: rowData(row)})
	}
	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("reading batch input: %w", err)
	}

	_ = r.emitter.Emit(telemetry.Event{Timestamp: time.Now().UTC(), Kind: telemetry.KindBatchDone, Source: source, Data: summary})
	return summary, nil
}

// RunFile runs one batch file, writing rows to out.
func (r *Runner) RunFile(path string, out io.Writer) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("opening batch file: %w", err)
	}
	defer f.Close()
	return r.Run(f, out, path)
}

// rowData trims a row to the fields worth recording per event.
func rowData(row Row) map[string]any {
	data := map[string]any{"row": row.Row}
	if row.Error != "" {
		data["error"] = row.Error
		return data
	}
	data["key"] = row.Result.Key
	return data
}
