package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/papapumpkin/ecliptic/internal/ansi"
	"github.com/papapumpkin/ecliptic/internal/codex"
	"github.com/papapumpkin/ecliptic/internal/daylight"
	"github.com/papapumpkin/ecliptic/internal/profile"
	"github.com/papapumpkin/ecliptic/internal/wheel"
)

type Printer struct{}

func New() *Printer {
	return &Printer{}
}

func (p *Printer) Banner() {
	fmt.Fprintln(os.Stderr, ansi.Bold+ansi.Cyan+"  ╔═══════════════════════════════════╗"+ansi.Reset)
	fmt.Fprintln(os.Stderr, ansi.Bold+ansi.Cyan+"  ║"+ansi.Reset+ansi.Bold+"   ECLIPTIC  "+ansi.Dim+"gene key calculator"+ansi.Reset+ansi.Bold+ansi.Cyan+"   ║"+ansi.Reset)
	fmt.Fprintln(os.Stderr, ansi.Bold+ansi.Cyan+"  ╚═══════════════════════════════════╝"+ansi.Reset)
	fmt.Fprintln(os.Stderr)
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, ansi.Red+ansi.Bold+"error: "+ansi.Reset+"%s\n", msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintf(os.Stderr, ansi.Dim+"%s"+ansi.Reset+"\n", msg)
}

// Result prints one complete calculation as a card.
func (p *Printer) Result(res profile.Result) {
	fmt.Fprintf(os.Stderr, "\n"+ansi.Dim+"┌─ "+ansi.Reset+ansi.Bold+"Gene Key %d"+ansi.Reset+ansi.Dim+" ── line %d ─────────────────"+ansi.Reset+"\n",
		res.Key, res.Line)

	if res.Location.City != "" || res.Location.Country != "" {
		place := res.Location.City
		if res.Location.Country != "" {
			if place != "" {
				place += ", "
			}
			place += res.Location.Country
		}
		fmt.Fprintf(os.Stderr, ansi.Dim+"│"+ansi.Reset+"  location:   %s "+ansi.Dim+"(%s)"+ansi.Reset+"\n", place, res.Location.Timezone)
	}

	fmt.Fprintf(os.Stderr, ansi.Dim+"│"+ansi.Reset+"  utc:        %s\n", res.UTC.Format(time.RFC3339))
	fmt.Fprintf(os.Stderr, ansi.Dim+"│"+ansi.Reset+"  longitude:  %.4f° "+ansi.Dim+"(%s)"+ansi.Reset+"\n", float64(res.Longitude), res.Sign)
	fmt.Fprintf(os.Stderr, ansi.Dim+"│"+ansi.Reset+"  hexagram:   %s %d "+ansi.Dim+"%s"+ansi.Reset+"\n",
		res.Hexagram.Glyph, res.Hexagram.Number, res.Hexagram.Name)
	fmt.Fprintf(os.Stderr, ansi.Dim+"│"+ansi.Reset+"  spectrum:   "+ansi.Red+"%s"+ansi.Reset+" → "+ansi.Green+"%s"+ansi.Reset+" → "+ansi.Cyan+"%s"+ansi.Reset+"\n",
		res.Shadow, res.Gift, res.Siddhi)
	fmt.Fprintf(os.Stderr, ansi.Dim+"│"+ansi.Reset+"  partner:    Gene Key %d\n", res.Partner)
	fmt.Fprintf(os.Stderr, ansi.Dim+"│"+ansi.Reset+"  model:      %s\n", res.Model)
	fmt.Fprintln(os.Stderr, ansi.Dim+"└──────────────────────────────────────────"+ansi.Reset)
}

// Daylight prints the sun times for the resolved day, in local time.
func (p *Printer) Daylight(rep daylight.Report) {
	if rep.Polar {
		fmt.Fprintln(os.Stderr, ansi.Dim+"☀ the sun does not rise or set at this latitude today"+ansi.Reset)
		return
	}
	const layout = "15:04 MST"
	fmt.Fprintf(os.Stderr, ansi.Yellow+"☀ daylight"+ansi.Reset+ansi.Dim+" rise %s · noon %s · set %s"+ansi.Reset+"\n",
		rep.Sunrise.Format(layout), rep.Noon.Format(layout), rep.Sunset.Format(layout))
}

// WheelTable prints all 64 segments in wheel order.
func (p *Printer) WheelTable(c *codex.Codex) {
	fmt.Fprintln(os.Stderr, ansi.Bold+"  idx  arc                     key  spectrum"+ansi.Reset)
	for _, seg := range wheel.All() {
		rec, err := c.Record(seg.Key)
		if err != nil {
			continue
		}
		fmt.Fprintf(os.Stderr, "  %3d  [%8.4f°, %8.4f°)  "+ansi.Cyan+"%3d"+ansi.Reset+"  %s\n",
			seg.Index, seg.Start, seg.End, seg.Key, Spectrum(rec))
	}
}

// KeyDetail prints one key's card: its hexagram, arc, and spectrum.
func (p *Printer) KeyDetail(seg wheel.Segment, rec codex.Record, partner int) {
	fmt.Fprintf(os.Stderr, "\n"+ansi.Dim+"┌─ "+ansi.Reset+ansi.Bold+"Gene Key %d"+ansi.Reset+ansi.Dim+" ── %s ─────────────────"+ansi.Reset+"\n",
		rec.Number, wheel.SignForLongitude(seg.Start))
	fmt.Fprintf(os.Stderr, ansi.Dim+"│"+ansi.Reset+"  hexagram:  %s %d "+ansi.Dim+"%s"+ansi.Reset+"\n",
		rec.Hexagram.Glyph, rec.Hexagram.Number, rec.Hexagram.Name)
	fmt.Fprintf(os.Stderr, ansi.Dim+"│"+ansi.Reset+"  arc:       [%.4f°, %.4f°)\n", seg.Start, seg.End)
	fmt.Fprintf(os.Stderr, ansi.Dim+"│"+ansi.Reset+"  shadow:    "+ansi.Red+"%s"+ansi.Reset+"\n", rec.Shadow)
	fmt.Fprintf(os.Stderr, ansi.Dim+"│"+ansi.Reset+"  gift:      "+ansi.Green+"%s"+ansi.Reset+"\n", rec.Gift)
	fmt.Fprintf(os.Stderr, ansi.Dim+"│"+ansi.Reset+"  siddhi:    "+ansi.Cyan+"%s"+ansi.Reset+"\n", rec.Siddhi)
	fmt.Fprintf(os.Stderr, ansi.Dim+"│"+ansi.Reset+"  partner:   Gene Key %d\n", partner)
	fmt.Fprintln(os.Stderr, ansi.Dim+"└──────────────────────────────────────────"+ansi.Reset)
}

func (p *Printer) ValidateResult(date, timeOfDay string, err error) {
	if err == nil {
		fmt.Fprintf(os.Stderr, ansi.Green+ansi.Bold+"✓ valid"+ansi.Reset+" %s %s\n", date, timeOfDay)
		return
	}
	fmt.Fprintf(os.Stderr, ansi.Red+ansi.Bold+"✗ invalid"+ansi.Reset+" %s %s\n", date, timeOfDay)
	fmt.Fprintf(os.Stderr, "  "+ansi.Red+"• "+ansi.Reset+"%s\n", err.Error())
}

func (p *Printer) BatchSummary(rows, ok, failed int) {
	if failed == 0 {
		fmt.Fprintf(os.Stderr, ansi.Green+ansi.Bold+"✓ batch complete"+ansi.Reset+" — %d row(s), all resolved\n", rows)
		return
	}
	fmt.Fprintf(os.Stderr, ansi.Yellow+ansi.Bold+"⚠ batch complete"+ansi.Reset+" — %d row(s): %d ok, %d failed\n", rows, ok, failed)
}

func (p *Printer) WatchStarted(dir string) {
	fmt.Fprintf(os.Stderr, ansi.Cyan+"◆ watching"+ansi.Reset+" %s "+ansi.Dim+"for *.jsonl drops, ctrl-c to stop"+ansi.Reset+"\n", dir)
}

func (p *Printer) FileDetected(path string) {
	fmt.Fprintf(os.Stderr, ansi.Cyan+"◆ batch file"+ansi.Reset+" %s\n", path)
}

// Spectrum formats a record's shadow, gift, and siddhi as one arc.
// Exported for reuse by the terminal explorer.
func Spectrum(rec codex.Record) string {
	return fmt.Sprintf("%s → %s → %s", rec.Shadow, rec.Gift, rec.Siddhi)
}
