// slots пересчитывает доступные слоты по JSON снимку агенды без обращения к базе
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/availability"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/types"
)

func main() {
	snapshotPath := flag.String("snapshot", "", "path to JSON snapshot (- for stdin)")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	if *snapshotPath == "" {
		fmt.Fprintln(os.Stderr, "usage: slots -snapshot snapshot.json")
		os.Exit(2)
	}
	if *noColor {
		color.NoColor = true
	}

	if err := run(*snapshotPath, os.Stdin, color.Output); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, stdin io.Reader, out io.Writer) error {
	in := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	snapshot, err := ReadSnapshot(in)
	if err != nil {
		return err
	}

	req, err := snapshot.ToRequest()
	if err != nil {
		return err
	}

	slots, err := availability.GenerateSlots(req)
	if err != nil {
		return err
	}

	return render(out, snapshot, req, slots)
}

func render(out io.Writer, snapshot *Snapshot, req availability.Request, slots []types.TimeString) error {
	header := color.New(color.Bold)
	muted := color.New(color.FgHiBlack)
	busy := color.New(color.FgYellow)
	free := color.New(color.FgGreen)

	header.Fprintf(out, "%s  duration=%dmin\n", snapshot.Date, snapshot.DurationMinutes)

	window, working := availability.ResolveWorkingDay(req.Profile, req.Date)
	if !working {
		muted.Fprintln(out, "non-working day")
		return nil
	}
	muted.Fprintf(out, "working window %s\n", formatInterval(window.Start, window.End))

	scanner, err := availability.NewScanner(req.Date, req.Appointments, req.Blocks, req.DurationMinutes)
	if err != nil {
		return err
	}
	for _, c := range scanner.Commitments() {
		busy.Fprintf(out, "  busy %s  %s #%d\n", formatInterval(c.Start, c.End), c.Origin, c.SourceID)
	}

	if len(slots) == 0 {
		muted.Fprintln(out, "no available slots")
		return nil
	}

	labels := make([]string, 0, len(slots))
	for _, s := range slots {
		labels = append(labels, s.String())
	}
	free.Fprintf(out, "%d slots: %s\n", len(slots), strings.Join(labels, " "))
	return nil
}

func formatInterval(start, end int) string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", start/60, start%60, end/60, end%60)
}
