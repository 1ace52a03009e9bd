// Command analytic builds a windowed FIR Hilbert kernel, applies it in the
// frequency domain to a test sine and prints the resulting analytic signal.
//
// Usage:
//
//	analytic [flags]
//
// Each output line is "index re im". With -summary a table of kernel and
// envelope measurements is printed instead.
//
// Examples:
//
//	analytic
//	analytic -size 4096 -freq 10
//	analytic -taps 255 -backend gonum -summary
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-analytic/dsp/core"
	"github.com/cwbudde/algo-analytic/dsp/filter/hilbert"
	"github.com/cwbudde/algo-analytic/dsp/fourier"
	"github.com/cwbudde/algo-analytic/dsp/signal"
	"github.com/cwbudde/algo-analytic/dsp/spectrum"
	"github.com/cwbudde/algo-analytic/dsp/window"
	timestats "github.com/cwbudde/algo-analytic/stats/time"
	"gonum.org/v1/gonum/stat"
)

// guardBins excludes the bins around DC and Nyquist from band measurements.
const guardBins = 8

type options struct {
	size    int
	freq    float64
	taps    int
	backend string
	summary bool
	verbose bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options

	fs := flag.NewFlagSet("analytic", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.size, "size", 1024, "transform size in samples")
	fs.Float64Var(&opts.freq, "freq", 3, "test sine frequency in cycles per transform")
	fs.IntVar(&opts.taps, "taps", 0, "kernel length, odd (0 = largest odd length that fits)")
	fs.StringVar(&opts.backend, "backend", fourier.BackendAlgoFFT.String(),
		"transform backend: "+backendList())
	fs.BoolVar(&opts.summary, "summary", false, "print kernel and envelope measurements instead of samples")
	fs.BoolVar(&opts.verbose, "v", false, "log processing steps to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: analytic [flags]\n\n")
		fmt.Fprintf(stderr, "Prints the analytic signal of a test sine, one \"index re im\" line per sample.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := execute(opts, stdout, logger); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

func execute(opts options, stdout io.Writer, logger *slog.Logger) error {
	backend, err := fourier.ParseBackend(opts.backend)
	if err != nil {
		return err
	}

	tr, err := fourier.New(backend, opts.size)
	if err != nil {
		return err
	}

	taps := opts.taps
	if taps == 0 {
		taps = hilbert.DefaultTaps(opts.size)
	}

	f, err := hilbert.NewFilter(tr, taps)
	if err != nil {
		return err
	}
	logger.Info("kernel built",
		"backend", backend.String(),
		"size", f.Kernel().Size(),
		"taps", f.Kernel().Taps(),
		"delay", f.Kernel().Delay())

	gen := signal.NewGenerator(core.WithTransformSize(opts.size))
	x, err := gen.Tone(opts.freq)
	if err != nil {
		return err
	}
	logger.Debug("test signal generated", "cycles", opts.freq, "samples", len(x))

	y, err := f.ProcessReal(x)
	if err != nil {
		return err
	}
	logger.Info("signal filtered", "samples", len(y))

	if opts.summary {
		return writeSummary(stdout, backend, f.Kernel(), y, logger)
	}

	return writeSamples(stdout, y)
}

func writeSamples(w io.Writer, y []complex64) error {
	bw := bufio.NewWriter(w)
	for i, v := range y {
		if _, err := fmt.Fprintf(bw, "%d %g %g\n", i, real(v), imag(v)); err != nil {
			return fmt.Errorf("write sample %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func writeSummary(w io.Writer, backend fourier.Backend, k *hilbert.Kernel, y []complex64, logger *slog.Logger) error {
	// Small transforms leave no room for a guard band; those rows read n/a.
	rejection, rejectionBin, groupDelay := "n/a", "n/a", "n/a"
	if rej, err := k.Suppression(guardBins); err == nil {
		rejection = fmt.Sprintf("%.2f", rej.DB)
		rejectionBin = fmt.Sprintf("%d", rej.NegativeBin)
	} else {
		logger.Warn("rejection not measured", "err", err)
	}
	if delay, err := measuredDelay(k); err == nil {
		groupDelay = fmt.Sprintf("%.2f", delay)
	} else {
		logger.Warn("group delay not measured", "err", err)
	}

	taper := window.Info(window.TypeHammingOptimal)
	env := timestats.Calculate(hilbert.Envelope(y))
	freq := stat.Mean(hilbert.InstantaneousFrequency(y), nil)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		name  string
		value string
	}{
		{"backend", backend.String()},
		{"size", fmt.Sprintf("%d", k.Size())},
		{"taps", fmt.Sprintf("%d", k.Taps())},
		{"delay", fmt.Sprintf("%d", k.Delay())},
		{"taper", taper.Name},
		{"taper_enbw", fmt.Sprintf("%.2f", taper.ENBW)},
		{"group_delay", groupDelay},
		{"rejection_db", rejection},
		{"rejection_bin", rejectionBin},
		{"envelope_mean", fmt.Sprintf("%.6f", env.Mean)},
		{"envelope_min", fmt.Sprintf("%.6f", env.Min)},
		{"envelope_max", fmt.Sprintf("%.6f", env.Max)},
		{"envelope_variation", fmt.Sprintf("%.2e", env.Variation)},
		{"frequency", fmt.Sprintf("%.6f", freq)},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r.name, r.value); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

// measuredDelay averages the group delay of the kernel response over the
// positive band.
func measuredDelay(k *hilbert.Kernel) (float64, error) {
	half := k.Size() / 2
	if half-guardBins <= guardBins {
		return 0, fmt.Errorf("transform size %d too small for group delay", k.Size())
	}

	band := k.Response()[guardBins : half-guardBins+1]
	gd, err := spectrum.GroupDelayFromPhase(spectrum.UnwrapPhase(spectrum.Phase32(band)), k.Size())
	if err != nil {
		return 0, err
	}
	return stat.Mean(gd, nil), nil
}

func backendList() string {
	names := make([]string, 0, len(fourier.Backends()))
	for _, b := range fourier.Backends() {
		names = append(names, b.String())
	}
	return strings.Join(names, ", ")
}
