// Command firinfo designs a windowed-sinc FIR filter and prints its
// taps and sampled frequency response.
//
// Usage:
//
//	firinfo [flags]
//
// Examples:
//
//	firinfo -kind lp -cutoff 0.5
//	firinfo -kind bp -cutoff 0.2 -cutoff2 0.6 -length 63
//	firinfo -kind hp -window kaiser -beta 8.6 -length 31
//	firinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/filter/fir"
	"github.com/cwbudde/algo-filter/dsp/spectrum"
	"github.com/cwbudde/algo-filter/dsp/window"
)

// Display floor for the response table; deep stopband nulls would
// otherwise print as -Inf.
const floorDB = -140.0

var kinds = map[string]fir.Kind{
	"lp": fir.Lowpass,
	"hp": fir.Highpass,
	"bp": fir.Bandpass,
	"bs": fir.Bandstop,
}

var windows = map[string]window.Kind{
	"boxcar":     window.KindBoxcar,
	"triangular": window.KindTriangular,
	"hamming":    window.KindHamming,
	"hanning":    window.KindHanning,
	"blackman":   window.KindBlackman,
	"flattop":    window.KindFlatTop,
	"kaiser":     window.KindKaiser,
}

func main() {
	kindName := flag.String("kind", "lp", "filter kind: lp, hp, bp or bs")
	winName := flag.String("window", "hamming", "window function (use -list to see available)")
	length := flag.Int("length", 31, "number of taps")
	cutoff := flag.Float64("cutoff", 0.5, "cutoff frequency, 1 = Nyquist")
	cutoff2 := flag.Float64("cutoff2", 0, "upper cutoff for bp/bs filters")
	beta := flag.Float64("beta", 8.6, "Kaiser shape parameter")
	fftSize := flag.Int("fft", 128, "FFT size for the response table (power of two)")
	showTaps := flag.Bool("taps", false, "print the designed taps")
	list := flag.Bool("list", false, "list available filter kinds and windows")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: firinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Designs a windowed-sinc FIR filter and prints its response.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  firinfo -kind lp -cutoff 0.5\n")
		fmt.Fprintf(os.Stderr, "  firinfo -kind bp -cutoff 0.2 -cutoff2 0.6 -length 63\n")
		fmt.Fprintf(os.Stderr, "  firinfo -kind hp -window kaiser -beta 8.6 -length 31\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	kind, ok := kinds[strings.ToLower(*kindName)]
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown filter kind %q (use -list)\n", *kindName)
		os.Exit(1)
	}
	win, ok := windows[strings.ToLower(*winName)]
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown window %q (use -list)\n", *winName)
		os.Exit(1)
	}

	taps, err := fir.Design(fir.Spec{
		Kind:       kind,
		Window:     win,
		Length:     *length,
		Cutoff:     *cutoff,
		CutoffHigh: *cutoff2,
		Beta:       *beta,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s %s, %d taps, cutoff %g", kind, win, *length, *cutoff)
	if kind == fir.Bandpass || kind == fir.Bandstop {
		fmt.Printf("..%g", *cutoff2)
	}
	fmt.Println()

	if *showTaps {
		printTaps(taps)
	}

	if err := printResponse(taps, *fftSize); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList() {
	names := make([]string, 0, len(kinds))
	for n := range kinds {
		names = append(names, n)
	}
	sort.Strings(names)
	fmt.Println("kinds:", strings.Join(names, " "))

	names = names[:0]
	for n := range windows {
		names = append(names, n)
	}
	sort.Strings(names)
	fmt.Println("windows:", strings.Join(names, " "))
}

func printTaps(taps []float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i, t := range taps {
		fmt.Fprintf(tw, "h[%d]\t%+.12f\t\n", i, t)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printResponse(taps []float64, fftSize int) error {
	db, err := spectrum.MagnitudeDBFromTaps(taps, fftSize)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Freq\tMagnitude [dB]\n")
	fmt.Fprintf(tw, "----\t--------------\n")
	for i, v := range db {
		// Frequency normalized so 1 = Nyquist, matching the cutoff flags.
		f := 2 * float64(i) / float64(fftSize)
		fmt.Fprintf(tw, "%.4f\t%.2f\n", f, core.Clamp(v, floorDB, -floorDB))
	}

	return tw.Flush()
}
