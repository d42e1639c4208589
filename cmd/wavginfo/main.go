// Command wavginfo inspects weighted moving-average filters and optionally
// runs one over a sample stream.
//
// Usage:
//
//	wavginfo [flags] w0,w1,...
//
// The weight list is ordered most-recent-first: w0 applies to the current
// sample, wk to the sample from k steps ago.
//
// Examples:
//
//	wavginfo 0.5,0.3,0.2
//	wavginfo -response 8 -rate 48000 0.25,0.5,0.25
//	wavginfo -preset triangular -taps 5
//	echo "1 2 3 4" | wavginfo -filter 0.5,0.3,0.2
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/cmplx"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-wavg"
	"github.com/cwbudde/algo-wavg/weights"
)

func main() {
	rate := flag.Float64("rate", 48000, "sample rate in Hz for response tables")
	response := flag.Int("response", 0, "print an n-point magnitude response table")
	filterMode := flag.Bool("filter", false, "read samples from stdin and print filtered outputs")
	avg := flag.Bool("avg", false, "divide outputs by the tap count (weighted average)")
	preset := flag.String("preset", "", "generate weights instead of parsing them: uniform, average, triangular, exponential")
	taps := flag.Int("taps", 5, "tap count for -preset")
	decay := flag.Float64("decay", 0.5, "decay for -preset exponential")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wavginfo [flags] w0,w1,...\n\n")
		fmt.Fprintf(os.Stderr, "Prints properties of a weighted moving-average filter.\n")
		fmt.Fprintf(os.Stderr, "With -filter, streams stdin samples through it instead.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wavginfo 0.5,0.3,0.2\n")
		fmt.Fprintf(os.Stderr, "  wavginfo -response 8 0.25,0.5,0.25\n")
		fmt.Fprintf(os.Stderr, "  wavginfo -preset triangular -taps 5\n")
		fmt.Fprintf(os.Stderr, "  echo \"1 2 3 4\" | wavginfo -filter 0.5,0.3,0.2\n")
	}
	flag.Parse()

	w, err := resolveWeights(*preset, *taps, *decay, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	f, err := wavg.New(w)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *filterMode {
		if err := runFilter(f, *avg); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printInfo(f, w, *rate)
	if *response > 0 {
		printResponse(f, *response, *rate)
	}
}

func resolveWeights(preset string, taps int, decay float64, args []string) ([]float64, error) {
	if preset != "" {
		var w []float64
		switch strings.ToLower(preset) {
		case "uniform":
			w = weights.Uniform(taps)
		case "average":
			w = weights.MovingAverage(taps)
		case "triangular":
			w = weights.Triangular(taps)
		case "exponential":
			w = weights.Exponential(taps, decay)
		default:
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		if w == nil {
			return nil, fmt.Errorf("invalid parameters for preset %q", preset)
		}
		return w, nil
	}

	if len(args) != 1 {
		return nil, fmt.Errorf("expected one comma-separated weight list, got %d arguments", len(args))
	}

	parts := strings.Split(args[0], ",")
	w := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad weight %q: %v", p, err)
		}
		w = append(w, v)
	}
	return w, nil
}

func runFilter(f *wavg.Filter, avg bool) error {
	scale := 1.0
	if avg {
		scale = 1 / float64(f.Order()+1)
	}

	sc := bufio.NewScanner(os.Stdin)
	sc.Split(bufio.ScanWords)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for sc.Scan() {
		x, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return fmt.Errorf("bad sample %q: %v", sc.Text(), err)
		}
		if _, err := fmt.Fprintf(out, "%g\n", f.Process(x)*scale); err != nil {
			return err
		}
	}
	return sc.Err()
}

func printInfo(f *wavg.Filter, w []float64, rate float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Taps\tOrder\tDC Gain\tDC Gain [dB]\tNyquist [dB]\n")
	fmt.Fprintf(tw, "----\t-----\t-------\t------------\t------------\n")
	fmt.Fprintf(tw, "%d\t%d\t%.6f\t%.2f\t%.2f\n",
		len(w),
		f.Order(),
		weights.DCGain(w),
		f.MagnitudeDB(0, rate),
		f.MagnitudeDB(rate/2, rate),
	)
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printResponse(f *wavg.Filter, points int, rate float64) {
	fmt.Println()
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Freq [Hz]\tMagnitude\tMagnitude [dB]\n")
	fmt.Fprintf(tw, "---------\t---------\t--------------\n")
	for i := range points {
		freq := 0.0
		if points > 1 {
			freq = rate / 2 * float64(i) / float64(points-1)
		}
		h := f.Response(freq, rate)
		fmt.Fprintf(tw, "%.1f\t%.6f\t%.2f\n", freq, cmplx.Abs(h), f.MagnitudeDB(freq, rate))
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
