package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/lytics/minhash"
)

// result is what a command found. TrueValue is zero when the exact count is unknown.
type result struct {
	Command   string          `json:"command"`
	Elements  uint64          `json:"elements"`
	Mean      float64         `json:"estimate_mean"`
	Median    float64         `json:"estimate_median"`
	TrueValue uint64          `json:"true_value,omitempty"`
	Elapsed   time.Duration   `json:"elapsed_ns"`
	Sketch    *minhash.Sketch `json:"sketch"`
}

func newResult(command string, sketch *minhash.Sketch, elements uint64, elapsed time.Duration) *result {
	return &result{
		Command:  command,
		Elements: elements,
		Mean:     sketch.EstimateMean(),
		Median:   sketch.EstimateMedian(),
		Elapsed:  elapsed,
		Sketch:   sketch,
	}
}

func (a *app) report(w io.Writer, r *result) error {
	a.meter.SetEstimate(r.Command, "mean", r.Mean)
	a.meter.SetEstimate(r.Command, "median", r.Median)

	if a.jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	// Estimates are printed as whole numbers, the sketch itself keeps the fractions.
	_, err := fmt.Fprintf(w, "Elements in the stream: %s (%s)\n\n"+
		"The first estimate (average) is %d\n"+
		"The second estimate (median) is %d\n",
		humanize.Comma(int64(r.Elements)), r.Elapsed.Round(time.Millisecond), truncate(r.Mean), truncate(r.Median))
	if err != nil {
		return err
	}
	if r.TrueValue > 0 {
		_, err = fmt.Fprintf(w, "\nThe true value is %d\n", r.TrueValue)
	}
	return err
}

// truncate drops the fractional part of an estimate. +Inf, from a sketch whose minima are all zero,
// is shown as the largest int64.
func truncate(estimate float64) int64 {
	if estimate >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(estimate)
}
