package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lytics/minhash"
	"github.com/lytics/minhash/internal/stream"
)

var errEmptyInput = errors.New("no items read")

func (a *app) newCountCmd() *cobra.Command {
	var exact bool

	cmd := &cobra.Command{
		Use:   "count [file...]",
		Short: "Estimate the number of distinct lines in files or stdin",
		Long: `Reads newline-separated items, hashes each one to a 64-bit element and feeds it to the
sketch. Blank lines are skipped. Files ending in .gz, .zst or .sz are decompressed. With no
file, or with "-", stdin is read.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			return a.count(cmd, args, exact)
		},
	}
	cmd.Flags().BoolVar(&exact, "exact", false, "also count distinct items exactly (memory grows with the input)")

	return cmd
}

func (a *app) count(cmd *cobra.Command, paths []string, exact bool) error {
	sketch, err := a.newSketch()
	if err != nil {
		return err
	}

	var seen map[string]struct{}
	if exact {
		seen = make(map[string]struct{})
	}

	var total uint64
	startTime := time.Now()
	for _, path := range paths {
		n, err := a.countFile(sketch, path, seen)
		if err != nil {
			return err
		}
		log.Info().Msgf("[count] %s: %d items", path, n)
		total += n
	}
	elapsed := time.Since(startTime)

	if total == 0 {
		return errEmptyInput
	}

	r := newResult("count", sketch, total, elapsed)
	if exact {
		r.TrueValue = uint64(len(seen))
	}
	return a.report(cmd.OutOrStdout(), r)
}

// countFile feeds every item of path to sketch. When seen is not nil each item is recorded in it.
func (a *app) countFile(sketch *minhash.Sketch, path string, seen map[string]struct{}) (uint64, error) {
	r, err := stream.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer r.Close()

	items := stream.NewHashed(r)
	it := items.Iterator()
	if seen != nil {
		it = func() (uint64, bool) {
			x, ok := items.Next()
			if ok {
				seen[items.Text()] = struct{}{}
			}
			return x, ok
		}
	}

	n := a.feed("count", sketch, it)
	if err = items.Err(); err != nil {
		return n, fmt.Errorf("read %s: %w", path, err)
	}
	return n, nil
}
