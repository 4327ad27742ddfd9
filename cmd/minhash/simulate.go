package main

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lytics/minhash/internal/stream"
)

func (a *app) newSimulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate [numDist numStream numHash [numThreads]]",
		Short: "Feed a synthetic stream with a known number of distinct elements",
		Long: `Feeds the elements 1..numDist, then numStream-numDist elements drawn uniformly from
[0, numDist), and compares both estimates with numDist. Positional arguments override the
simulation and sketch sections of the config.`,
		Args: func(_ *cobra.Command, args []string) error {
			if n := len(args); n != 0 && n != 3 && n != 4 {
				return fmt.Errorf("expected 0, 3 or 4 arguments, got %d", n)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.applySimulateArgs(args); err != nil {
				return err
			}
			return a.simulate(cmd)
		},
	}
}

func (a *app) applySimulateArgs(args []string) error {
	if len(args) == 0 {
		return nil
	}

	values := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("argument %d: %w", i+1, err)
		}
		values[i] = v
	}

	box := &a.cfg.MinHash
	box.Simulation.Distinct = values[0]
	box.Simulation.Stream = values[1]
	box.Sketch.Slots = values[2]
	if len(values) == 4 {
		box.Sketch.Threads = values[3]
		if values[3] == 0 {
			return fmt.Errorf("argument 4: number of threads must be positive")
		}
	}

	return a.cfg.Validate()
}

func (a *app) simulate(cmd *cobra.Command) error {
	sim := a.cfg.MinHash.Simulation

	sketch, err := a.newSketch()
	if err != nil {
		return err
	}

	log.Info().Msgf("[simulate] beginning of a simulation: %d elements in the stream, %d distinct",
		sim.Stream, sim.Distinct)

	rng := rand.New(rand.NewPCG(a.cfg.MinHash.Sketch.Seed, uint64(sim.Stream)))
	it := stream.Synthetic(sim.Distinct, sim.Stream, rng)

	startTime := time.Now()
	n := a.feed("simulate", sketch, it)
	elapsed := time.Since(startTime)

	log.Info().Msgf("[simulate] done in %v", elapsed)

	r := newResult("simulate", sketch, n, elapsed)
	r.TrueValue = uint64(sim.Distinct)
	return a.report(cmd.OutOrStdout(), r)
}
