package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lytics/minhash"
	"github.com/lytics/minhash/internal/config"
	"github.com/lytics/minhash/internal/metrics"
)

// app carries what the subcommands share once the persistent flags are parsed.
type app struct {
	cfg   *config.Config
	meter metrics.Meter

	configPath  string
	logLevel    string
	seed        uint64
	slots       int
	threads     int
	jsonOutput  bool
	dumpMetrics bool
}

func newRootCmd() *cobra.Command {
	a := &app{meter: metrics.New()}

	root := &cobra.Command{
		Use:           "minhash",
		Short:         "Estimate the number of distinct elements in a stream with a MinHash sketch",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd.Flags())
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if a.dumpMetrics {
				a.meter.WritePrometheus(cmd.OutOrStdout())
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", os.Getenv(config.EnvPath), "path to a YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.Uint64Var(&a.seed, "seed", 0, "seed for the hash family and the synthetic stream (0 picks one)")
	flags.IntVar(&a.slots, "slots", 0, "number of hash functions in the sketch")
	flags.IntVar(&a.threads, "threads", 0, "number of goroutines updating the sketch (0 means min(GOMAXPROCS, slots))")
	flags.BoolVar(&a.jsonOutput, "json", false, "print the result as JSON, including the sketch report")
	flags.BoolVar(&a.dumpMetrics, "metrics", false, "print metrics in Prometheus text format when done")

	root.AddCommand(a.newSimulateCmd(), a.newCountCmd())
	return root
}

// configure loads the config file, applies the flags that were set on top of it and sets up
// logging.
func (a *app) configure(flags *pflag.FlagSet) (err error) {
	a.cfg = config.Default()
	if a.configPath != "" {
		if a.cfg, err = config.LoadConfig(a.configPath); err != nil {
			return err
		}
	}

	box := &a.cfg.MinHash
	if flags.Changed("log-level") {
		box.Logs.Level = a.logLevel
	}
	if flags.Changed("seed") {
		box.Sketch.Seed = a.seed
	}
	if flags.Changed("slots") {
		box.Sketch.Slots = a.slots
	}
	if flags.Changed("threads") {
		box.Sketch.Threads = a.threads
	}

	if err = setUpLogger(a.cfg); err != nil {
		return err
	}

	if box.Sketch.Seed == 0 {
		box.Sketch.Seed = rand.Uint64()
	}
	log.Debug().Msgf("[config] loaded=%+v", a.cfg.MinHash)

	return nil
}

func setUpLogger(cfg *config.Config) error {
	level, err := zerolog.ParseLevel(cfg.MinHash.Logs.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	var w io.Writer = os.Stderr
	if !cfg.IsProd() {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return nil
}

// newSketch builds the sketch described by the config. Thread count 0 means one goroutine per
// available CPU, never more than one per slot.
func (a *app) newSketch() (*minhash.Sketch, error) {
	sketchCfg := a.cfg.MinHash.Sketch
	threads := sketchCfg.Threads
	if threads == 0 {
		threads = min(runtime.GOMAXPROCS(0), sketchCfg.Slots)
	}

	sketch, err := minhash.New(sketchCfg.Slots, threads, minhash.WithSeed(sketchCfg.Seed))
	if err != nil {
		return nil, err
	}
	a.meter.SetShape(sketch.NumSlots(), sketch.NumThreads())

	log.Info().Msgf("[sketch] initializing the data structure: %d hash functions, %d threads, seed %d",
		sketch.NumSlots(), sketch.NumThreads(), sketchCfg.Seed)
	return sketch, nil
}
