// Command minhash drives a MinHash sketch: it runs a synthetic experiment with a known answer or
// estimates the number of distinct lines in files.
//
//	minhash simulate 500 10000 1000 4
//	minhash count --exact access.log.gz
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	// A missing .env file is fine, the environment may be set some other way.
	_ = godotenv.Load()

	if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		log.Debug().Msgf("[maxprocs] "+format, args...)
	})); err != nil {
		log.Warn().Err(err).Msg("[maxprocs] failed to set GOMAXPROCS")
	}

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("[minhash] failed")
		os.Exit(1)
	}
}
