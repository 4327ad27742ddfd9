package main

import (
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/lytics/minhash"
	"github.com/lytics/minhash/internal/stream"
)

const progressInterval = 2 * time.Second

// feed drains it into sketch and returns the number of elements processed. Progress is logged
// every progressInterval while it runs.
func (a *app) feed(command string, sketch *minhash.Sketch, it stream.Iterator) uint64 {
	var processed atomic.Uint64

	done := make(chan struct{})
	defer close(done)

	go func() {
		startTime := time.Now()
		ticker := time.NewTicker(progressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				current := processed.Load()
				rate := float64(current) / time.Since(startTime).Seconds()
				log.Info().Msgf("[%s] progress: %s elements processed (%s elements/sec)",
					command, humanize.Comma(int64(current)), humanize.CommafWithDigits(rate, 0))
			}
		}
	}()

	for x, ok := it(); ok; x, ok = it() {
		timer := a.meter.NewProcessTimer(command)
		sketch.Add(x)
		a.meter.FlushProcessTimer(timer)
		a.meter.IncProcessed(command)
		processed.Add(1)
	}

	return processed.Load()
}
