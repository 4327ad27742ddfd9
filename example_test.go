package minhash

import (
	"fmt"
	"math/rand/v2"
)

// A simple walkthrough on how to use a Sketch.
func Example() {
	const (
		numSlots    = 1024 // more slots give steadier estimates
		numThreads  = 4    // slot updates are split across this many goroutines
		numDistinct = 10000
	)

	sketch, err := New(numSlots, numThreads)
	if err != nil {
		panic(err)
	}

	// The first element initializes every slot.
	sketch.ProcessFirst(1)
	for i := uint64(2); i <= numDistinct; i++ {
		sketch.Process(i)
	}

	// Duplicates do not affect the estimate. The following loop has no effect.
	for i := 0; i < 10000; i++ {
		sketch.Process(uint64(rand.IntN(numDistinct)) + 1)
	}

	fmt.Printf("mean estimate: %.0f\n", sketch.EstimateMean())
	fmt.Printf("median estimate: %.0f\n", sketch.EstimateMedian())
}

// Sketches built from the same seed share their hash family, so the same stream gives the same
// estimate no matter how many goroutines update the slots.
func Example_seeded() {
	sequential, _ := New(256, 1, WithSeed(2015))
	parallel, _ := New(256, 8, WithSeed(2015))

	for x := uint64(1); x <= 5000; x++ {
		sequential.Add(x)
		parallel.Add(x)
	}

	fmt.Println(sequential.EstimateMean() == parallel.EstimateMean())
	fmt.Println(sequential.EstimateMedian() == parallel.EstimateMedian())
	// Output:
	// true
	// true
}
