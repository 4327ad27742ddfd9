package minhash

import (
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Sketch estimates the number of distinct elements in a stream of uint64 values.
//
// A new Sketch is uninitialized. The first element must go through ProcessFirst, every following
// element through Process. Add does the dispatch for callers that don't want to track it.
type Sketch struct {
	hashes     *family
	m          minima  // empty until the first element is processed
	parts      []block // slot ranges, one per worker
	numThreads int
}

// New creates a sketch with numSlots hash functions whose updates are split across numThreads
// goroutines. numThreads == 1 updates the slots sequentially on the calling goroutine.
//
// numSlots and numThreads must be at least 1 and numThreads may not exceed numSlots.
func New(numSlots, numThreads int, opts ...Option) (*Sketch, error) {
	if numSlots < 1 {
		return nil, fmt.Errorf("%w: number of slots must be positive, got %d", ErrInvalidConfig, numSlots)
	}
	if numThreads < 1 {
		return nil, fmt.Errorf("%w: number of threads must be positive, got %d", ErrInvalidConfig, numThreads)
	}
	if numThreads > numSlots {
		return nil, fmt.Errorf("%w: number of threads (%d) exceeds number of slots (%d)",
			ErrInvalidConfig, numThreads, numSlots)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Sketch{
		hashes:     newFamily(numSlots, o.rng),
		parts:      blocks(numSlots, numThreads),
		numThreads: numThreads,
	}, nil
}

// ProcessFirst initializes every slot with the hash of x. It must be called exactly once, before
// any call to Process. It panics with ErrAlreadyInitialized on a second call.
func (s *Sketch) ProcessFirst(x uint64) {
	if s.Active() {
		panic(ErrAlreadyInitialized)
	}

	m := newMinima(s.hashes.Size())
	for i := range m {
		m[i] = s.hashes.Normalized(x, i)
	}
	s.m = m
}

// Process lowers every slot minimum that the hash of x undercuts. It panics with ErrUseBeforeInit
// if ProcessFirst hasn't been called.
//
// When the sketch was built with more than one thread, each block of slots is updated on its own
// goroutine and Process returns once all of them are done.
func (s *Sketch) Process(x uint64) {
	if !s.Active() {
		panic(ErrUseBeforeInit)
	}

	if s.numThreads == 1 {
		s.processBlock(x, s.parts[0])
		return
	}

	var g errgroup.Group
	for _, part := range s.parts {
		g.Go(func() error {
			s.processBlock(x, part)
			return nil
		})
	}
	_ = g.Wait() // workers never fail
}

// Add feeds x to the sketch, calling ProcessFirst for the first element and Process afterwards.
func (s *Sketch) Add(x uint64) {
	if s.Active() {
		s.Process(x)
	} else {
		s.ProcessFirst(x)
	}
}

// processBlock updates slots [part.start, part.end). Blocks never overlap, so concurrent calls on
// distinct blocks don't need locking.
func (s *Sketch) processBlock(x uint64, part block) {
	for i := part.start; i < part.end(); i++ {
		s.m.Lower(i, s.hashes.Normalized(x, i))
	}
}

// EstimateMean returns the reciprocal of the average slot minimum. It panics with ErrUseBeforeInit
// if no element has been processed. The result is +Inf if every minimum is zero.
func (s *Sketch) EstimateMean() float64 {
	if !s.Active() {
		panic(ErrUseBeforeInit)
	}
	return 1 / s.m.Mean()
}

// EstimateMedian returns the reciprocal of the median slot minimum. With an even number of slots
// the upper of the two middle minima is used. It panics with ErrUseBeforeInit if no element has
// been processed.
func (s *Sketch) EstimateMedian() float64 {
	if !s.Active() {
		panic(ErrUseBeforeInit)
	}
	return 1 / s.m.Median()
}

// Active reports whether the first element has been processed.
func (s *Sketch) Active() bool {
	return len(s.m) > 0
}

func (s *Sketch) NumSlots() int {
	return s.hashes.Size()
}

func (s *Sketch) NumThreads() int {
	return s.numThreads
}

// Minima returns a copy of the normalized slot minima, or nil if the sketch is not active yet.
func (s *Sketch) Minima() []float64 {
	if !s.Active() {
		return nil
	}
	out := make([]float64, len(s.m))
	copy(out, s.m)
	return out
}

// When marshalling a Sketch to JSON, only the shared coefficients and the minima are reported. The
// moduli are left out, so a report describes a sketch but can't be used to rebuild one.
type jsonableSketch struct {
	Slots   int     `json:"slots"`
	Threads int     `json:"threads"`
	A       uint64  `json:"a"`
	B       uint64  `json:"b"`
	M       *minima `json:"M,omitempty"`
}

// MarshalJSON renders an inspection report of the sketch. The minima are snappy-compressed and
// base64-encoded.
func (s *Sketch) MarshalJSON() ([]byte, error) {
	a, b := s.hashes.Coefficients()

	var m *minima
	if s.Active() {
		m = &s.m
	}

	return json.Marshal(&jsonableSketch{
		Slots:   s.NumSlots(),
		Threads: s.numThreads,
		A:       a,
		B:       b,
		M:       m,
	})
}
