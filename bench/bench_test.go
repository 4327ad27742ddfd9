package bench

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strconv"
	"testing"

	axiom "github.com/axiomhq/hyperloglog"
	"github.com/zeebo/xxh3"

	"github.com/lytics/minhash"
)

func benchmarkMinHash(b *testing.B, numSlots, numThreads int) {
	b.ReportAllocs()
	s, err := minhash.New(numSlots, numThreads)
	if err != nil {
		b.Fatal(err)
	}
	s.ProcessFirst(hash64(randStr(0)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Process(hash64(randStr(i)))
	}
	b.StopTimer()
	b.ReportMetric(s.EstimateMedian(), "estimate")
}

func BenchmarkMinHash(b *testing.B) {
	for _, numSlots := range []int{64, 1024, 16384} {
		for _, numThreads := range []int{1, 4, 16} {
			b.Run(fmt.Sprintf("slots=%d/threads=%d", numSlots, numThreads), func(b *testing.B) {
				benchmarkMinHash(b, numSlots, numThreads)
			})
		}
	}
}

func BenchmarkMinHashEstimate(b *testing.B) {
	s, err := minhash.New(4096, 1)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 1000; i++ {
		s.Add(uint64(i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.EstimateMean()
		s.EstimateMedian()
	}
}

// https://github.com/axiomhq/hyperloglog
func BenchmarkAxiomHQ(b *testing.B) {
	b.ReportAllocs()
	h := axiom.New16()
	buf := make([]byte, 8)
	for i := 0; i < b.N; i++ {
		binary.LittleEndian.PutUint64(buf, hash64(randStr(i)))
		h.Insert(buf)
		h.Estimate()
	}
}

func hash64(s string) uint64 {
	return xxh3.HashString(s)
}

func randStr(n int) string {
	return strconv.FormatUint(uint64(rand.Uint32()), 10) + " " + strconv.Itoa(n)
}
