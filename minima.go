package minhash

import (
	"encoding/base64"
	"encoding/binary"
	"math"
	"slices"

	"github.com/golang/snappy"
)

// minima holds the normalized minimum of every slot.
type minima []float64

func newMinima(numSlots int) minima {
	return make([]float64, numSlots)
}

// Lower stores val in slot i if it is smaller than the current minimum. It reports whether the slot
// changed. i must be in range.
func (m minima) Lower(i int, val float64) bool {
	if val < m[i] {
		m[i] = val
		return true
	}
	return false
}

func (m minima) Mean() float64 {
	sum := 0.0
	for _, v := range m {
		sum += v
	}
	return sum / float64(len(m))
}

// Median returns the middle element of the sorted minima. For an even count this is the upper of
// the two middle elements.
func (m minima) Median() float64 {
	sorted := slices.Clone(m)
	slices.Sort(sorted)
	return sorted[len(sorted)/2]
}

func (m *minima) MarshalJSON() ([]byte, error) {
	raw := make([]byte, 8*len(*m))
	for i, v := range *m {
		binary.LittleEndian.PutUint64(raw[i*8:], math.Float64bits(v))
	}

	compressed, err := snappyB64(raw)
	if err != nil {
		return nil, err
	}

	// Wrap the base64 in quotes so it's a valid JSON string.
	buf := make([]byte, len(compressed)+2)
	buf[0] = '"'
	copy(buf[1:], compressed)
	buf[len(buf)-1] = '"'

	return buf, nil
}

// Compress the input using snappy and encode the result using URL-safe base64.
func snappyB64(in []byte) ([]byte, error) {
	compressed := snappy.Encode(nil, in)
	outBuf := make([]byte, base64.URLEncoding.EncodedLen(len(compressed)))
	base64.URLEncoding.Encode(outBuf, compressed)
	return outBuf, nil
}
