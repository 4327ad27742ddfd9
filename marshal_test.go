package minhash

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"math"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/golang/snappy"
)

type sketchReport struct {
	Slots   int             `json:"slots"`
	Threads int             `json:"threads"`
	A       uint64          `json:"a"`
	B       uint64          `json:"b"`
	M       json.RawMessage `json:"M"`
}

func TestMarshalReport(t *testing.T) {
	s := newTestSketch(t, 300, 3, 8)
	feed(s, 1, 1000)

	buf, err := json.Marshal(s)
	assert.Equalf(t, nil, err, "%v", err)

	var report sketchReport
	err = json.Unmarshal(buf, &report)
	assert.Equalf(t, nil, err, "%v", err)

	a, b := s.hashes.Coefficients()
	assert.Equal(t, 300, report.Slots)
	assert.Equal(t, 3, report.Threads)
	assert.Equal(t, a, report.A)
	assert.Equal(t, b, report.B)

	m, err := decodeMinima(report.M)
	assert.Equalf(t, nil, err, "%v", err)
	assert.Equal(t, s.Minima(), m)
}

// An inactive sketch reports its shape but no minima.
func TestMarshalInactive(t *testing.T) {
	s := newTestSketch(t, 4, 1, 8)

	buf, err := json.Marshal(s)
	assert.Equalf(t, nil, err, "%v", err)

	fields := map[string]json.RawMessage{}
	err = json.Unmarshal(buf, &fields)
	assert.Equalf(t, nil, err, "%v", err)

	_, ok := fields["M"]
	assert.T(t, !ok)
	assert.Equal(t, "4", string(fields["slots"]))
}

// decodeMinima reverses minima.MarshalJSON.
func decodeMinima(buf []byte) ([]float64, error) {
	var encoded string
	if err := json.Unmarshal(buf, &encoded); err != nil {
		return nil, err
	}
	compressed, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}
	raw, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, err
	}

	m := make([]float64, len(raw)/8)
	for i := range m {
		m[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8:]))
	}
	return m, nil
}
