package stream

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/zeebo/xxh3"
)

const maxLineSize = 1024 * 1024

// Open opens path for reading, decompressing it according to its extension: .gz (gzip), .zst
// (zstandard) or .sz (snappy framing format). "-" reads stdin.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var decoded io.Reader
	closeDecoder := func() {}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("gzip header of %s: %w", path, err)
		}
		decoded, closeDecoder = zr, func() { zr.Close() }
	case ".zst":
		zr, err := zstd.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("zstd reader for %s: %w", path, err)
		}
		decoded, closeDecoder = zr, zr.Close
	case ".sz":
		decoded = snappy.NewReader(file)
	default:
		decoded = file
	}

	return &decodedFile{Reader: decoded, file: file, closeDecoder: closeDecoder}, nil
}

type decodedFile struct {
	io.Reader
	file         *os.File
	closeDecoder func()
}

func (d *decodedFile) Close() error {
	d.closeDecoder()
	return d.file.Close()
}

// Hashed reads newline-separated items and yields the xxh3 hash of each non-blank line. Leading
// and trailing whitespace is not part of an item.
type Hashed struct {
	scanner *bufio.Scanner
	text    string
	lines   uint64
}

func NewHashed(r io.Reader) *Hashed {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	return &Hashed{scanner: scanner}
}

// Next returns the hash of the next item. It returns false at the end of input or on a read
// error; check Err afterwards.
func (h *Hashed) Next() (uint64, bool) {
	for h.scanner.Scan() {
		h.lines++
		line := strings.TrimSpace(h.scanner.Text())
		if line == "" {
			continue
		}
		h.text = line
		return xxh3.HashString(line), true
	}
	return 0, false
}

// Iterator adapts h to an Iterator.
func (h *Hashed) Iterator() Iterator {
	return h.Next
}

// Text returns the item whose hash Next returned last.
func (h *Hashed) Text() string {
	return h.text
}

// Lines returns the number of lines read so far, blank ones included.
func (h *Hashed) Lines() uint64 {
	return h.lines
}

func (h *Hashed) Err() error {
	return h.scanner.Err()
}
