package minhash

// block is the slot range [start, start+len) updated by one worker.
type block struct {
	start, len int
}

func (b block) end() int {
	return b.start + b.len
}

// blocks cuts [0, n) into b contiguous blocks. Every block gets n/b slots and the first n%b blocks
// get one more. b should be in [1, n].
func blocks(n, b int) []block {
	base := n / b
	remainder := n % b

	result := make([]block, b)
	for id := range result {
		if id < remainder {
			result[id] = block{start: (base + 1) * id, len: base + 1}
		} else {
			result[id] = block{start: (base+1)*remainder + base*(id-remainder), len: base}
		}
	}
	return result
}
