// This is a Go implementation of a MinHash cardinality estimator: given a stream of integer
// elements, it estimates the number of distinct elements in the stream. The sketch keeps a fixed
// number of slots. Each slot owns an affine hash function h_i(x) = (A*x + B) mod P[i] and remembers
// the smallest normalized hash value h_i(x)/P[i] it has seen. Since the minimum of n uniform values
// in [0, 1) has expectation 1/(n+1), the reciprocal of the average (or median) slot minimum is an
// estimate of n.
//
// The coefficients A and B are shared by every slot, only the moduli differ. A*x + B is computed
// with 64-bit unsigned arithmetic and wraps on overflow; the wraparound is part of the hash family.
//
// Updates can be spread over several goroutines. The slot range is cut into contiguous blocks, one
// per worker, and each Process call waits for all of its workers before returning. A Sketch is not
// safe for concurrent use by multiple callers.
//
// The estimate accuracy depends on the number of slots, and both estimators are biased for the
// affine family: the median-based estimate sits near n/ln(2) and the mean-based estimate tends to
// fall below n. Compare estimates made with the same configuration rather than reading them as
// exact counts.
package minhash
