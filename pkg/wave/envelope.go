package wave

import "github.com/chewxy/math32"

// SplitEnvelope partitions amps pointwise into a non-negative and a
// non-positive sequence, the two traces the scope draws in different
// colors. It reuses dstPos/dstNeg when they have sufficient capacity
// and allocates only when they do not.
func SplitEnvelope(dstPos, dstNeg, amps []float32) (pos, neg []float32) {
	if cap(dstPos) >= len(amps) {
		dstPos = dstPos[:len(amps)]
	} else {
		dstPos = make([]float32, len(amps))
	}
	if cap(dstNeg) >= len(amps) {
		dstNeg = dstNeg[:len(amps)]
	} else {
		dstNeg = make([]float32, len(amps))
	}

	for i, a := range amps {
		dstPos[i] = math32.Max(a, 0)
		dstNeg[i] = math32.Min(a, 0)
	}

	return dstPos, dstNeg
}
