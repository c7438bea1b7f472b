package wave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitEnvelope_PointwiseMaxMin(t *testing.T) {
	amps := []float32{0.5, -0.25, 0, 1.0, -1.0, 0.125}

	pos, neg := SplitEnvelope(nil, nil, amps)
	require.Equal(t, len(amps), len(pos))
	require.Equal(t, len(amps), len(neg))

	for i, a := range amps {
		assert.GreaterOrEqual(t, pos[i], float32(0))
		assert.LessOrEqual(t, neg[i], float32(0))
		if a >= 0 {
			assert.Equal(t, a, pos[i])
			assert.Equal(t, float32(0), neg[i])
		} else {
			assert.Equal(t, float32(0), pos[i])
			assert.Equal(t, a, neg[i])
		}
	}
}

func TestSplitEnvelope_ReusesDestination(t *testing.T) {
	amps := []float32{0.1, -0.2, 0.3}

	dstPos := make([]float32, 0, 10)
	dstNeg := make([]float32, 0, 10)
	pos, neg := SplitEnvelope(dstPos, dstNeg, amps)

	require.Equal(t, 3, len(pos))
	assert.Equal(t, cap(dstPos), cap(pos))
	assert.Equal(t, cap(dstNeg), cap(neg))
}

func TestSplitEnvelope_AllocatesWhenTooSmall(t *testing.T) {
	amps := make([]float32, 100)
	for i := range amps {
		amps[i] = float32(i%3) - 1
	}

	pos, neg := SplitEnvelope(make([]float32, 0, 4), nil, amps)
	assert.Equal(t, 100, len(pos))
	assert.Equal(t, 100, len(neg))
}

func TestSplitEnvelope_EmptyInput(t *testing.T) {
	pos, neg := SplitEnvelope(nil, nil, nil)
	assert.Equal(t, 0, len(pos))
	assert.Equal(t, 0, len(neg))
}
