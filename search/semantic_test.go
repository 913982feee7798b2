package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineScore(t *testing.T) {
	t.Run("identical vectors", func(t *testing.T) {
		v := []float32{0.5, 0.5, 0.5}
		assert.InDelta(t, 1.0, CosineScore(v, v), 1e-6)
	})

	t.Run("orthogonal vectors", func(t *testing.T) {
		a := []float32{1, 0}
		b := []float32{0, 1}
		assert.InDelta(t, 0.0, CosineScore(a, b), 1e-6)
	})

	t.Run("opposite vectors clamp to zero", func(t *testing.T) {
		a := []float32{1, 0}
		b := []float32{-1, 0}
		assert.Zero(t, CosineScore(a, b))
	})

	t.Run("scale invariant", func(t *testing.T) {
		a := []float32{0.3, 0.4, 0.5}
		b := []float32{0.1, 0.9, 0.2}
		scaled := []float32{0.01, 0.09, 0.02}
		assert.InDelta(t, CosineScore(a, b), CosineScore(a, scaled), 1e-6)
	})

	t.Run("zero vector scores zero", func(t *testing.T) {
		assert.Zero(t, CosineScore([]float32{0, 0, 0}, []float32{1, 2, 3}))
		assert.Zero(t, CosineScore([]float32{1, 2, 3}, []float32{0, 0, 0}))
		assert.Zero(t, CosineScore(nil, []float32{1, 2, 3}))
	})

	t.Run("dimension mismatch scores zero", func(t *testing.T) {
		assert.Zero(t, CosineScore([]float32{1, 2}, []float32{1, 2, 3}))
	})
}

func TestNormalizeVector(t *testing.T) {
	t.Run("unit length result", func(t *testing.T) {
		normalized := NormalizeVector([]float32{3, 4})
		assert.InDelta(t, 0.6, normalized[0], 1e-6)
		assert.InDelta(t, 0.8, normalized[1], 1e-6)
	})

	t.Run("zero vector unchanged", func(t *testing.T) {
		v := []float32{0, 0, 0}
		assert.Equal(t, v, NormalizeVector(v))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		v := []float32{3, 4}
		NormalizeVector(v)
		assert.Equal(t, []float32{3, 4}, v)
	})
}
