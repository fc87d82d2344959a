package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMulScale(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3}, 3)
	require.NoError(t, err)
	b, err := FromSlice([]float64{4, 5, 6}, 3)
	require.NoError(t, err)

	assert.Equal(t, []float64{5, 7, 9}, Add(a, b).Data())
	assert.Equal(t, []float64{4, 10, 18}, Mul(a, b).Data())
	assert.Equal(t, []float64{2, 4, 6}, Scale(a, 2).Data())
	assert.Equal(t, []float64{1, 4, 9}, Map(a, func(v float64) float64 { return v * v }).Data())

	// Inputs are untouched
	assert.Equal(t, []float64{1, 2, 3}, a.Data())
}

func TestAddAssign(t *testing.T) {
	dst := Zeros(Shape{2})
	src := Full(Shape{2}, 1.5)

	AddAssign(dst, src)
	AddAssign(dst, src)
	assert.Equal(t, []float64{3, 3}, dst.Data())

	assert.PanicsWithValue(t, "add_assign: shape mismatch [2] vs [3]", func() {
		AddAssign(dst, Zeros(Shape{3}))
	})
}

func TestSumLast(t *testing.T) {
	tests := []struct {
		name  string
		data  []float64
		shape Shape
		want  Shape
		sums  []float64
	}{
		{"rank1", []float64{1, 2, 3}, Shape{3}, Shape{}, []float64{6}},
		{"rank2", []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, Shape{2}, []float64{6, 15}},
		{"rank3", []float64{1, 2, 3, 4, 5, 6, 7, 8}, Shape{2, 2, 2}, Shape{2, 2}, []float64{3, 7, 11, 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := FromSlice(tt.data, tt.shape...)
			require.NoError(t, err)

			got := SumLast(raw)
			assert.True(t, got.Shape().Equal(tt.want), "shape %v, want %v", got.Shape(), tt.want)
			assert.Equal(t, tt.sums, got.Data())
		})
	}

	assert.Panics(t, func() { SumLast(Scalar(1)) })
}

func TestBroadcastLast(t *testing.T) {
	a, err := FromSlice([]float64{6, 15}, 2)
	require.NoError(t, err)

	b := BroadcastLast(a, 3)
	assert.True(t, b.Shape().Equal(Shape{2, 3}))
	assert.Equal(t, []float64{6, 6, 6, 15, 15, 15}, b.Data())

	s := BroadcastLast(Scalar(2), 4)
	assert.True(t, s.Shape().Equal(Shape{4}))
	assert.Equal(t, []float64{2, 2, 2, 2}, s.Data())
}

func TestBroadcastTo(t *testing.T) {
	b := BroadcastTo(Scalar(0.5), Shape{2, 2})
	assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5}, b.Data())

	assert.Panics(t, func() { BroadcastTo(Zeros(Shape{2}), Shape{2, 2}) })
}

func TestMapLast(t *testing.T) {
	a, err := FromSlice([]float64{3, 1, 2, 0, 5, 4}, 2, 3)
	require.NoError(t, err)

	rev := MapLast(a, func(dst, src []float64) {
		for i := range src {
			dst[len(dst)-1-i] = src[i]
		}
	})
	assert.Equal(t, []float64{2, 1, 3, 4, 5, 0}, rev.Data())
}

func TestEqual(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2}, 2)
	b, _ := FromSlice([]float64{1, 2}, 1, 2)
	c, _ := FromSlice([]float64{1, 2 + 1e-12}, 2)

	assert.True(t, Equal(a, a.Clone()))
	assert.False(t, Equal(a, b), "different shapes")
	assert.False(t, Equal(a, c))
	assert.True(t, EqualApprox(a, c, 1e-9))
	assert.Equal(t, 3.0, SumAll(a))
}
