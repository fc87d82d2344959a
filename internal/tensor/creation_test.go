package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFromSlice(t *testing.T) {
	raw, err := FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	assert.True(t, raw.Shape().Equal(Shape{2, 2}))
	assert.Equal(t, []float64{1, 2, 3, 4}, raw.Data())

	_, err = FromSlice([]float64{1, 2, 3}, 2, 2)
	assert.EqualError(t, err, "shape [2 2] requires 4 elements, but got 3")
}

func TestFromSlice_Copies(t *testing.T) {
	data := []float64{1, 2}
	raw, err := FromSlice(data, 2)
	require.NoError(t, err)

	data[0] = 100
	assert.Equal(t, 1.0, raw.Data()[0])
}

func TestFull_Scalar(t *testing.T) {
	s := Scalar(7)
	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, 7.0, s.Item())

	f := Full(Shape{2, 2}, 3)
	assert.Equal(t, []float64{3, 3, 3, 3}, f.Data())
	assert.Equal(t, []float64{1, 1, 1, 1}, OnesLike(f).Data())
	assert.Equal(t, []float64{0, 0, 0, 0}, ZerosLike(f).Data())
}

func TestFromNested(t *testing.T) {
	tests := []struct {
		name  string
		value any
		shape Shape
		data  []float64
	}{
		{"scalar", 3.5, Shape{}, []float64{3.5}},
		{"vector", []float64{1, 2, 3}, Shape{3}, []float64{1, 2, 3}},
		{"matrix", [][]float64{{1, 2, 3}, {4, 5, 6}}, Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6}},
		{"array", [2][2]int{{1, 2}, {3, 4}}, Shape{2, 2}, []float64{1, 2, 3, 4}},
		{"rank4", [][][][]float64{{{{1}, {2}}}}, Shape{1, 1, 2, 1}, []float64{1, 2}},
		{"boxed", []any{[]any{1, 2.5}, []any{3, 4}}, Shape{2, 2}, []float64{1, 2.5, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := FromNested(tt.value)
			require.NoError(t, err)
			assert.True(t, raw.Shape().Equal(tt.shape), "shape %v, want %v", raw.Shape(), tt.shape)
			assert.Equal(t, tt.data, raw.Data())
		})
	}
}

func TestFromNested_Errors(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"ragged", [][]float64{{1, 2}, {3}}},
		{"ragged depth", []any{[]any{1, 2}, 3}},
		{"empty", []float64{}},
		{"string", []any{"a"}},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromNested(tt.value)
			assert.Error(t, err)
		})
	}
}

func TestFromNested_YAML(t *testing.T) {
	var doc struct {
		Data any `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("data: [[1, 2, 3], [4, 5, 6]]\n"), &doc))

	raw, err := FromNested(doc.Data)
	require.NoError(t, err)
	assert.True(t, raw.Shape().Equal(Shape{2, 3}))
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, raw.Data())
}
