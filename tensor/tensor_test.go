// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/gradtape/tensor"
)

// TestRawTensorAPI verifies RawTensor type alias exposes expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3})
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if !raw.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", raw.Shape())
	}
	if raw.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", raw.NumElements())
	}

	var id tensor.Identity = raw
	if id.ID() != raw.Phantom().ID() {
		t.Error("Phantom() should keep the identity")
	}
}

// TestPublicOps verifies the re-exported array operations.
func TestPublicOps(t *testing.T) {
	x, err := tensor.FromNested([][]float64{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		t.Fatalf("FromNested failed: %v", err)
	}

	sum := tensor.SumLast(x)
	want, _ := tensor.FromSlice([]float64{6, 15}, 2)
	if !tensor.Equal(sum, want) {
		t.Errorf("SumLast = %v, want %v", sum, want)
	}

	back := tensor.BroadcastLast(sum, 3)
	if back.At(1, 2) != 15 {
		t.Errorf("BroadcastLast At(1, 2) = %v, want 15", back.At(1, 2))
	}

	acc := tensor.Zeros(tensor.Shape{2, 3})
	tensor.AddAssign(acc, tensor.Scale(tensor.OnesLike(acc), 0.5))
	if !tensor.EqualApprox(acc, tensor.Full(tensor.Shape{2, 3}, 0.5), 1e-12) {
		t.Errorf("AddAssign = %v", acc)
	}
}

// TestDenseInterop verifies conversion from gonum matrices.
func TestDenseInterop(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	raw := tensor.FromDense(m)

	if raw.At(1, 0) != 3 {
		t.Errorf("At(1, 0) = %v, want 3", raw.At(1, 0))
	}
	if !mat.Equal(m, raw.Dense()) {
		t.Error("Dense() should round-trip")
	}
}
