// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense float64 arrays underneath gradtape.
//
// # Overview
//
// A RawTensor is a row-major float64 buffer with a Shape and a stable ID.
// The ID names the storage: gradients computed by the autodiff package are
// keyed by it, so they can be looked up after the tensor was consumed.
//
// # Basic Usage
//
//	import "github.com/born-ml/gradtape/tensor"
//
//	func main() {
//	    x, err := tensor.FromNested([][]float64{{1, 2, 3}, {4, 5, 6}})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(tensor.SumLast(x)) // [6 15]
//	}
//
// # Shapes
//
// An empty Shape is a scalar. Dimensions must be positive. Operations that
// combine two tensors require identical shapes and panic otherwise; the only
// broadcasts are BroadcastLast (repeat along a new trailing axis) and
// BroadcastTo (repeat a single element).
//
// # Interop
//
// Rank-2 tensors convert to and from gonum matrices with Dense and FromDense.
package tensor
