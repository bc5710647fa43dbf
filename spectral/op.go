// Copyright 2026 go-spectral Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package spectral

import "fmt"

// Op identifies one of the closed set of supported operations. Only
// operations with a real vector-parallel implementation appear here;
// the registry never grows at runtime.
//
// Tolerance contracts relative to a sequential reference computation:
//
//   - OpAdd, OpSub, OpMul: exact per element. The elementwise kernels
//     perform one rounding per lane, same as the reference.
//   - OpMulAdd (a*b + c): within 1 ulp per element. Backends may fuse the
//     multiply and add into a single rounding.
//   - OpSum, OpDot: integer kernels are exact; float32 within a relative
//     error of 1e-6 (OpSum) / 1e-5 (OpDot) per k accumulated terms,
//     float64 within 1e-12. Kernels accumulate in lane-parallel tree
//     order, which differs from left-to-right sequential order.
//   - OpMatMul: float32 within a relative error of 1e-4 per output
//     element for inner dimensions up to 4096; float64 within 1e-10.
//     The int8-to-int32 widening tile kernel is exact.
type Op uint8

const (
	// OpAdd is elementwise addition of two tensors.
	OpAdd Op = iota + 1

	// OpSub is elementwise subtraction of two tensors.
	OpSub

	// OpMul is elementwise (Hadamard) multiplication of two tensors.
	OpMul

	// OpMulAdd is elementwise fused multiply-add: a*b + c.
	OpMulAdd

	// OpSum reduces a vector to the scalar sum of its elements.
	OpSum

	// OpDot is the inner product of two equal-length vectors.
	OpDot

	// OpMatMul multiplies an RxK matrix by a KxC matrix. On Tile64 shapes
	// it additionally supports the int8 x int8 -> int32 widening
	// accumulate contract.
	OpMatMul
)

// Arity returns the number of input tensors the operation consumes.
func (op Op) Arity() int {
	switch op {
	case OpSum:
		return 1
	case OpMulAdd:
		return 3
	case OpAdd, OpSub, OpMul, OpDot, OpMatMul:
		return 2
	default:
		return 0
	}
}

// String returns a human-readable name for the operation.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpMulAdd:
		return "muladd"
	case OpSum:
		return "sum"
	case OpDot:
		return "dot"
	case OpMatMul:
		return "matmul"
	default:
		return fmt.Sprintf("invalid(%d)", uint8(op))
	}
}
