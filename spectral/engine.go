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

// Execute runs a selected kernel over the input tensors and returns a
// freshly allocated result. Inputs are never mutated; no operation in the
// closed set is in-place.
//
// The element-type and shape checks against the entry's key are
// defensive: Select already fixed the key from the request, so a mismatch
// here means the caller paired an entry with foreign tensors. Alignment
// validation exists for externally wrapped buffers; storage allocated by
// this package always satisfies every backend.
func Execute(entry *KernelEntry, inputs ...*Tensor) (*Tensor, error) {
	if entry == nil || entry.Fn == nil {
		return nil, fmt.Errorf("%w: nil kernel entry", ErrOperationUnsupported)
	}
	if len(inputs) != entry.Op.Arity() {
		return nil, fmt.Errorf("%w: %v takes %d inputs, got %d",
			ErrShapeMismatch, entry.Op, entry.Op.Arity(), len(inputs))
	}
	if inputs[0].Type() != entry.Type {
		return nil, fmt.Errorf("%w: kernel %v fed %v input",
			ErrTypeMismatch, entry, inputs[0].Type())
	}
	if inputs[0].Shape().Kind != entry.Shape {
		return nil, fmt.Errorf("%w: kernel %v fed %v input",
			ErrShapeMismatch, entry, inputs[0].Shape())
	}
	if err := validateOperands(entry.Op, inputs); err != nil {
		return nil, err
	}
	align := entry.Backend.MinAlign()
	for i, in := range inputs {
		if !in.st.alignedTo(align) {
			return nil, fmt.Errorf("%w: input %d not %d-byte aligned for %v",
				ErrAlignment, i, align, entry.Backend)
		}
	}

	outType, outShape, err := resultSpec(entry, inputs)
	if err != nil {
		return nil, err
	}
	dst, err := NewTensor(outType, outShape)
	if err != nil {
		return nil, err
	}
	if err := entry.Fn(dst, inputs); err != nil {
		return nil, err
	}
	return dst, nil
}

// validateOperands applies the per-operation cross-input rules. The first
// input has already been checked against the kernel key.
func validateOperands(op Op, in []*Tensor) error {
	for i := 1; i < len(in); i++ {
		if in[i].Type() != in[0].Type() {
			return fmt.Errorf("%w: input %d is %v, input 0 is %v",
				ErrTypeMismatch, i, in[i].Type(), in[0].Type())
		}
	}
	switch op {
	case OpAdd, OpSub, OpMul:
		return validateElementwise(in[0], in[1])
	case OpMulAdd:
		if err := validateElementwise(in[0], in[1]); err != nil {
			return err
		}
		return validateElementwise(in[0], in[2])
	case OpSum:
		return nil
	case OpDot:
		if in[0].Shape() != in[1].Shape() {
			return fmt.Errorf("%w: dot of %v and %v",
				ErrShapeMismatch, in[0].Shape(), in[1].Shape())
		}
		return nil
	case OpMatMul:
		a, b := in[0].Shape(), in[1].Shape()
		if a.Cols != b.Rows {
			return fmt.Errorf("%w: matmul of %v and %v", ErrShapeMismatch, a, b)
		}
		if a.Kind == ShapeTile64 && b.Kind != ShapeTile64 {
			return fmt.Errorf("%w: tile matmul of %v and %v", ErrShapeMismatch, a, b)
		}
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrOperationUnsupported, op)
	}
}

// validateElementwise allows equal shapes, plus the cycling contract on
// vectors: an RHS whose length divides the LHS length is repeated across
// it, the behavior the elementwise kernels implement with modular loads.
func validateElementwise(a, b *Tensor) error {
	sa, sb := a.Shape(), b.Shape()
	if sa == sb {
		return nil
	}
	if sa.Kind == ShapeVector && sb.Kind == ShapeVector && sa.Rows%sb.Rows == 0 {
		return nil
	}
	return fmt.Errorf("%w: elementwise op on %v and %v", ErrShapeMismatch, sa, sb)
}

// resultSpec determines the result tensor's element type and shape from
// the entry's contract and the concrete inputs.
func resultSpec(entry *KernelEntry, in []*Tensor) (ElementType, ShapeClass, error) {
	switch entry.Op {
	case OpAdd, OpSub, OpMul, OpMulAdd:
		return entry.Type, in[0].Shape(), nil
	case OpSum, OpDot:
		return entry.Type, Scalar(), nil
	case OpMatMul:
		if entry.Shape == ShapeTile64 {
			if entry.Type == TypeInt8 {
				// Widening accumulate: int8 operands, int32 result.
				return TypeInt32, Tile64(), nil
			}
			return entry.Type, Tile64(), nil
		}
		return entry.Type, MatrixOf(in[0].Shape().Rows, in[1].Shape().Cols), nil
	default:
		return TypeInvalid, ShapeClass{}, fmt.Errorf("%w: %v", ErrOperationUnsupported, entry.Op)
	}
}
