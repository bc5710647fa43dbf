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

// Tensor is an immutable-once-published value: element type, shape class,
// and a handle to exclusively owned, aligned storage. Matrices are stored
// column-major, following the register layout the tile kernels consume.
//
// A tensor never shares mutable storage with another live tensor. The
// typed views returned by DataOf alias the storage read-only; mutating
// through a view after the tensor has been handed to Execute is a data
// race, exactly as it would be for any shared slice.
type Tensor struct {
	et ElementType
	sc ShapeClass
	st *storage
}

// NewTensor allocates a zero-filled tensor with aligned storage.
func NewTensor(et ElementType, sc ShapeClass) (*Tensor, error) {
	if !et.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrTypeMismatch, et)
	}
	if !sc.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrShapeMismatch, sc)
	}
	return &Tensor{et: et, sc: sc, st: newStorage(sc.Elems() * et.Size())}, nil
}

// TensorOf copies vals into freshly allocated aligned storage. The value
// count must equal the shape's element count; matrices take their values
// in column-major order.
func TensorOf[T Element](sc ShapeClass, vals []T) (*Tensor, error) {
	et := TypeFor[T]()
	if et == TypeInvalid {
		return nil, fmt.Errorf("%w: unsupported Go type", ErrTypeMismatch)
	}
	if !sc.Valid() || sc.Elems() != len(vals) {
		return nil, fmt.Errorf("%w: %v holds %d elements, got %d values",
			ErrShapeMismatch, sc, sc.Elems(), len(vals))
	}
	t := &Tensor{et: et, sc: sc, st: newStorage(len(vals) * et.Size())}
	copy(viewOf[T](t.st, len(vals)), vals)
	return t, nil
}

// FromColumns builds a matrix from a slice of equal-length columns,
// consuming no more than one copy. The storage order matches the input.
func FromColumns[T Element](cols [][]T) (*Tensor, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrShapeMismatch)
	}
	rows := len(cols[0])
	flat := make([]T, 0, rows*len(cols))
	for i, col := range cols {
		if len(col) != rows {
			return nil, fmt.Errorf("%w: column %d has %d rows, want %d",
				ErrShapeMismatch, i, len(col), rows)
		}
		flat = append(flat, col...)
	}
	return TensorOf(MatrixOf(rows, len(cols)), flat)
}

// FromRows builds a matrix from a slice of equal-length rows, transposing
// into column-major storage.
func FromRows[T Element](rws [][]T) (*Tensor, error) {
	if len(rws) == 0 || len(rws[0]) == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrShapeMismatch)
	}
	cols := len(rws[0])
	flat := make([]T, 0, len(rws)*cols)
	for c := 0; c < cols; c++ {
		for r := range rws {
			if len(rws[r]) != cols {
				return nil, fmt.Errorf("%w: row %d has %d columns, want %d",
					ErrShapeMismatch, r, len(rws[r]), cols)
			}
			flat = append(flat, rws[r][c])
		}
	}
	return TensorOf(MatrixOf(len(rws), cols), flat)
}

// WrapBytes adopts an externally allocated buffer as tensor storage
// without copying. Ownership transfers to the tensor; the caller must not
// retain the slice. The buffer is not re-aligned: if it does not meet the
// selected kernel's alignment contract, Execute fails with ErrAlignment.
func WrapBytes(et ElementType, sc ShapeClass, buf []byte) (*Tensor, error) {
	if !et.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrTypeMismatch, et)
	}
	if !sc.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrShapeMismatch, sc)
	}
	if want := sc.Elems() * et.Size(); len(buf) < want {
		return nil, fmt.Errorf("%w: buffer holds %d bytes, %v needs %d",
			ErrShapeMismatch, len(buf), sc, want)
	}
	return &Tensor{et: et, sc: sc, st: wrapStorage(buf)}, nil
}

// Type returns the tensor's element type.
func (t *Tensor) Type() ElementType { return t.et }

// Shape returns the tensor's shape class.
func (t *Tensor) Shape() ShapeClass { return t.sc }

// Elems returns the number of elements the tensor holds.
func (t *Tensor) Elems() int { return t.sc.Elems() }

// DataOf returns a typed view of the tensor's storage in column-major
// order. The view aliases the tensor; it does not extend ownership.
func DataOf[T Element](t *Tensor) ([]T, error) {
	if TypeFor[T]() != t.et {
		return nil, fmt.Errorf("%w: tensor is %v", ErrTypeMismatch, t.et)
	}
	return viewOf[T](t.st, t.Elems()), nil
}

// At returns element (r, c) of a matrix or tile tensor as a float64 for
// inspection. Intended for tests and debugging, not hot paths.
func (t *Tensor) At(r, c int) (float64, error) {
	if r < 0 || r >= t.sc.Rows || c < 0 || c >= t.sc.Cols {
		return 0, fmt.Errorf("%w: index (%d,%d) outside %v", ErrShapeMismatch, r, c, t.sc)
	}
	i := c*t.sc.Rows + r
	switch t.et {
	case TypeInt8:
		return float64(viewOf[int8](t.st, t.Elems())[i]), nil
	case TypeInt16:
		return float64(viewOf[int16](t.st, t.Elems())[i]), nil
	case TypeInt32:
		return float64(viewOf[int32](t.st, t.Elems())[i]), nil
	case TypeInt64:
		return float64(viewOf[int64](t.st, t.Elems())[i]), nil
	case TypeUint8:
		return float64(viewOf[uint8](t.st, t.Elems())[i]), nil
	case TypeFloat32:
		return float64(viewOf[float32](t.st, t.Elems())[i]), nil
	case TypeFloat64:
		return viewOf[float64](t.st, t.Elems())[i], nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrTypeMismatch, t.et)
	}
}

// String describes the tensor without dumping its contents.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor(%v, %v)", t.et, t.sc)
}
