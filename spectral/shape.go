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

// ShapeKind is the monomorphized shape category a kernel is keyed on.
// Kernels are selected per kind, never per exact extent: a Vector kernel
// serves any length and handles the vector-width tail itself with masked
// lanes.
type ShapeKind uint8

const (
	// ShapeScalar is a single element (rank 0).
	ShapeScalar ShapeKind = iota + 1

	// ShapeVector is a rank-1 tensor of any length.
	ShapeVector

	// ShapeMatrix is a rank-2 tensor of any extent, stored column-major.
	ShapeMatrix

	// ShapeTile64 is the canonical 64x64 matrix-register shape. It is the
	// geometry of the AMX z-register pool (64 rows of 64 bytes) and gets
	// dedicated tile kernels. A Tile64 is storage-compatible with a 64x64
	// Matrix but dispatches to a different kernel set.
	ShapeTile64
)

// TileDim is the row and column extent of the canonical tile shape.
const TileDim = 64

// String returns a human-readable name for the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeScalar:
		return "scalar"
	case ShapeVector:
		return "vector"
	case ShapeMatrix:
		return "matrix"
	case ShapeTile64:
		return "tile64"
	default:
		return fmt.Sprintf("invalid(%d)", uint8(k))
	}
}

// ShapeClass describes a tensor's rank and extents. The Kind is what
// kernels are keyed on; Rows and Cols carry the concrete extents.
// Storage is column-major: element (r, c) lives at index c*Rows + r.
type ShapeClass struct {
	Kind ShapeKind

	// Rows and Cols are the concrete extents. For ShapeScalar both are 1;
	// for ShapeVector, Rows is the length and Cols is 1.
	Rows, Cols int
}

// Scalar returns the rank-0 shape class.
func Scalar() ShapeClass {
	return ShapeClass{Kind: ShapeScalar, Rows: 1, Cols: 1}
}

// VectorOf returns the shape class of a length-n vector.
func VectorOf(n int) ShapeClass {
	return ShapeClass{Kind: ShapeVector, Rows: n, Cols: 1}
}

// MatrixOf returns the shape class of an r-by-c matrix.
func MatrixOf(r, c int) ShapeClass {
	return ShapeClass{Kind: ShapeMatrix, Rows: r, Cols: c}
}

// Tile64 returns the canonical 64x64 tile shape class.
func Tile64() ShapeClass {
	return ShapeClass{Kind: ShapeTile64, Rows: TileDim, Cols: TileDim}
}

// Elems returns the total number of elements in the shape.
func (s ShapeClass) Elems() int {
	return s.Rows * s.Cols
}

// Valid reports whether the shape class is well-formed: a recognized kind
// with positive extents, and exact 64x64 geometry for tiles.
func (s ShapeClass) Valid() bool {
	if s.Rows <= 0 || s.Cols <= 0 {
		return false
	}
	switch s.Kind {
	case ShapeScalar:
		return s.Rows == 1 && s.Cols == 1
	case ShapeVector:
		return s.Cols == 1
	case ShapeMatrix:
		return true
	case ShapeTile64:
		return s.Rows == TileDim && s.Cols == TileDim
	default:
		return false
	}
}

// String returns a human-readable description, e.g. "vector[7]" or
// "matrix[3x5]".
func (s ShapeClass) String() string {
	switch s.Kind {
	case ShapeScalar:
		return "scalar"
	case ShapeVector:
		return fmt.Sprintf("vector[%d]", s.Rows)
	case ShapeMatrix:
		return fmt.Sprintf("matrix[%dx%d]", s.Rows, s.Cols)
	case ShapeTile64:
		return "tile64"
	default:
		return s.Kind.String()
	}
}
