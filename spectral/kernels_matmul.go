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

// matmulKernel multiplies an RxK matrix by a KxC matrix, column-major:
// for each output column j and inner index p, the scalar B[p,j] is
// broadcast and fused-multiply-added against column p of A. This keeps
// every inner step a full-register axpy over the rows of A, with one
// masked tail chunk when R is not a lane multiple.
//
// The destination arrives zero-filled from the engine, which is the
// accumulation identity.
func matmulKernel[T Element](lanes int) Kernel {
	return func(dst *Tensor, in []*Tensor) error {
		rows := in[0].Shape().Rows
		inner := in[0].Shape().Cols
		cols := in[1].Shape().Cols

		a := viewOf[T](in[0].st, rows*inner)
		b := viewOf[T](in[1].st, inner*cols)
		d := viewOf[T](dst.st, rows*cols)

		full := rows - rows%lanes
		for j := 0; j < cols; j++ {
			dcol := d[j*rows : (j+1)*rows]
			for p := 0; p < inner; p++ {
				vs := splatVec(b[j*inner+p], lanes)
				acol := a[p*rows : (p+1)*rows]
				for off := 0; off < full; off += lanes {
					vd := loadVec(dcol[off:], lanes)
					va := loadVec(acol[off:], lanes)
					storeVec(fmaVec(va, vs, vd), dcol[off:])
				}
				if rem := rows - full; rem > 0 {
					m := tailMask(lanes, rem)
					vd := maskLoad(m, dcol[full:], 0)
					va := maskLoad(m, acol[full:], 0)
					maskStore(m, fmaVec(va, vs, vd), dcol[full:])
				}
			}
		}
		return nil
	}
}
