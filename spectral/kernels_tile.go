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

// Tile64 kernel bodies. The 64x64 tile is the z-register-pool geometry:
// the matmul walks it as 64 outer products, z[:,j] += A[:,p] * B[p,j],
// one broadcast-fma per register row. Tile extents are exact multiples of
// every backend's lane count, so these bodies carry no tail path at all.

// tileMatmulKernel multiplies two 64x64 tiles of the same element type.
func tileMatmulKernel[T Element](lanes int) Kernel {
	return func(dst *Tensor, in []*Tensor) error {
		a := viewOf[T](in[0].st, TileDim*TileDim)
		b := viewOf[T](in[1].st, TileDim*TileDim)
		d := viewOf[T](dst.st, TileDim*TileDim)

		for j := 0; j < TileDim; j++ {
			dcol := d[j*TileDim : (j+1)*TileDim]
			for p := 0; p < TileDim; p++ {
				vs := splatVec(b[j*TileDim+p], lanes)
				acol := a[p*TileDim : (p+1)*TileDim]
				for off := 0; off < TileDim; off += lanes {
					vd := loadVec(dcol[off:], lanes)
					va := loadVec(acol[off:], lanes)
					storeVec(fmaVec(va, vs, vd), dcol[off:])
				}
			}
		}
		return nil
	}
}

// tileMatmulWidenKernel is the mixed-type tile contract: int8 operands
// accumulated exactly into an int32 tile. lanes is the int32 lane count;
// the int8 loads widen lane-for-lane before the fma.
func tileMatmulWidenKernel(lanes int) Kernel {
	return func(dst *Tensor, in []*Tensor) error {
		a := viewOf[int8](in[0].st, TileDim*TileDim)
		b := viewOf[int8](in[1].st, TileDim*TileDim)
		d := viewOf[int32](dst.st, TileDim*TileDim)

		for j := 0; j < TileDim; j++ {
			dcol := d[j*TileDim : (j+1)*TileDim]
			for p := 0; p < TileDim; p++ {
				vs := splatVec(int32(b[j*TileDim+p]), lanes)
				acol := a[p*TileDim : (p+1)*TileDim]
				for off := 0; off < TileDim; off += lanes {
					vd := loadVec(dcol[off:], lanes)
					va := widenLoad(acol[off:], lanes)
					storeVec(fmaVec(va, vs, vd), dcol[off:])
				}
			}
		}
		return nil
	}
}

// widenLoad reads one register of int8 lanes widened to int32.
func widenLoad(src []int8, lanes int) vec[int32] {
	v := vec[int32]{lanes: make([]int32, lanes)}
	for i := range v.lanes {
		v.lanes[i] = int32(src[i])
	}
	return v
}
