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

// Lane model shared by all kernel bodies. A vec is one register's worth
// of lanes; the lane count is fixed per (backend, element type) when a
// kernel is bound, so the hot loop contains no width branching. Tails are
// processed through masks: a masked load fills inactive lanes with an
// explicit padding value (the operation's identity for reductions), and a
// masked store leaves inactive destination lanes untouched. No kernel
// ever touches tail elements one at a time outside this model.

type vec[T Element] struct {
	lanes []T
}

type laneMask struct {
	bits []bool
}

// tailMask returns a mask with the first count of lanes active.
func tailMask(lanes, count int) laneMask {
	if count > lanes {
		count = lanes
	}
	bits := make([]bool, lanes)
	for i := 0; i < count; i++ {
		bits[i] = true
	}
	return laneMask{bits: bits}
}

// loadVec reads one full register from src.
func loadVec[T Element](src []T, lanes int) vec[T] {
	v := vec[T]{lanes: make([]T, lanes)}
	copy(v.lanes, src[:lanes])
	return v
}

// loadVecCycled reads lanes elements starting at off, wrapping modulo
// len(src). Backs the broadcast-by-cycling contract for elementwise ops
// whose RHS is shorter than the LHS.
func loadVecCycled[T Element](src []T, off, lanes int) vec[T] {
	v := vec[T]{lanes: make([]T, lanes)}
	n := len(src)
	for i := range v.lanes {
		v.lanes[i] = src[(off+i)%n]
	}
	return v
}

// maskLoad reads the active lanes from src and fills inactive lanes with
// pad. Padding with the operation identity is what makes the final,
// partially filled register safe to feed through the same vector ops as
// the body.
func maskLoad[T Element](m laneMask, src []T, pad T) vec[T] {
	v := vec[T]{lanes: make([]T, len(m.bits))}
	for i, on := range m.bits {
		if on {
			v.lanes[i] = src[i]
		} else {
			v.lanes[i] = pad
		}
	}
	return v
}

// maskLoadCycled is maskLoad with modular indexing from off.
func maskLoadCycled[T Element](m laneMask, src []T, off int, pad T) vec[T] {
	v := vec[T]{lanes: make([]T, len(m.bits))}
	n := len(src)
	for i, on := range m.bits {
		if on {
			v.lanes[i] = src[(off+i)%n]
		} else {
			v.lanes[i] = pad
		}
	}
	return v
}

// storeVec writes one full register to dst.
func storeVec[T Element](v vec[T], dst []T) {
	copy(dst, v.lanes)
}

// maskStore writes only the active lanes to dst.
func maskStore[T Element](m laneMask, v vec[T], dst []T) {
	for i, on := range m.bits {
		if on {
			dst[i] = v.lanes[i]
		}
	}
}

// splatVec fills every lane with the same value.
func splatVec[T Element](val T, lanes int) vec[T] {
	v := vec[T]{lanes: make([]T, lanes)}
	for i := range v.lanes {
		v.lanes[i] = val
	}
	return v
}

func addVec[T Element](a, b vec[T]) vec[T] {
	out := vec[T]{lanes: make([]T, len(a.lanes))}
	for i := range out.lanes {
		out.lanes[i] = a.lanes[i] + b.lanes[i]
	}
	return out
}

func subVec[T Element](a, b vec[T]) vec[T] {
	out := vec[T]{lanes: make([]T, len(a.lanes))}
	for i := range out.lanes {
		out.lanes[i] = a.lanes[i] - b.lanes[i]
	}
	return out
}

func mulVec[T Element](a, b vec[T]) vec[T] {
	out := vec[T]{lanes: make([]T, len(a.lanes))}
	for i := range out.lanes {
		out.lanes[i] = a.lanes[i] * b.lanes[i]
	}
	return out
}

// fmaVec computes a*b + c per lane.
func fmaVec[T Element](a, b, c vec[T]) vec[T] {
	out := vec[T]{lanes: make([]T, len(a.lanes))}
	for i := range out.lanes {
		out.lanes[i] = a.lanes[i]*b.lanes[i] + c.lanes[i]
	}
	return out
}

// reduceSum folds the register to a scalar in tree order, matching the
// horizontal-add sequence of the hardware reductions. The order differs
// from left-to-right accumulation; the Op tolerance contracts account
// for it.
func reduceSum[T Element](v vec[T]) T {
	n := len(v.lanes)
	buf := make([]T, n)
	copy(buf, v.lanes)
	for n > 1 {
		half := (n + 1) / 2
		for i := 0; i < n/2; i++ {
			buf[i] = buf[i] + buf[i+half]
		}
		n = half
	}
	return buf[0]
}
