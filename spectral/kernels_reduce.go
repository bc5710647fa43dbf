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

// Reduction kernel bodies. The accumulator is a full register; the tail
// is folded in through a masked load padded with the additive identity,
// so the padding lanes are proven not to affect the sum. The final
// horizontal fold runs in tree order (see reduceSum), which is why the
// reduction tolerances are relative rather than exact for floats.

// sumKernel reduces a vector to the scalar sum of its elements.
func sumKernel[T Element](lanes int) Kernel {
	return func(dst *Tensor, in []*Tensor) error {
		n := in[0].Elems()
		a := viewOf[T](in[0].st, n)

		acc := splatVec[T](0, lanes)
		full := n - n%lanes
		for off := 0; off < full; off += lanes {
			acc = addVec(acc, loadVec(a[off:], lanes))
		}
		if rem := n - full; rem > 0 {
			m := tailMask(lanes, rem)
			acc = addVec(acc, maskLoad(m, a[full:], 0))
		}
		viewOf[T](dst.st, 1)[0] = reduceSum(acc)
		return nil
	}
}

// dotKernel computes the inner product of two equal-length vectors.
// Tail lanes are padded with zero on both operands; 0*0 contributes the
// additive identity to the accumulator.
func dotKernel[T Element](lanes int) Kernel {
	return func(dst *Tensor, in []*Tensor) error {
		n := in[0].Elems()
		a := viewOf[T](in[0].st, n)
		b := viewOf[T](in[1].st, n)

		acc := splatVec[T](0, lanes)
		full := n - n%lanes
		for off := 0; off < full; off += lanes {
			acc = fmaVec(loadVec(a[off:], lanes), loadVec(b[off:], lanes), acc)
		}
		if rem := n - full; rem > 0 {
			m := tailMask(lanes, rem)
			acc = fmaVec(maskLoad(m, a[full:], 0), maskLoad(m, b[full:], 0), acc)
		}
		viewOf[T](dst.st, 1)[0] = reduceSum(acc)
		return nil
	}
}
