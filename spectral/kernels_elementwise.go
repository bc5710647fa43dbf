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

//go:generate go run github.com/spectral-hpc/go-spectral/cmd/spectralgen -output . -targets all

// Elementwise kernel bodies. One instantiation exists per (element type,
// backend) pair; the lane count is a closure constant, so the hot loop is
// a fixed-width chunk walk with a single masked tail step.
//
// The cycling path implements the short-RHS broadcast contract: an RHS
// whose length divides the LHS length is repeated across it via modular
// loads, still one vector at a time.

// ewBinary builds a two-input elementwise kernel from a per-register op.
func ewBinary[T Element](lanes int, fn func(a, b vec[T]) vec[T]) Kernel {
	return func(dst *Tensor, in []*Tensor) error {
		n := dst.Elems()
		d := viewOf[T](dst.st, n)
		a := viewOf[T](in[0].st, in[0].Elems())
		b := viewOf[T](in[1].st, in[1].Elems())
		cycled := len(b) != n

		full := n - n%lanes
		for off := 0; off < full; off += lanes {
			va := loadVec(a[off:], lanes)
			var vb vec[T]
			if cycled {
				vb = loadVecCycled(b, off, lanes)
			} else {
				vb = loadVec(b[off:], lanes)
			}
			storeVec(fn(va, vb), d[off:])
		}
		if rem := n - full; rem > 0 {
			m := tailMask(lanes, rem)
			va := maskLoad(m, a[full:], 0)
			var vb vec[T]
			if cycled {
				vb = maskLoadCycled(m, b, full, 0)
			} else {
				vb = maskLoad(m, b[full:], 0)
			}
			maskStore(m, fn(va, vb), d[full:])
		}
		return nil
	}
}

// ewMulAdd builds the fused a*b + c kernel.
func ewMulAdd[T Element](lanes int) Kernel {
	return func(dst *Tensor, in []*Tensor) error {
		n := dst.Elems()
		d := viewOf[T](dst.st, n)
		a := viewOf[T](in[0].st, in[0].Elems())
		b := viewOf[T](in[1].st, in[1].Elems())
		c := viewOf[T](in[2].st, in[2].Elems())

		full := n - n%lanes
		for off := 0; off < full; off += lanes {
			va := loadVec(a[off:], lanes)
			vb := ewOperand(b, off, lanes, n)
			vc := ewOperand(c, off, lanes, n)
			storeVec(fmaVec(va, vb, vc), d[off:])
		}
		if rem := n - full; rem > 0 {
			m := tailMask(lanes, rem)
			va := maskLoad(m, a[full:], 0)
			vb := ewOperandMasked(m, b, full, n)
			vc := ewOperandMasked(m, c, full, n)
			maskStore(m, fmaVec(va, vb, vc), d[full:])
		}
		return nil
	}
}

// ewOperand loads one register of a possibly cycled operand.
func ewOperand[T Element](src []T, off, lanes, n int) vec[T] {
	if len(src) != n {
		return loadVecCycled(src, off, lanes)
	}
	return loadVec(src[off:], lanes)
}

func ewOperandMasked[T Element](m laneMask, src []T, off, n int) vec[T] {
	if len(src) != n {
		return maskLoadCycled(m, src, off, 0)
	}
	return maskLoad(m, src[off:], 0)
}

// registerElementwise registers OpAdd, OpSub, and OpMul for one element
// type on one backend, across every shape kind the elementwise contract
// covers. Called from the generated z_elementwise files.
func registerElementwise[T Element](r *Registry, be Backend) {
	et := TypeFor[T]()
	lanes := be.Lanes(et)
	for _, sk := range []ShapeKind{ShapeVector, ShapeMatrix, ShapeTile64} {
		r.Register(KernelEntry{Op: OpAdd, Type: et, Shape: sk, Backend: be,
			Fn: ewBinary(lanes, addVec[T])})
		r.Register(KernelEntry{Op: OpSub, Type: et, Shape: sk, Backend: be,
			Fn: ewBinary(lanes, subVec[T])})
		r.Register(KernelEntry{Op: OpMul, Type: et, Shape: sk, Backend: be,
			Fn: ewBinary(lanes, mulVec[T])})
	}
}
