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

//go:build arm64

package spectral

// AArch64 NEON registrations for the fused, reduction, and matmul
// kernels. The tile matmuls registered here are the standard-vector-unit
// entries for the 64x64 key; on Apple silicon the AMX entries
// (register_darwin_arm64.go) outrank them.
func init() {
	r := defaultRegistry
	be := BackendNEON

	r.Register(KernelEntry{Op: OpMulAdd, Type: TypeFloat32, Shape: ShapeVector, Backend: be,
		Fn: ewMulAdd[float32](be.Lanes(TypeFloat32))})

	r.Register(KernelEntry{Op: OpSum, Type: TypeInt32, Shape: ShapeVector, Backend: be,
		Fn: sumKernel[int32](be.Lanes(TypeInt32))})
	r.Register(KernelEntry{Op: OpSum, Type: TypeFloat32, Shape: ShapeVector, Backend: be,
		Fn: sumKernel[float32](be.Lanes(TypeFloat32))})

	r.Register(KernelEntry{Op: OpDot, Type: TypeFloat32, Shape: ShapeVector, Backend: be,
		Fn: dotKernel[float32](be.Lanes(TypeFloat32))})

	r.Register(KernelEntry{Op: OpMatMul, Type: TypeFloat32, Shape: ShapeMatrix, Backend: be,
		Fn: matmulKernel[float32](be.Lanes(TypeFloat32))})
	r.Register(KernelEntry{Op: OpMatMul, Type: TypeFloat32, Shape: ShapeTile64, Backend: be,
		Fn: tileMatmulKernel[float32](be.Lanes(TypeFloat32))})
	r.Register(KernelEntry{Op: OpMatMul, Type: TypeInt8, Shape: ShapeTile64, Backend: be,
		Fn: tileMatmulWidenKernel(be.Lanes(TypeInt32))})
}
