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

//go:build darwin && arm64

package spectral

// AMX registrations, compiled into Apple silicon builds only. These are
// the highest-priority entries for the Tile64 keys: whole-tile matmul via
// outer-product accumulation in the z-register pool, and row-wide
// elementwise ops over 64-byte register rows. Whether they are selected
// at runtime still depends on the probed descriptor.
func init() {
	r := defaultRegistry
	be := BackendAMX
	lanes := be.Lanes(TypeFloat32)

	r.Register(KernelEntry{Op: OpMatMul, Type: TypeFloat32, Shape: ShapeTile64, Backend: be,
		Fn: tileMatmulKernel[float32](lanes)})
	r.Register(KernelEntry{Op: OpMatMul, Type: TypeInt8, Shape: ShapeTile64, Backend: be,
		Fn: tileMatmulWidenKernel(be.Lanes(TypeInt32))})

	r.Register(KernelEntry{Op: OpAdd, Type: TypeFloat32, Shape: ShapeTile64, Backend: be,
		Fn: ewBinary(lanes, addVec[float32])})
	r.Register(KernelEntry{Op: OpSub, Type: TypeFloat32, Shape: ShapeTile64, Backend: be,
		Fn: ewBinary(lanes, subVec[float32])})
	r.Register(KernelEntry{Op: OpMul, Type: TypeFloat32, Shape: ShapeTile64, Backend: be,
		Fn: ewBinary(lanes, mulVec[float32])})
}
