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

// Backend identifies a hardware vector facility capable of executing a
// kernel. The set is closed; which backends actually have kernels
// registered is decided at build time by GOARCH/GOOS build tags.
type Backend uint8

const (
	// BackendPortable is the portable vector baseline. It is registered on
	// every architecture and is the lowest-priority entry a registry may
	// contain. There is no sequential backend below it.
	BackendPortable Backend = iota + 1

	// BackendNEON uses 128-bit ARM NEON vectors (arm64 builds).
	BackendNEON

	// BackendAVX2 uses 256-bit broadcast-capable vectors (amd64 builds).
	BackendAVX2

	// BackendAVX512 uses 512-bit vectors with native lane masking
	// (amd64 builds).
	BackendAVX512

	// BackendAMX is the Apple matrix coprocessor (darwin/arm64 builds).
	// Its kernels operate on whole 64x64 tiles via outer-product
	// accumulation into the z-register pool.
	BackendAMX
)

// Priority returns the dispatch rank of the backend. Higher wins. The
// ordering is fixed: matrix coprocessor above standard vector units above
// the portable baseline. Two distinct backends never share a rank; the
// registry treats an equal-priority collision as a configuration defect.
func (b Backend) Priority() int {
	switch b {
	case BackendAMX:
		return 100
	case BackendAVX512:
		return 60
	case BackendAVX2:
		return 50
	case BackendNEON:
		return 40
	case BackendPortable:
		return 10
	default:
		return 0
	}
}

// VectorBytes returns the backend's natural vector width in bytes.
// For AMX this is the 64-byte register row.
func (b Backend) VectorBytes() int {
	switch b {
	case BackendAMX:
		return 64
	case BackendAVX512:
		return 64
	case BackendAVX2:
		return 32
	case BackendNEON:
		return 16
	case BackendPortable:
		return 16
	default:
		return 0
	}
}

// MinAlign returns the minimum storage alignment in bytes the backend
// requires. AMX paired loads move 128 bytes and need 128-byte alignment;
// the others require their register width.
func (b Backend) MinAlign() int {
	if b == BackendAMX {
		return 128
	}
	return b.VectorBytes()
}

// Lanes returns the number of lanes of the given element type one vector
// register of this backend holds.
func (b Backend) Lanes(t ElementType) int {
	size := t.Size()
	if size == 0 {
		return 0
	}
	return b.VectorBytes() / size
}

// String returns a human-readable name for the backend.
func (b Backend) String() string {
	switch b {
	case BackendAMX:
		return "amx"
	case BackendAVX512:
		return "avx512"
	case BackendAVX2:
		return "avx2"
	case BackendNEON:
		return "neon"
	case BackendPortable:
		return "portable"
	default:
		return fmt.Sprintf("invalid(%d)", uint8(b))
	}
}
