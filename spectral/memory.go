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

import "unsafe"

// StorageAlign is the alignment of all storage allocated by this package.
// 128 bytes satisfies every compiled-in backend: the AMX paired
// load/store path moves 128-byte pairs of register rows, and AVX-512
// needs 64.
const StorageAlign = 128

// storage owns one tensor's contiguous backing memory. raw keeps the
// over-allocated block reachable; data is the aligned window kernels see.
// The Go heap does not move allocations, so the alignment computed here
// holds for the life of the block.
type storage struct {
	raw  []byte
	data []byte
}

// newStorage allocates n bytes aligned to StorageAlign, zero-filled.
func newStorage(n int) *storage {
	if n <= 0 {
		n = 1
	}
	raw := make([]byte, n+StorageAlign)
	off := alignOffset(unsafe.Pointer(&raw[0]), StorageAlign)
	return &storage{raw: raw, data: raw[off : off+n : off+n]}
}

// wrapStorage adopts an externally supplied buffer without copying.
// No alignment is imposed here; the execution engine validates the
// buffer against the selected kernel's backend at the boundary.
func wrapStorage(buf []byte) *storage {
	return &storage{raw: buf, data: buf}
}

// base returns the address of the first data byte.
func (s *storage) base() unsafe.Pointer {
	if len(s.data) == 0 {
		return nil
	}
	return unsafe.Pointer(&s.data[0])
}

// alignedTo reports whether the data window starts on an align-byte
// boundary.
func (s *storage) alignedTo(align int) bool {
	if align <= 1 {
		return true
	}
	return uintptr(s.base())%uintptr(align) == 0
}

// alignOffset returns how many bytes past p the next align boundary is.
func alignOffset(p unsafe.Pointer, align int) int {
	rem := int(uintptr(p) % uintptr(align))
	if rem == 0 {
		return 0
	}
	return align - rem
}

// viewOf reinterprets a storage window as a typed slice of n elements.
// Callers guarantee the window holds at least n elements of T.
func viewOf[T Element](s *storage, n int) []T {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(s.base()), n)
}
