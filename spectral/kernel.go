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

// Kernel is one bound, vectorized implementation. The destination tensor
// is freshly allocated by the engine before the call; inputs are never
// mutated. Lane width and element type are baked in at registration, so
// the body contains no per-call dispatch.
type Kernel func(dst *Tensor, inputs []*Tensor) error

// KernelEntry is one row of the closed kernel table: an exact
// (operation, element type, shape kind, backend) key, the callable, and
// the dispatch priority derived from the backend.
type KernelEntry struct {
	Op      Op
	Type    ElementType
	Shape   ShapeKind
	Backend Backend
	Fn      Kernel

	// seq is the registration order, used only as the deterministic
	// tie-break that a well-formed registry never needs.
	seq int
}

// Priority returns the entry's dispatch rank, derived from its backend.
func (e *KernelEntry) Priority() int {
	return e.Backend.Priority()
}

// String identifies the entry for error messages.
func (e *KernelEntry) String() string {
	return fmt.Sprintf("%v/%v/%v on %v", e.Op, e.Type, e.Shape, e.Backend)
}
