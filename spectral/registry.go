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

// kernelKey is the exact lookup key for one registry row.
type kernelKey struct {
	op Op
	et ElementType
	sk ShapeKind
	be Backend
}

// lookupKey groups the candidates of one (operation, type, shape)
// combination across backends.
type lookupKey struct {
	op Op
	et ElementType
	sk ShapeKind
}

// Registry is the closed kernel table. The package-level default is
// populated from init functions in the build-tag-gated z_register files
// and is immutable afterwards: nothing inserts at runtime, so concurrent
// lookups need no locking. Separate Registry values exist only so tests
// can construct known table contents.
type Registry struct {
	exact      map[kernelKey]*KernelEntry
	candidates map[lookupKey][]*KernelEntry
	nextSeq    int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		exact:      make(map[kernelKey]*KernelEntry),
		candidates: make(map[lookupKey][]*KernelEntry),
	}
}

// Register inserts one entry. It panics with a ConfigurationError on a
// duplicate key or on a priority tie between distinct backends: both are
// defects in the compiled-in registration files, detected at init, never
// at request time.
func (r *Registry) Register(e KernelEntry) {
	if e.Fn == nil {
		panic(&ConfigurationError{Detail: fmt.Sprintf("nil kernel for %v", &e)})
	}
	if e.Backend.Priority() == 0 {
		panic(&ConfigurationError{Detail: fmt.Sprintf("unranked backend for %v", &e)})
	}
	key := kernelKey{op: e.Op, et: e.Type, sk: e.Shape, be: e.Backend}
	if _, dup := r.exact[key]; dup {
		panic(&ConfigurationError{Detail: fmt.Sprintf("duplicate entry %v", &e)})
	}

	e.seq = r.nextSeq
	r.nextSeq++
	entry := &e
	r.exact[key] = entry

	lk := lookupKey{op: e.Op, et: e.Type, sk: e.Shape}
	list := r.candidates[lk]
	for _, other := range list {
		if other.Priority() == entry.Priority() {
			panic(&ConfigurationError{Detail: fmt.Sprintf(
				"priority tie between %v and %v", other, entry)})
		}
	}
	// Insert keeping descending priority; seq breaks ties, which the
	// check above has already excluded.
	pos := len(list)
	for i, other := range list {
		if entry.Priority() > other.Priority() {
			pos = i
			break
		}
	}
	list = append(list, nil)
	copy(list[pos+1:], list[pos:])
	list[pos] = entry
	r.candidates[lk] = list
}

// Candidates returns the entries registered for (op, et, sk) in
// descending priority order. An empty result means the combination was
// never registered, which Select reports as ErrOperationUnsupported, a
// distinct condition from no backend being available on this hardware.
func (r *Registry) Candidates(op Op, et ElementType, sk ShapeKind) []*KernelEntry {
	return r.candidates[lookupKey{op: op, et: et, sk: sk}]
}

// Lookup returns the entry with the exact key, or nil.
func (r *Registry) Lookup(op Op, et ElementType, sk ShapeKind, be Backend) *KernelEntry {
	return r.exact[kernelKey{op: op, et: et, sk: sk, be: be}]
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	return len(r.exact)
}

// defaultRegistry is the process-wide closed table. The z_register files
// fill it during package init; it is read-only for the rest of the
// process.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the build-time kernel table for this binary.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
