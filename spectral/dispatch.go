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

// OperationRequest is the tuple handed to the dispatcher: the operation,
// its input tensors, and the element type and shape kind the kernel is
// keyed on (those of the first input; mixed-type contracts such as the
// widening tile matmul fix the result type in the kernel, not the key).
type OperationRequest struct {
	Op     Op
	Inputs []*Tensor

	// KeyType and KeyShape select the kernel. NewRequest derives them
	// from the first input.
	KeyType  ElementType
	KeyShape ShapeKind
}

// NewRequest builds a request keyed on the first input tensor.
func NewRequest(op Op, inputs ...*Tensor) (OperationRequest, error) {
	if op.Arity() == 0 {
		return OperationRequest{}, fmt.Errorf("%w: unknown op %v", ErrOperationUnsupported, op)
	}
	if len(inputs) != op.Arity() {
		return OperationRequest{}, fmt.Errorf("%w: %v takes %d inputs, got %d",
			ErrShapeMismatch, op, op.Arity(), len(inputs))
	}
	for i, in := range inputs {
		if in == nil {
			return OperationRequest{}, fmt.Errorf("%w: input %d is nil", ErrShapeMismatch, i)
		}
	}
	return OperationRequest{
		Op:       op,
		Inputs:   inputs,
		KeyType:  inputs[0].Type(),
		KeyShape: inputs[0].Shape().Kind,
	}, nil
}

// Select resolves a request against a capability descriptor using the
// default registry. See (*Registry).Select.
func Select(req OperationRequest, caps CapabilityDescriptor) (*KernelEntry, error) {
	return defaultRegistry.Select(req, caps)
}

// Select scans the request's candidates in descending priority order and
// returns the first whose backend the descriptor advertises.
//
// Selection is deterministic: the candidate order is a total order
// (priority, then registration sequence) fixed at init, and the
// descriptor is frozen, so the same request always yields the same entry.
//
// An empty candidate list fails with ErrOperationUnsupported: the
// combination was never compiled in. A non-empty list with no available
// backend fails with ErrCapabilityUnavailable. The second case is the
// enforcement point of the no-sequential-fallback policy: nothing is
// substituted, the request is terminal.
func (r *Registry) Select(req OperationRequest, caps CapabilityDescriptor) (*KernelEntry, error) {
	cands := r.Candidates(req.Op, req.KeyType, req.KeyShape)
	if len(cands) == 0 {
		return nil, fmt.Errorf("%w: %v for %v/%v",
			ErrOperationUnsupported, req.Op, req.KeyType, req.KeyShape)
	}
	for _, e := range cands {
		if caps.Supports(e.Backend) {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %v for %v/%v (registered backends: %v)",
		ErrCapabilityUnavailable, req.Op, req.KeyType, req.KeyShape, backendsOf(cands))
}

func backendsOf(entries []*KernelEntry) []Backend {
	out := make([]Backend, len(entries))
	for i, e := range entries {
		out[i] = e.Backend
	}
	return out
}
