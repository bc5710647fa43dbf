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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allBackends is a descriptor claiming every facility, for exercising
// priority order without depending on the test machine.
var allBackends = CapabilityDescriptor{
	HasAMX: true, HasNEON: true, HasAVX2: true, HasAVX512: true, HasPortable: true,
}

func tileInt8Request(t *testing.T) OperationRequest {
	t.Helper()
	a, err := NewTensor(TypeInt8, Tile64())
	require.NoError(t, err)
	b, err := NewTensor(TypeInt8, Tile64())
	require.NoError(t, err)
	req, err := NewRequest(OpMatMul, a, b)
	require.NoError(t, err)
	return req
}

func TestSelectPrefersMatrixCoprocessor(t *testing.T) {
	r := NewRegistry()
	r.Register(KernelEntry{Op: OpMatMul, Type: TypeInt8, Shape: ShapeTile64,
		Backend: BackendNEON, Fn: nopKernel})
	r.Register(KernelEntry{Op: OpMatMul, Type: TypeInt8, Shape: ShapeTile64,
		Backend: BackendAMX, Fn: nopKernel})

	entry, err := r.Select(tileInt8Request(t), allBackends)
	require.NoError(t, err)
	// The coprocessor entry wins even though a standard vector-unit
	// kernel is registered for the same key.
	assert.Equal(t, BackendAMX, entry.Backend)
}

func TestSelectFallsThroughToAvailable(t *testing.T) {
	r := NewRegistry()
	r.Register(KernelEntry{Op: OpMatMul, Type: TypeInt8, Shape: ShapeTile64,
		Backend: BackendAMX, Fn: nopKernel})
	r.Register(KernelEntry{Op: OpMatMul, Type: TypeInt8, Shape: ShapeTile64,
		Backend: BackendPortable, Fn: nopKernel})

	entry, err := r.Select(tileInt8Request(t), PortableOnly())
	require.NoError(t, err)
	assert.Equal(t, BackendPortable, entry.Backend)
}

func TestSelectCapabilityUnavailable(t *testing.T) {
	// Only architecture-specific entries registered, portable-only
	// hardware: the request must fail, never silently degrade.
	r := NewRegistry()
	r.Register(KernelEntry{Op: OpMatMul, Type: TypeInt8, Shape: ShapeTile64,
		Backend: BackendAMX, Fn: nopKernel})
	r.Register(KernelEntry{Op: OpMatMul, Type: TypeInt8, Shape: ShapeTile64,
		Backend: BackendNEON, Fn: nopKernel})

	entry, err := r.Select(tileInt8Request(t), PortableOnly())
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, ErrCapabilityUnavailable)
}

func TestSelectOperationUnsupported(t *testing.T) {
	r := NewRegistry()
	entry, err := r.Select(tileInt8Request(t), allBackends)
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, ErrOperationUnsupported)
}

func TestSelectDeterministic(t *testing.T) {
	req := tileInt8Request(t)
	first, err := Select(req, Capabilities())
	require.NoError(t, err)
	second, err := Select(req, Capabilities())
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestNewRequestArity(t *testing.T) {
	a, err := NewTensor(TypeFloat32, VectorOf(4))
	require.NoError(t, err)

	_, err = NewRequest(OpAdd, a)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = NewRequest(OpSum, a, a)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = NewRequest(Op(0), a)
	assert.ErrorIs(t, err, ErrOperationUnsupported)
}

func TestNewRequestKeyFromFirstInput(t *testing.T) {
	a, err := NewTensor(TypeInt8, Tile64())
	require.NoError(t, err)
	b, err := NewTensor(TypeInt8, Tile64())
	require.NoError(t, err)

	req, err := NewRequest(OpMatMul, a, b)
	require.NoError(t, err)
	assert.Equal(t, TypeInt8, req.KeyType)
	assert.Equal(t, ShapeTile64, req.KeyShape)
}
