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

func TestInvokeCompleted(t *testing.T) {
	a, _ := TensorOf(VectorOf(7), []float32{1, 2, 3, 4, 5, 6, 7})
	b, _ := TensorOf(VectorOf(7), []float32{7, 6, 5, 4, 3, 2, 1})

	iv := Invoke(OpAdd, a, b)
	require.NoError(t, iv.Err)
	assert.Equal(t, StateCompleted, iv.State())
	require.NotNil(t, iv.Entry)
	require.NotNil(t, iv.Result)

	got, _ := DataOf[float32](iv.Result)
	assert.Equal(t, []float32{8, 8, 8, 8, 8, 8, 8}, got)
}

func TestInvokeOperationUnsupported(t *testing.T) {
	// No reduction kernel exists for uint8 anywhere in the table: a
	// build-level gap, not a hardware condition, and not a crash.
	a, _ := NewTensor(TypeUint8, VectorOf(16))

	iv := Invoke(OpSum, a)
	assert.Equal(t, StateFailed, iv.State())
	assert.ErrorIs(t, iv.Err, ErrOperationUnsupported)
	assert.Nil(t, iv.Result)
}

func TestInvokeBadRequestFailsBeforeDispatch(t *testing.T) {
	a, _ := NewTensor(TypeFloat32, VectorOf(4))

	iv := Invoke(OpAdd, a)
	assert.Equal(t, StateFailed, iv.State())
	assert.Nil(t, iv.Entry)
	assert.ErrorIs(t, iv.Err, ErrShapeMismatch)
}

func TestComputeEndToEndLength7(t *testing.T) {
	// Elementwise addition of two length-7 tensors: one full register
	// plus a masked tail on every compiled-in backend, exact output.
	a, _ := TensorOf(VectorOf(7), []float32{0.5, 1.5, 2.5, 3.5, 4.5, 5.5, 6.5})
	b, _ := TensorOf(VectorOf(7), []float32{1, 1, 1, 1, 1, 1, 1})

	out, err := Compute(OpAdd, a, b)
	require.NoError(t, err)
	got, _ := DataOf[float32](out)
	assert.Equal(t, []float32{1.5, 2.5, 3.5, 4.5, 5.5, 6.5, 7.5}, got)
}

func TestComputeMatMulIdentity(t *testing.T) {
	id, err := FromRows([][]float32{{1, 0}, {0, 1}})
	require.NoError(t, err)
	m, err := FromRows([][]float32{{3, 4}, {5, 6}})
	require.NoError(t, err)

	out, err := Compute(OpMatMul, m, id)
	require.NoError(t, err)
	dm, _ := DataOf[float32](m)
	dout, _ := DataOf[float32](out)
	assert.Equal(t, dm, dout)
}

func TestInvocationStateString(t *testing.T) {
	assert.Equal(t, "requested", StateRequested.String())
	assert.Equal(t, "failed", StateFailed.String())
}
