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

// Package spectral provides fast, approximate algebraic computation over
// tensors by dispatching every operation to a hardware-parallel kernel.
//
// The library is built around a capability-driven dispatch core:
//
//   - Capabilities() probes the running CPU exactly once and returns an
//     immutable descriptor of the vector facilities it offers (Apple AMX,
//     ARM NEON, AVX2, AVX-512, and a portable vector baseline).
//   - A closed, build-time kernel registry maps (operation, element type,
//     shape class, backend) to a concrete vectorized implementation.
//   - Select picks the highest-priority registered kernel whose backend
//     the descriptor supports, and Execute runs it over aligned tensor
//     storage, handling vector-width-misaligned tails with masked lanes.
//
// There is deliberately no sequential fallback. If no vector-parallel
// kernel can serve a request on the running hardware, dispatch fails with
// ErrCapabilityUnavailable rather than silently degrading. The portable
// vector backend is the lowest-priority path that is ever registered.
//
// Basic usage:
//
//	a, _ := spectral.TensorOf(spectral.VectorOf(7), []float32{1, 2, 3, 4, 5, 6, 7})
//	b, _ := spectral.TensorOf(spectral.VectorOf(7), []float32{7, 6, 5, 4, 3, 2, 1})
//
//	sum, err := spectral.Compute(spectral.OpAdd, a, b)
//	if err != nil {
//		// ErrCapabilityUnavailable, ErrOperationUnsupported, ...
//	}
//	out, _ := spectral.DataOf[float32](sum)
//
// Results are approximate by design: accumulation order, rounding, and
// intermediate precision may differ between backends. Each operation
// documents its tolerance relative to a sequential reference; see the
// Op constants.
package spectral
