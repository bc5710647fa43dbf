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
	"errors"
	"fmt"
)

// Every failure in this package is deterministic given the same inputs
// and hardware, so nothing is retried internally and nothing is logged
// and swallowed. Callers distinguish program defects (unsupported
// operations, mismatched tensors) from environment limitations
// (ErrCapabilityUnavailable) with errors.Is.
var (
	// ErrCapabilityUnavailable means the operation has registered kernels
	// but none of their backends are present on the running hardware.
	// This is the designed manifestation of the no-sequential-fallback
	// policy: the request is terminal, the caller must choose a different
	// code path entirely.
	ErrCapabilityUnavailable = errors.New("spectral: no available backend for operation")

	// ErrOperationUnsupported means no kernel was ever registered for the
	// requested (operation, element type, shape class) combination. This
	// is a build-time gap surfaced at first use.
	ErrOperationUnsupported = errors.New("spectral: operation not registered for type/shape")

	// ErrShapeMismatch means the supplied tensors' shapes are inconsistent
	// with the request or with each other.
	ErrShapeMismatch = errors.New("spectral: shape mismatch")

	// ErrTypeMismatch means a supplied tensor's element type is
	// inconsistent with the request.
	ErrTypeMismatch = errors.New("spectral: element type mismatch")

	// ErrAlignment means supplied storage does not meet the minimum
	// alignment contract. Tensors allocated through this package are
	// always aligned; this catches externally wrapped buffers.
	ErrAlignment = errors.New("spectral: storage misaligned")
)

// ConfigurationError reports an internal invariant violation in the
// build-time kernel table, such as two entries with an identical key or a
// priority tie between distinct backends. It indicates a defect in the
// compiled-in registration files, not a runtime condition, so the
// registry panics with it rather than attempting graceful degradation.
type ConfigurationError struct {
	Detail string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("spectral: registry misconfigured: %s", e.Detail)
}
