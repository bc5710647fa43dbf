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
	"os"
	"strconv"
	"sync"
)

// CapabilityDescriptor records which backends the running hardware
// supports. It is computed exactly once per process and never mutated
// afterwards, so it may be read concurrently without synchronization.
//
// HasPortable is always true: the portable vector baseline exists on
// every target this package compiles for. A descriptor with only
// HasPortable set is not an error at probe time; requests that only have
// architecture-specific kernels fail later, at dispatch, with
// ErrCapabilityUnavailable.
type CapabilityDescriptor struct {
	HasAMX      bool
	HasNEON     bool
	HasAVX2     bool
	HasAVX512   bool
	HasPortable bool
}

// Supports reports whether the descriptor advertises the given backend.
func (d CapabilityDescriptor) Supports(b Backend) bool {
	switch b {
	case BackendAMX:
		return d.HasAMX
	case BackendAVX512:
		return d.HasAVX512
	case BackendAVX2:
		return d.HasAVX2
	case BackendNEON:
		return d.HasNEON
	case BackendPortable:
		return d.HasPortable
	default:
		return false
	}
}

// PortableOnly returns the descriptor of a machine with no recognized
// architecture-specific facilities. Useful for tests and for forcing the
// portable path.
func PortableOnly() CapabilityDescriptor {
	return CapabilityDescriptor{HasPortable: true}
}

var (
	probeOnce sync.Once
	probed    CapabilityDescriptor
)

// Capabilities probes the CPU on first call and returns the frozen
// descriptor on every call thereafter. Safe for concurrent use: the
// sync.Once initialization barrier publishes the descriptor before any
// caller observes it.
func Capabilities() CapabilityDescriptor {
	probeOnce.Do(func() {
		if portableOnlyEnv() {
			probed = PortableOnly()
			return
		}
		probed = detect()
	})
	return probed
}

// portableOnlyEnv checks the SPECTRAL_PORTABLE_ONLY environment variable.
// When set, the probe reports only the portable backend regardless of the
// actual CPU. This never enables a sequential path; it narrows dispatch
// to the portable vector kernels.
func portableOnlyEnv() bool {
	val := os.Getenv("SPECTRAL_PORTABLE_ONLY")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
