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

//go:build arm64

package spectral

import "golang.org/x/sys/cpu"

// detect probes the AArch64 vector facilities. NEON (ASIMD) is part of
// the ARMv8-A base architecture, so HasNEON is effectively always true;
// we still read the cpu package rather than hard-coding it. The AMX
// matrix coprocessor is detected separately (amx_detect_darwin.go) since
// it only exists on Apple silicon.
func detect() CapabilityDescriptor {
	return CapabilityDescriptor{
		HasAMX:      hasAMX,
		HasNEON:     cpu.ARM64.HasASIMD,
		HasPortable: true,
	}
}
