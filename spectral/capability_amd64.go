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

//go:build amd64

package spectral

import "golang.org/x/sys/cpu"

// detect probes the x86-64 vector facilities. AVX512 here means the
// F+BW+DQ+VL server profile reported by x/sys/cpu; AVX2 covers the
// 256-bit broadcast-capable units present on everything since Haswell.
func detect() CapabilityDescriptor {
	return CapabilityDescriptor{
		HasAVX2:     cpu.X86.HasAVX2,
		HasAVX512:   cpu.X86.HasAVX512,
		HasPortable: true,
	}
}
