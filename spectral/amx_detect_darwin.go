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

//go:build darwin && arm64

package spectral

import "golang.org/x/sys/unix"

// hasAMX indicates whether the Apple AMX matrix coprocessor is present.
// Every Apple silicon generation so far reports an amx_version; the
// sysctl is simply absent on other AArch64 systems.
var hasAMX = detectAMX()

// detectAMX checks for the AMX coprocessor via sysctl on macOS.
func detectAMX() bool {
	v, err := unix.SysctlUint32("hw.optional.amx_version")
	if err != nil {
		return false
	}
	return v > 0
}
