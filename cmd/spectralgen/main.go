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

// Command spectralgen generates the per-architecture elementwise kernel
// registration files in the spectral package.
//
// Usage:
//
//	spectralgen -output ../../spectral -targets all
//	spectralgen -output ../../spectral -targets portable,arm64
//
// Or via go:generate:
//
//	//go:generate spectralgen -output . -targets all
//
// The kernel table is closed at build time: adding a backend or widening
// a backend's type coverage means editing the target table here and
// regenerating, never registering at runtime.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	outputDir = flag.String("output", ".", "Output directory for generated files")
	targets   = flag.String("targets", "all", "Comma-separated targets ("+strings.Join(AvailableTargets(), ",")+") or 'all'")
)

func main() {
	flag.Parse()

	targetList := parseTargets(*targets)
	if len(targetList) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no valid targets specified\n")
		os.Exit(1)
	}

	gen := &Generator{
		OutputDir: *outputDir,
		Targets:   targetList,
	}
	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated registrations for targets: %s\n", strings.Join(targetList, ", "))
}

func parseTargets(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	if len(result) == 1 && result[0] == "all" {
		return AvailableTargets()
	}
	return result
}
