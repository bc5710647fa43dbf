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

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"golang.org/x/tools/imports"
)

// Group is one backend's element type coverage within a target file.
type Group struct {
	Backend string
	Types   []string
}

// Target describes one generated registration file: which build tag it
// compiles under and which (backend, type) registrations it holds.
type Target struct {
	Name     string
	BuildTag string // empty means no constraint
	Comment  string
	Groups   []Group
}

// targetTable is the closed kernel registration inventory. The portable
// target covers every element type so that dispatch always finds a
// vectorized baseline; architecture targets cover the types their units
// accelerate.
var targetTable = []Target{
	{
		Name: "portable",
		Comment: "Portable elementwise kernel registrations: every element type in the\n" +
			"closed set, at the lowest dispatch priority. Registered on all\n" +
			"architectures.",
		Groups: []Group{
			{Backend: "BackendPortable", Types: []string{
				"int8", "int16", "int32", "int64", "uint8", "float32", "float64"}},
		},
	},
	{
		Name:     "amd64",
		BuildTag: "amd64",
		Comment: "AVX2 and AVX-512 elementwise kernel registrations, compiled into amd64\n" +
			"builds only. Dispatch picks them over the portable entries when the\n" +
			"capability descriptor advertises the unit.",
		Groups: []Group{
			{Backend: "BackendAVX2", Types: []string{"int32", "float32", "float64"}},
			{Backend: "BackendAVX512", Types: []string{"int32", "float32", "float64"}},
		},
	},
	{
		Name:     "arm64",
		BuildTag: "arm64",
		Comment:  "NEON elementwise kernel registrations, compiled into arm64 builds only.",
		Groups: []Group{
			{Backend: "BackendNEON", Types: []string{"int8", "int32", "float32"}},
		},
	},
}

// AvailableTargets returns the names of all targets in table order.
func AvailableTargets() []string {
	names := make([]string, len(targetTable))
	for i, t := range targetTable {
		names[i] = t.Name
	}
	return names
}

var fileTemplate = template.Must(template.New("registrations").Parse(
	`// Code generated by spectralgen; DO NOT EDIT.
{{if .BuildTag}}
//go:build {{.BuildTag}}
{{end}}
// {{.CommentLines}}

package spectral

func init() {
{{- range $gi, $g := .Groups}}
{{- if $gi}}
{{end}}
{{- range $g.Types}}
	registerElementwise[{{.}}](defaultRegistry, {{$g.Backend}})
{{- end}}
{{- end}}
}
`))

// Generator emits one registration file per requested target.
type Generator struct {
	OutputDir string
	Targets   []string
}

// Run generates all requested target files into OutputDir.
func (g *Generator) Run() error {
	for _, name := range g.Targets {
		t, ok := findTarget(name)
		if !ok {
			return fmt.Errorf("unknown target %q", name)
		}
		if err := g.emit(t); err != nil {
			return fmt.Errorf("target %s: %w", name, err)
		}
	}
	return nil
}

func findTarget(name string) (Target, bool) {
	for _, t := range targetTable {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}

func (g *Generator) emit(t Target) error {
	var buf bytes.Buffer
	data := struct {
		Target
		CommentLines string
	}{t, commentLines(t.Comment)}
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return err
	}

	outPath := filepath.Join(g.OutputDir, "z_elementwise_"+t.Name+".go")
	formatted, err := imports.Process(outPath, buf.Bytes(), nil)
	if err != nil {
		return fmt.Errorf("formatting generated code: %w", err)
	}
	return os.WriteFile(outPath, formatted, 0o644)
}

// commentLines joins a multi-line comment body with comment markers so
// the template can hold the text as a single field.
func commentLines(s string) string {
	var out bytes.Buffer
	for i, line := range bytes.Split([]byte(s), []byte("\n")) {
		if i > 0 {
			out.WriteString("\n// ")
		}
		out.Write(line)
	}
	return out.String()
}
