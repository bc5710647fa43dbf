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

// Package batch runs independent tensor operations in parallel over a
// persistent worker pool. Parallelism lives entirely on the caller side
// of the dispatch core: each job is a full dispatch-then-execute pass on
// its own tensors, and the frozen capability descriptor and kernel table
// are shared read-only across workers.
package batch

import (
	"github.com/spectral-hpc/go-spectral/spectral"
	"github.com/spectral-hpc/go-spectral/spectral/contrib/workerpool"
)

// Job is one operation request to run as part of a batch. Inputs must be
// disjoint from every other job's inputs or read-only for the duration
// of the run.
type Job struct {
	Op     spectral.Op
	Inputs []*spectral.Tensor
}

// Result pairs one job's output tensor with its error. Exactly one of
// the two fields is set. Errors are per-job: a capability failure on one
// job does not stop the rest of the batch.
type Result struct {
	Tensor *spectral.Tensor
	Err    error
}

// Runner executes batches over a persistent pool.
type Runner struct {
	pool *workerpool.Pool
}

// NewRunner creates a runner with the given worker count.
// If workers <= 0, GOMAXPROCS is used.
func NewRunner(workers int) *Runner {
	return &Runner{pool: workerpool.New(workers)}
}

// Close releases the runner's workers. Pending batches complete first.
func (r *Runner) Close() {
	r.pool.Close()
}

// Run executes all jobs and returns their results in job order. Atomic
// work stealing balances mixed tensor extents across workers.
func (r *Runner) Run(jobs []Job) []Result {
	results := make([]Result, len(jobs))
	r.pool.ParallelForAtomic(len(jobs), func(i int) {
		out, err := spectral.Compute(jobs[i].Op, jobs[i].Inputs...)
		results[i] = Result{Tensor: out, Err: err}
	})
	return results
}
