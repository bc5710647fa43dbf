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

import "fmt"

// InvocationState tracks one operation through its lifecycle. Terminal
// states are StateCompleted and StateFailed; there is no retry state,
// since every failure is deterministic for the same inputs and hardware.
type InvocationState uint8

const (
	StateRequested InvocationState = iota + 1
	StateDispatched
	StateExecuting
	StateCompleted
	StateFailed
)

// String returns a human-readable name for the state.
func (s InvocationState) String() string {
	switch s {
	case StateRequested:
		return "requested"
	case StateDispatched:
		return "dispatched"
	case StateExecuting:
		return "executing"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("invalid(%d)", uint8(s))
	}
}

// Invocation records one dispatch-then-execute pass: the request, the
// entry that served it, and the outcome. Values are not reused; a caller
// wanting to retry must build a new request with different parameters,
// since replaying the same one deterministically reproduces the failure.
type Invocation struct {
	Request OperationRequest
	Entry   *KernelEntry
	Result  *Tensor
	Err     error

	state InvocationState
}

// State returns the invocation's current lifecycle state.
func (iv *Invocation) State() InvocationState { return iv.state }

// Invoke performs the full Requested -> Dispatched -> Executing ->
// {Completed, Failed} pass for one operation against the process
// capability descriptor and the default registry.
func Invoke(op Op, inputs ...*Tensor) *Invocation {
	iv := &Invocation{state: StateRequested}

	req, err := NewRequest(op, inputs...)
	if err != nil {
		iv.Err = err
		iv.state = StateFailed
		return iv
	}
	iv.Request = req

	entry, err := Select(req, Capabilities())
	if err != nil {
		iv.Err = err
		iv.state = StateFailed
		return iv
	}
	iv.Entry = entry
	iv.state = StateDispatched

	iv.state = StateExecuting
	out, err := Execute(entry, inputs...)
	if err != nil {
		iv.Err = err
		iv.state = StateFailed
		return iv
	}
	iv.Result = out
	iv.state = StateCompleted
	return iv
}

// Compute is the convenience form of Invoke: dispatch then execute,
// returning just the result tensor or the first error.
func Compute(op Op, inputs ...*Tensor) (*Tensor, error) {
	iv := Invoke(op, inputs...)
	if iv.Err != nil {
		return nil, iv.Err
	}
	return iv.Result, nil
}
