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

// ElementType identifies one of the closed set of numeric primitives a
// tensor may hold. The set is fixed: kernels are monomorphized per type at
// build time, so there is no "any type" path.
type ElementType uint8

const (
	// TypeInvalid is the zero value and never a valid tensor type.
	TypeInvalid ElementType = iota

	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeUint8
	TypeFloat32
	TypeFloat64
)

// Element is the constraint matching exactly the Go types behind the
// ElementType enumeration. Kernel bodies are generic over Element and
// instantiated once per concrete type by the generated wrappers.
type Element interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~float32 | ~float64
}

// Size returns the element size in bytes.
func (t ElementType) Size() int {
	switch t {
	case TypeInt8, TypeUint8:
		return 1
	case TypeInt16:
		return 2
	case TypeInt32, TypeFloat32:
		return 4
	case TypeInt64, TypeFloat64:
		return 8
	default:
		return 0
	}
}

// Valid reports whether t is a member of the closed type set.
func (t ElementType) Valid() bool {
	return t > TypeInvalid && t <= TypeFloat64
}

// String returns a human-readable name for the element type.
func (t ElementType) String() string {
	switch t {
	case TypeInt8:
		return "int8"
	case TypeInt16:
		return "int16"
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	case TypeUint8:
		return "uint8"
	case TypeFloat32:
		return "float32"
	case TypeFloat64:
		return "float64"
	default:
		return fmt.Sprintf("invalid(%d)", uint8(t))
	}
}

// TypeFor returns the ElementType tag for the Go type T.
func TypeFor[T Element]() ElementType {
	var zero T
	switch any(zero).(type) {
	case int8:
		return TypeInt8
	case int16:
		return TypeInt16
	case int32:
		return TypeInt32
	case int64:
		return TypeInt64
	case uint8:
		return TypeUint8
	case float32:
		return TypeFloat32
	case float64:
		return TypeFloat64
	default:
		// Named types with an Element underlying type are excluded from
		// the closed set on purpose: the registry is keyed on the exact
		// primitive.
		return TypeInvalid
	}
}
