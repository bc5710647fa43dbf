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
	"fmt"
	"math"
	"sync"
	"testing"
)

// Reference computations used only for verification. These are the
// sequential formulations the tolerance contracts are stated against;
// nothing in the library itself runs them.

func refAdd(a, b []float32) []float32 {
	out := make([]float32, len(a))
	for i := range a {
		out[i] = a[i] + b[i%len(b)]
	}
	return out
}

func refSum(a []float32) float32 {
	var s float32
	for _, v := range a {
		s += v
	}
	return s
}

func refDot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// refMatMul multiplies column-major a (rows x inner) by b (inner x cols).
func refMatMul(a, b []float64, rows, inner, cols int) []float64 {
	out := make([]float64, rows*cols)
	for j := 0; j < cols; j++ {
		for p := 0; p < inner; p++ {
			s := b[j*inner+p]
			for r := 0; r < rows; r++ {
				out[j*rows+r] += a[p*rows+r] * s
			}
		}
	}
	return out
}

func relClose(got, want, tol float64) bool {
	if want == 0 {
		return math.Abs(got) <= tol
	}
	return math.Abs(got-want)/math.Abs(want) <= tol
}

func rampF32(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i%13) - 6
	}
	return out
}

func TestAddAllExtents(t *testing.T) {
	// Cover exactly-divisible and tail extents up to several multiples of
	// the widest lane count (AVX-512 float32: 16 lanes).
	for n := 1; n <= 3*16+1; n++ {
		av := rampF32(n)
		bv := make([]float32, n)
		for i := range bv {
			bv[i] = float32(i)*0.5 - 3
		}
		a, _ := TensorOf(VectorOf(n), av)
		b, _ := TensorOf(VectorOf(n), bv)

		out, err := Compute(OpAdd, a, b)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		got, _ := DataOf[float32](out)
		want := refAdd(av, bv)
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("n=%d elem %d: got %v, want %v", n, i, got[i], want[i])
			}
		}
	}
}

func TestAddTailBitExact(t *testing.T) {
	// One past a full register: the remainder element must be bit-equal
	// to scalar addition while the body matches the vector path.
	entry := DefaultRegistry().Lookup(OpAdd, TypeFloat32, ShapeVector, BackendPortable)
	if entry == nil {
		t.Fatal("portable add kernel missing")
	}
	lanes := BackendPortable.Lanes(TypeFloat32)
	n := lanes + 1

	av := rampF32(n)
	bv := rampF32(n)
	av[n-1] = 0.1
	bv[n-1] = 0.2
	a, _ := TensorOf(VectorOf(n), av)
	b, _ := TensorOf(VectorOf(n), bv)

	out, err := Execute(entry, a, b)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := DataOf[float32](out)
	if got[n-1] != av[n-1]+bv[n-1] {
		t.Errorf("tail element: got %v, want %v", got[n-1], av[n-1]+bv[n-1])
	}
	for i := 0; i < lanes; i++ {
		if got[i] != av[i]+bv[i] {
			t.Errorf("body element %d: got %v, want %v", i, got[i], av[i]+bv[i])
		}
	}
}

func TestElementwiseCycledRHS(t *testing.T) {
	// RHS of length 4 repeated across an LHS of length 12.
	av := rampF32(12)
	bv := []float32{1, 2, 3, 4}
	a, _ := TensorOf(VectorOf(12), av)
	b, _ := TensorOf(VectorOf(4), bv)

	out, err := Compute(OpAdd, a, b)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := DataOf[float32](out)
	want := refAdd(av, bv)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("elem %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSubMulInt(t *testing.T) {
	av := []int32{10, 20, 30, 40, 50, 60, 70}
	bv := []int32{1, 2, 3, 4, 5, 6, 7}
	a, _ := TensorOf(VectorOf(7), av)
	b, _ := TensorOf(VectorOf(7), bv)

	sub, err := Compute(OpSub, a, b)
	if err != nil {
		t.Fatal(err)
	}
	mul, err := Compute(OpMul, a, b)
	if err != nil {
		t.Fatal(err)
	}
	gs, _ := DataOf[int32](sub)
	gm, _ := DataOf[int32](mul)
	for i := range av {
		if gs[i] != av[i]-bv[i] {
			t.Errorf("sub elem %d: got %d", i, gs[i])
		}
		if gm[i] != av[i]*bv[i] {
			t.Errorf("mul elem %d: got %d", i, gm[i])
		}
	}
}

func TestMulAdd(t *testing.T) {
	n := 19
	av := rampF32(n)
	bv := rampF32(n)
	cv := make([]float32, n)
	for i := range cv {
		cv[i] = float32(i) * 0.25
	}
	a, _ := TensorOf(VectorOf(n), av)
	b, _ := TensorOf(VectorOf(n), bv)
	c, _ := TensorOf(VectorOf(n), cv)

	out, err := Compute(OpMulAdd, a, b, c)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := DataOf[float32](out)
	for i := range got {
		want := float64(av[i])*float64(bv[i]) + float64(cv[i])
		if !relClose(float64(got[i]), want, 1e-6) {
			t.Errorf("elem %d: got %v, want %v", i, got[i], want)
		}
	}
}

func TestSumTolerance(t *testing.T) {
	for _, n := range []int{1, 5, 16, 17, 100, 1000} {
		av := make([]float32, n)
		for i := range av {
			av[i] = float32(math.Sin(float64(i))) * 3
		}
		a, _ := TensorOf(VectorOf(n), av)

		out, err := Compute(OpSum, a)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if out.Shape() != Scalar() {
			t.Fatalf("sum result shape = %v", out.Shape())
		}
		got, _ := DataOf[float32](out)
		want := refSum(av)
		if !relClose(float64(got[0]), float64(want), 1e-5) {
			t.Errorf("n=%d: got %v, want %v", n, got[0], want)
		}
	}
}

func TestSumIntExact(t *testing.T) {
	av := make([]int64, 37)
	var want int64
	for i := range av {
		av[i] = int64(i*i - 40)
		want += av[i]
	}
	a, _ := TensorOf(VectorOf(37), av)

	out, err := Compute(OpSum, a)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := DataOf[int64](out)
	if got[0] != want {
		t.Errorf("got %d, want %d", got[0], want)
	}
}

func TestDotTolerance(t *testing.T) {
	n := 513
	av := make([]float64, n)
	bv := make([]float64, n)
	for i := range av {
		av[i] = math.Cos(float64(i)) * 2
		bv[i] = math.Sin(float64(i))*0.5 + 1
	}
	a, _ := TensorOf(VectorOf(n), av)
	b, _ := TensorOf(VectorOf(n), bv)

	out, err := Compute(OpDot, a, b)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := DataOf[float64](out)
	if !relClose(got[0], refDot(av, bv), 1e-12) {
		t.Errorf("got %v, want %v", got[0], refDot(av, bv))
	}
}

func TestMatMul(t *testing.T) {
	// Odd extents so every axpy column has a masked tail.
	rows, inner, cols := 5, 7, 3
	av := make([]float64, rows*inner)
	bv := make([]float64, inner*cols)
	for i := range av {
		av[i] = float64(i%11) - 5
	}
	for i := range bv {
		bv[i] = float64(i%7)*0.5 - 1
	}
	a, _ := TensorOf(MatrixOf(rows, inner), av)
	b, _ := TensorOf(MatrixOf(inner, cols), bv)

	out, err := Compute(OpMatMul, a, b)
	if err != nil {
		t.Fatal(err)
	}
	if out.Shape() != MatrixOf(rows, cols) {
		t.Fatalf("result shape = %v", out.Shape())
	}
	got, _ := DataOf[float64](out)
	want := refMatMul(av, bv, rows, inner, cols)
	for i := range want {
		if !relClose(got[i], want[i], 1e-10) {
			t.Errorf("elem %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTileMatMulFloat(t *testing.T) {
	n := TileDim * TileDim
	av := make([]float32, n)
	bv := make([]float32, n)
	for i := range av {
		av[i] = float32(i%9)*0.25 - 1
		bv[i] = float32(i%5) - 2
	}
	a, _ := TensorOf(Tile64(), av)
	b, _ := TensorOf(Tile64(), bv)

	out, err := Compute(OpMatMul, a, b)
	if err != nil {
		t.Fatal(err)
	}
	if out.Shape() != Tile64() {
		t.Fatalf("result shape = %v", out.Shape())
	}
	got, _ := DataOf[float32](out)

	a64 := make([]float64, n)
	b64 := make([]float64, n)
	for i := range av {
		a64[i] = float64(av[i])
		b64[i] = float64(bv[i])
	}
	want := refMatMul(a64, b64, TileDim, TileDim, TileDim)
	for i := range want {
		if !relClose(float64(got[i]), want[i], 1e-4) {
			t.Errorf("elem %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTileMatMulInt8WideningExact(t *testing.T) {
	n := TileDim * TileDim
	av := make([]int8, n)
	bv := make([]int8, n)
	for i := range av {
		av[i] = int8(i%255 - 127)
		bv[i] = int8((i*7)%255 - 127)
	}
	a, _ := TensorOf(Tile64(), av)
	b, _ := TensorOf(Tile64(), bv)

	out, err := Compute(OpMatMul, a, b)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := DataOf[int32](out)

	for j := 0; j < TileDim; j++ {
		for r := 0; r < TileDim; r++ {
			var want int32
			for p := 0; p < TileDim; p++ {
				want += int32(av[p*TileDim+r]) * int32(bv[j*TileDim+p])
			}
			if got[j*TileDim+r] != want {
				t.Fatalf("elem (%d,%d): got %d, want %d", r, j, got[j*TileDim+r], want)
			}
		}
	}
}

func TestIdempotentExecution(t *testing.T) {
	av := rampF32(23)
	a1, _ := TensorOf(VectorOf(23), av)
	a2, _ := TensorOf(VectorOf(23), av)
	b, _ := TensorOf(VectorOf(23), rampF32(23))

	first, err := Compute(OpAdd, a1, b)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Compute(OpAdd, a2, b)
	if err != nil {
		t.Fatal(err)
	}
	g1, _ := DataOf[float32](first)
	g2, _ := DataOf[float32](second)
	for i := range g1 {
		if g1[i] != g2[i] {
			t.Errorf("elem %d: %v != %v", i, g1[i], g2[i])
		}
	}
}

func TestConcurrentExecute(t *testing.T) {
	// Independent tensors from independent goroutines: no shared mutable
	// state below the frozen descriptor and registry.
	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			n := 100 + w
			av := rampF32(n)
			a, _ := TensorOf(VectorOf(n), av)
			b, _ := TensorOf(VectorOf(n), av)
			out, err := Compute(OpAdd, a, b)
			if err != nil {
				errs[w] = err
				return
			}
			got, _ := DataOf[float32](out)
			for i := range got {
				if got[i] != av[i]+av[i] {
					errs[w] = fmt.Errorf("elem %d: got %v", i, got[i])
					return
				}
			}
		}(w)
	}
	wg.Wait()
	for w, err := range errs {
		if err != nil {
			t.Errorf("worker %d: %v", w, err)
		}
	}
}
