package tensor_test

import (
	"strings"
	"testing"

	"github.com/govision-ml/govision/internal/backend/cpu"
	"github.com/govision-ml/govision/internal/tensor"
)

func TestNewTensor(t *testing.T) {
	b := cpu.New()

	x, err := tensor.New(tensor.Shape{2, 3}, tensor.Float32, b)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !x.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", x.Shape())
	}
	if x.DType() != tensor.Float32 {
		t.Errorf("DType() = %v, want Float32", x.DType())
	}
	if x.Device() != tensor.CPU {
		t.Errorf("Device() = %v, want CPU", x.Device())
	}
	if x.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", x.NumElements())
	}

	if _, err := tensor.New(tensor.Shape{0, 3}, tensor.Float32, b); err == nil {
		t.Error("New with zero dimension should have failed")
	}
}

func TestFromSlice(t *testing.T) {
	b := cpu.New()

	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, b)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if x.DType() != tensor.Float32 {
		t.Errorf("DType() = %v, want Float32", x.DType())
	}
	got := tensor.Values[float32](x)
	want := []float32{1, 2, 3, 4, 5, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if _, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{2, 3}, b); err == nil {
		t.Error("FromSlice with mismatched shape should have failed")
	}
}

func TestViewSharesStorage(t *testing.T) {
	b := cpu.New()

	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{6}, b)
	v := x.View(tensor.Shape{2, 3})
	if v.DataPtr() != x.DataPtr() {
		t.Error("View should share the underlying storage")
	}
	if !v.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("View shape = %v, want [2 3]", v.Shape())
	}

	// Writes through the view are visible through the original.
	tensor.Values[float32](v)[0] = 42
	if tensor.Values[float32](x)[0] != 42 {
		t.Error("write through view not visible in original")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("View with mismatched element count should panic")
		}
	}()
	x.View(tensor.Shape{4, 2})
}

func TestCloneIsDeepCopy(t *testing.T) {
	b := cpu.New()

	x, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, b)
	x.SetRequiresGrad(true)

	c := x.Clone()
	if c.DataPtr() == x.DataPtr() {
		t.Error("Clone should allocate fresh storage")
	}
	if c.RequiresGrad() {
		t.Error("Clone should not carry the gradient flag")
	}

	tensor.Values[float32](c)[0] = 99
	if tensor.Values[float32](x)[0] != 1 {
		t.Error("write to clone leaked into original")
	}
}

func TestDetach(t *testing.T) {
	b := cpu.New()

	x, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, b)
	x.SetRequiresGrad(true)

	d := x.Detach()
	if d.DataPtr() != x.DataPtr() {
		t.Error("Detach should share storage")
	}
	if d.RequiresGrad() {
		t.Error("Detach should clear the gradient flag")
	}
	if !x.RequiresGrad() {
		t.Error("Detach should not mutate the original")
	}
}

func TestPinMemory(t *testing.T) {
	b := cpu.New()

	x, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, b)
	x.SetRequiresGrad(true)

	p := x.PinMemory()
	if !p.Pinned() {
		t.Error("PinMemory should set the pinned flag")
	}
	if !p.RequiresGrad() {
		t.Error("PinMemory should preserve the gradient flag")
	}
	if x.Pinned() {
		t.Error("PinMemory should not mutate the original")
	}
}

func TestItem(t *testing.T) {
	b := cpu.New()

	x, _ := tensor.FromSlice([]float32{7}, tensor.Shape{1}, b)
	if got := x.Item(); got != 7 {
		t.Errorf("Item() = %v, want 7", got)
	}

	y, _ := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, b)
	defer func() {
		if r := recover(); r == nil {
			t.Error("Item() on multi-element tensor should panic")
		}
	}()
	y.Item()
}

func TestTypedViewPanicsOnWrongDType(t *testing.T) {
	b := cpu.New()

	x, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, b)
	defer func() {
		if r := recover(); r == nil {
			t.Error("AsInt64 on a Float32 tensor should panic")
		}
	}()
	x.AsInt64()
}

func TestZerosOnesFull(t *testing.T) {
	b := cpu.New()

	z := tensor.Zeros(tensor.Shape{2, 2}, tensor.Float64, b)
	for _, v := range tensor.Values[float64](z) {
		if v != 0 {
			t.Fatalf("Zeros produced %v", v)
		}
	}

	o := tensor.Ones(tensor.Shape{2, 2}, tensor.Float64, b)
	for _, v := range tensor.Values[float64](o) {
		if v != 1 {
			t.Fatalf("Ones produced %v", v)
		}
	}

	f := tensor.Full(tensor.Shape{3}, 2.5, tensor.Float32, b)
	for _, v := range tensor.Values[float32](f) {
		if v != 2.5 {
			t.Fatalf("Full produced %v", v)
		}
	}
}

func TestFloatAtRoundTrip(t *testing.T) {
	b := cpu.New()

	for _, dt := range []tensor.DataType{tensor.Float32, tensor.Float64, tensor.Int32, tensor.Int64, tensor.Uint8} {
		x, err := tensor.New(tensor.Shape{4}, dt, b)
		if err != nil {
			t.Fatalf("New(%v) failed: %v", dt, err)
		}
		x.SetFloatAt(2, 7)
		if got := x.FloatAt(2); got != 7 {
			t.Errorf("%v: FloatAt(2) = %v, want 7", dt, got)
		}
	}
}

func TestTensorString(t *testing.T) {
	b := cpu.New()

	x, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, b)
	s := x.String()
	if !strings.Contains(s, "float32") {
		t.Errorf("String() = %q, want dtype mention", s)
	}
}
