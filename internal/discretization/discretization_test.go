package discretization

import (
	"reflect"
	"testing"
)

// discretization.c's lagrange_constructor with no args defaults order to
// 1, shape=[1,0], and printfn renders "<lagrange 1>".
func TestLagrangeDefaultOrder(t *testing.T) {
	d := Lagrange(0)
	if d.Order != 1 {
		t.Fatalf("expected default order 1, got %d", d.Order)
	}
	if !reflect.DeepEqual(d.Shape, []int{1, 0}) {
		t.Fatalf("expected shape [1 0], got %v", d.Shape)
	}
	if got, want := Printfn(d), "<lagrange 1>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// spec.md §8 scenario 7: Lagrange(3) renders "<lagrange 3>" with
// shape=[1,2].
func TestLagrangeOrderThree(t *testing.T) {
	d := Lagrange(3)
	if got, want := Printfn(d), "<lagrange 3>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if !reflect.DeepEqual(d.Shape, []int{1, 2}) {
		t.Fatalf("expected shape [1 2], got %v", d.Shape)
	}
	if d.Grade != GradeLine {
		t.Fatalf("expected line grade, got %v", d.Grade)
	}
}

func TestNodeCountAndPositions(t *testing.T) {
	d := Lagrange(3)
	if d.NodeCount() != 4 {
		t.Fatalf("expected 4 nodes, got %d", d.NodeCount())
	}
	want := []float64{0, 1.0 / 3, 2.0 / 3, 1}
	got := d.NodePositions()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("node %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestShapeIsCopiedNotAliased(t *testing.T) {
	shape := []int{1, 2}
	d := New("custom", 3, GradeLine, shape)
	shape[0] = 99
	if d.Shape[0] == 99 {
		t.Fatal("expected New to copy shape, not alias it")
	}
}

func TestAssembleFieldRefStub(t *testing.T) {
	d := Lagrange(2)
	if d.AssembleFieldRef() {
		t.Fatal("expected AssembleFieldRef to remain unimplemented (returns false)")
	}
}
