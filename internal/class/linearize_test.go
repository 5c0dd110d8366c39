package class

import (
	"testing"

	"github.com/stretchr/testify/require"

	"morpho/internal/object"
)

func names(cs []*Class) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

func equalNames(t *testing.T, got []*Class, want []string) {
	t.Helper()
	gn := names(got)
	if len(gn) != len(want) {
		t.Fatalf("got %v, want %v", gn, want)
	}
	for i := range want {
		if gn[i] != want[i] {
			t.Fatalf("got %v, want %v", gn, want)
		}
	}
}

// Diamond inheritance: A; B inherits A; C inherits A; D inherits B, C.
// D.linearization must be [D, B, C, A] (spec.md §8 scenario 1).
func TestLinearizeDiamond(t *testing.T) {
	a := New("A")
	if err := a.Linearize(); err != nil {
		t.Fatal(err)
	}
	b := New("B")
	b.AddParent(a)
	if err := b.Linearize(); err != nil {
		t.Fatal(err)
	}
	c := New("C")
	c.AddParent(a)
	if err := c.Linearize(); err != nil {
		t.Fatal(err)
	}
	d := New("D")
	d.AddParent(b)
	d.AddParent(c)
	if err := d.Linearize(); err != nil {
		t.Fatal(err)
	}
	equalNames(t, d.Linearization, []string{"D", "B", "C", "A"})
}

// C3 inconsistency: X; Y inherits X; Z inherits X, Y. Linearizing Z must
// fail because no good head exists at the final merge step
// (spec.md §8 scenario 2).
func TestLinearizeInconsistent(t *testing.T) {
	x := New("X")
	if err := x.Linearize(); err != nil {
		t.Fatal(err)
	}
	y := New("Y")
	y.AddParent(x)
	if err := y.Linearize(); err != nil {
		t.Fatal(err)
	}
	z := New("Z")
	z.AddParent(x)
	z.AddParent(y)
	err := z.Linearize()
	if err == nil {
		t.Fatal("expected inconsistent linearization error")
	}
	if _, ok := err.(*ErrInconsistentLinearization); !ok {
		t.Fatalf("wrong error type: %T", err)
	}
}

// Single inheritance collapses to a simple chain.
func TestLinearizeSingleChain(t *testing.T) {
	a := New("A")
	a.Linearize()
	b := New("B")
	b.AddParent(a)
	b.Linearize()
	c := New("C")
	c.AddParent(b)
	c.Linearize()
	equalNames(t, c.Linearization, []string{"C", "B", "A"})
}

func TestAddParentSetsSuperclassAndChildren(t *testing.T) {
	a := New("A")
	b := New("B")
	b.AddParent(a)
	if b.Superclass != a {
		t.Fatal("expected b.Superclass == a")
	}
	if len(a.Children) != 1 || a.Children[0] != b {
		t.Fatal("expected a.Children == [b]")
	}
}

func TestResolveAndInvoke(t *testing.T) {
	a := New("A")
	greet := object.Callable{Name: "greet"}
	a.AddMethod("greet", greet)
	a.Linearize()
	b := New("B")
	b.AddParent(a)
	b.Linearize()

	m, ok := b.Resolve("greet")
	if !ok || m != greet {
		t.Fatalf("expected inherited greet, got %v %v", m, ok)
	}

	if _, err := b.Invoke("missing"); err == nil {
		t.Fatal("expected ErrNoSuchMethod")
	} else if _, ok := err.(*ErrNoSuchMethod); !ok {
		t.Fatalf("wrong error type: %T", err)
	}
}

func TestAddMethodReplacesExisting(t *testing.T) {
	a := New("A")
	a.AddMethod("m", object.Callable{Name: "first"})
	a.AddMethod("m", object.Callable{Name: "second"})
	if a.Methods["m"] != (object.Value(object.Callable{Name: "second"})) {
		t.Fatalf("expected replacement, got %v", a.Methods["m"])
	}
}

// A subclass's own method must win over an inherited one with the same
// name: Resolve walks the linearization front-to-back, so the subclass's
// entry (which appears before its parent's) is found first (spec.md §8
// scenario 3 "method override").
func TestMethodOverrideResolvesToSubclass(t *testing.T) {
	base := New("Shape")
	base.AddMethod("describe", object.Callable{Name: "Shape.describe"})
	require.NoError(t, base.Linearize())

	derived := New("Circle")
	derived.AddParent(base)
	derived.AddMethod("describe", object.Callable{Name: "Circle.describe"})
	require.NoError(t, derived.Linearize())

	m, ok := derived.Resolve("describe")
	require.True(t, ok)
	require.Equal(t, object.Value(object.Callable{Name: "Circle.describe"}), m)

	// The base class is unaffected and still resolves its own method.
	baseM, ok := base.Resolve("describe")
	require.True(t, ok)
	require.Equal(t, object.Value(object.Callable{Name: "Shape.describe"}), baseM)
}
