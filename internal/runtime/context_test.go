package runtime

import (
	"testing"

	"morpho/internal/builtin"
	"morpho/internal/object"
	"morpho/internal/types"
)

func TestNewAssignsDistinctInstanceIDs(t *testing.T) {
	a := New()
	b := New()
	if a.InstanceID == b.InstanceID {
		t.Fatal("expected distinct InstanceIDs across Contexts")
	}
}

func TestRegisterBuiltinAndResolveThroughVeneer(t *testing.T) {
	ctx := New()
	if _, err := ctx.RegisterBuiltin(builtin.Definition{Name: "Object"}); err != nil {
		t.Fatal(err)
	}
	describe := object.Callable{Name: "Shape.describe"}
	if _, err := ctx.RegisterBuiltin(builtin.Definition{
		Name:   "Shape",
		Parent: "Object",
		Methods: []builtin.Method{
			{Name: "describe", Callable: describe},
		},
	}); err != nil {
		t.Fatal(err)
	}

	if err := ctx.BindVeneer("Shape", 42); err != nil {
		t.Fatal(err)
	}

	m, ok := ctx.Resolve(42, "describe")
	if !ok || m != object.Value(describe) {
		t.Fatalf("expected resolved describe method, got %v %v", m, ok)
	}

	if _, ok := ctx.Resolve(999, "describe"); ok {
		t.Fatal("expected no resolution for an unbound type id")
	}
}

func TestRegisterBuiltinFailureDoesNotAbortContext(t *testing.T) {
	ctx := New()
	if _, err := ctx.RegisterBuiltin(builtin.Definition{Name: "Object"}); err != nil {
		t.Fatal(err)
	}
	if _, err := ctx.RegisterBuiltin(builtin.Definition{Name: "Orphan", Parent: "Ghost"}); err == nil {
		t.Fatal("expected missing-parent error")
	}
	if _, ok := ctx.Classes.Lookup("Object"); !ok {
		t.Fatal("expected Object to remain registered after a sibling failure")
	}
}

func TestTrackAndShutdownInvokesFreefn(t *testing.T) {
	ctx := New()
	freed := false
	id := ctx.Types.Register(types.Entry{
		Name:   "Stub",
		Freefn: func(object.HeapObject) { freed = true },
	})
	obj := &stubObject{}
	obj.header.TypeID = id
	ctx.Track(obj)
	ctx.Shutdown()
	if !freed {
		t.Fatal("expected Shutdown to invoke the tracked object's Freefn")
	}
}

type stubObject struct {
	header object.Header
}

func (s *stubObject) ObjectHeader() *object.Header { return &s.header }
