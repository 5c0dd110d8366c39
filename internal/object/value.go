package object

import "fmt"

// Value is the runtime's tagged scalar (spec.md §3 "Value"): nil, boolean,
// integer, floating-point, or a reference to a heap object. It closes over
// a fixed set of implementations rather than exposing a raw interface{},
// per Design Note §9 ("Dynamic dispatch and sum types": "The value-tag
// union maps cleanly to a tagged sum"). This tightens the teacher's
// internal/vm/value.go, whose Value was a bare interface{}.
type Value interface {
	isValue()
}

// Nil is the unique nil value.
type Nil struct{}

func (Nil) isValue() {}

// Bool wraps a boolean scalar.
type Bool bool

func (Bool) isValue() {}

// Int wraps an integer scalar.
type Int int64

func (Int) isValue() {}

// Float wraps a floating-point scalar.
type Float float64

func (Float) isValue() {}

// Reference wraps an object-reference value; Object carries the heap
// object's identity. Dereferencing requires reading Object.ObjectHeader()
// to learn the type id before any type-specific access (spec.md §4.A).
type Reference struct {
	Object HeapObject
}

func (Reference) isValue() {}

// Callable wraps a method implementation: either a host-builtin Go
// function or an opaque reference to a user bytecode closure owned by the
// external compiler/VM (spec.md §3 "methods ... a callable value, either
// host-builtin or user bytecode closure"). Impl is opaque to this package;
// only the embedding VM interprets it.
type Callable struct {
	Name string
	Impl interface{}
}

func (Callable) isValue() {}

func (v Callable) String() string { return "<fn " + v.Name + ">" }

// IsNil reports whether v is the nil value.
func IsNil(v Value) bool {
	_, ok := v.(Nil)
	return ok
}

// Equal implements spec.md §4.A's equality rule: nil equals nil; numbers
// compare by mathematical value with integer/float coercion; object
// references compare by identity unless the caller supplies a compare
// callback (types.Entry.Cmpfn) for resolving that case — this function
// handles only the scalar/no-callback cases, matching the "unless the
// type entry installs a *compare* callback" escape hatch in the spec.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Int:
		switch bv := b.(type) {
		case Int:
			return av == bv
		case Float:
			return Float(av) == bv
		}
		return false
	case Float:
		switch bv := b.(type) {
		case Int:
			return av == Float(bv)
		case Float:
			return av == bv
		}
		return false
	case Reference:
		bv, ok := b.(Reference)
		return ok && av.Object == bv.Object
	}
	return false
}

func (v Nil) String() string  { return "nil" }
func (v Bool) String() string { return fmt.Sprintf("%t", bool(v)) }
func (v Int) String() string  { return fmt.Sprintf("%d", int64(v)) }
func (v Float) String() string { return fmt.Sprintf("%g", float64(v)) }
