// Package class implements the runtime class entity and C3 method
// resolution order (spec.md §4.C/§4.D). Grounded on
// _examples/original_source/src/classes/clss.c's objectclass and its
// _linearize/class_linearize family, carried into Go with the
// parent-order-list fix the spec calls for (see linearize.go).
package class

import (
	"fmt"

	"morpho/internal/errors"
	"morpho/internal/object"
)

// Class is a heap object: name, method table, parents, children,
// superclass shortcut, computed linearization, and a stable uid
// (spec.md §3 "Class").
type Class struct {
	header object.Header

	Name    string
	Methods map[string]object.Value

	Parents  []*Class
	Children []*Class

	Superclass *Class

	// Linearization is the C3 method resolution order, always beginning
	// with the class itself once computed (spec.md §3 item 6).
	Linearization []*Class

	UID int
}

// ObjectHeader satisfies object.HeapObject so the type registry can track,
// mark, and free classes like any other heap object.
func (c *Class) ObjectHeader() *object.Header { return &c.header }

// New allocates a class with empty methods, parents, and children; its
// superclass is unset and uid is 0 until the caller assigns one
// (spec.md §4.C "new(name)").
func New(name string) *Class {
	return &Class{Name: name, Methods: make(map[string]object.Value)}
}

// AddMethod inserts callable under name, replacing any previous entry
// (spec.md §4.C "add-method").
func (c *Class) AddMethod(name string, callable object.Value) {
	c.Methods[name] = callable
}

// AddParent appends parent to c's parents and c to parent's children. If
// this is c's first parent, it becomes c's superclass (spec.md §4.C
// "add-parent"). It does not recompute the linearization; callers must
// call Linearize afterward (spec.md §4.D "recomputed whenever parents
// changes").
func (c *Class) AddParent(parent *Class) {
	c.Parents = append(c.Parents, parent)
	parent.Children = append(parent.Children, c)
	if c.Superclass == nil {
		c.Superclass = parent
	}
}

// Resolve returns the first method named name found by scanning c's
// linearization in order, or false if no class in the linearization
// defines it. Absence is a recoverable condition, not an error
// (spec.md §4.C "resolve").
func (c *Class) Resolve(name string) (object.Value, bool) {
	for _, k := range c.Linearization {
		if m, ok := k.Methods[name]; ok {
			return m, true
		}
	}
	return nil, false
}

// ErrNoSuchMethod reports a runtime dispatch miss: the method name was not
// found anywhere in the class's linearization. Carries the CLASS_INVK
// error identifier (spec.md §7 item 3) so an embedding VM's try/catch can
// recognize it.
type ErrNoSuchMethod struct {
	Class  string
	Method string
}

func (e *ErrNoSuchMethod) Error() string {
	return fmt.Sprintf("%s: no method '%s' on class '%s'", errors.ClassInvoke, e.Method, e.Class)
}

// Invoke resolves name on c and reports ErrNoSuchMethod, carrying
// CLASS_INVK, when it is absent (spec.md §7 item 3 "CLASS_INVK error
// identifier, allowing user-level try/catch to observe it").
func (c *Class) Invoke(name string) (object.Value, error) {
	if m, ok := c.Resolve(name); ok {
		return m, nil
	}
	return nil, &ErrNoSuchMethod{Class: c.Name, Method: name}
}

// Printfn renders a class the way the original prints it: "@Name"
// (clss.c's objectclass_printfn format string).
func Printfn(obj object.HeapObject) string {
	c, ok := obj.(*Class)
	if !ok {
		return "@?"
	}
	return "@" + c.Name
}

// Markfn visits every value a class's GC must trace: its method values
// and parent/child references (spec.md §3 "Marking"). The name is a Go
// string, not an object.Value, and is not passed to mark. Children are
// followed only because the registry owns them, not because they extend
// the class's lifetime.
func Markfn(obj object.HeapObject, mark func(object.Value)) {
	c, ok := obj.(*Class)
	if !ok {
		return
	}
	for _, m := range c.Methods {
		mark(m)
	}
	for _, p := range c.Parents {
		mark(object.Reference{Object: p})
	}
	for _, ch := range c.Children {
		mark(object.Reference{Object: ch})
	}
}

// Freefn releases every subresource a class owns: its method table,
// parent/child lists, and linearization (clss.c's objectclass_freefn).
// The name and header are released with the Go object itself.
func Freefn(obj object.HeapObject) {
	c, ok := obj.(*Class)
	if !ok {
		return
	}
	c.Methods = nil
	c.Parents = nil
	c.Children = nil
	c.Linearization = nil
}

// Sizefn reports a class's approximate footprint for types.Registry.Stats.
func Sizefn(obj object.HeapObject) uintptr {
	c, ok := obj.(*Class)
	if !ok {
		return 0
	}
	return uintptr(64 + len(c.Methods)*16 + len(c.Parents)*8 + len(c.Children)*8 + len(c.Linearization)*8)
}
