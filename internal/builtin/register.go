// Package builtin consumes static class-definition manifests and
// registers them as runtime classes (spec.md §4.F), the Go rendering of
// the C varargs sentinel-array manifest described in spec.md §6
// ("Class-definition manifest (consumed)"). Grounded on
// _examples/original_source/src/classes/clss.c's class_initialize and the
// MORPHO_BEGINCLASS/Discretization manifest in
// morpho5/geometry/discretization.c.
package builtin

import (
	"morpho/internal/class"
	"morpho/internal/object"
	"morpho/internal/veneer"
)

// MethodFlags marks properties of a registered method; spec.md §6 names
// the slot "flags" without enumerating values, so only the zero value
// (no flags) is currently meaningful. Kept as a distinct type so a future
// flag (e.g. "static") has somewhere to live without breaking callers.
type MethodFlags int

// Method is one (method-name, callable, flags) triple from a class
// definition manifest (spec.md §6).
type Method struct {
	Name     string
	Callable object.Value
	Flags    MethodFlags
}

// Definition is a static class-definition bundle: a name, an optional
// parent-class name ("" means "Object", the root of the builtin
// hierarchy), and its methods (spec.md §4.F).
type Definition struct {
	Name    string
	Parent  string
	Methods []Method
}

// Registry holds every class installed so far, keyed by name, and is the
// "global name environment" spec.md §4.F registers into.
type Registry struct {
	byName map[string]*class.Class
	nextUID int
}

// NewRegistry returns an empty builtin class registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*class.Class)}
}

// AddClass creates a runtime class from def, inserts every method,
// optionally links the parent (triggering linearization), and installs
// the class in the registry under its name (spec.md §4.F). Duplicate
// names and missing parents are fatal to this registration only — the
// error is returned, not panicked, so the caller can decide how many
// other class definitions still get a chance to register
// (spec.md §7 item 2 "abort that initialization only").
func (r *Registry) AddClass(def Definition) (*class.Class, error) {
	if _, exists := r.byName[def.Name]; exists {
		return nil, &class.ErrDuplicateClass{Name: def.Name}
	}

	c := class.New(def.Name)
	r.nextUID++
	c.UID = r.nextUID

	for _, m := range def.Methods {
		c.AddMethod(m.Name, m.Callable)
	}

	parentName := def.Parent
	if parentName == "" {
		parentName = "Object"
	}
	isRoot := def.Name == "Object" && def.Parent == ""
	if !isRoot {
		parent, ok := r.byName[parentName]
		if !ok {
			return nil, &missingParentError{Class: def.Name, Parent: parentName}
		}
		c.AddParent(parent)
	}

	if err := c.Linearize(); err != nil {
		return nil, err
	}

	r.byName[def.Name] = c
	return c, nil
}

// Lookup returns the class installed under name, if any.
func (r *Registry) Lookup(name string) (*class.Class, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// BindVeneer registers typeID with className's class in table, completing
// spec.md §4.F's "optionally" link to §4.E veneer binding.
func (r *Registry) BindVeneer(table *veneer.Table, className string, typeID int) error {
	c, ok := r.byName[className]
	if !ok {
		return &missingParentError{Class: className, Parent: ""}
	}
	table.Bind(typeID, c)
	return nil
}

type missingParentError struct {
	Class  string
	Parent string
}

func (e *missingParentError) Error() string {
	return "class '" + e.Class + "': missing parent class '" + e.Parent + "'"
}
