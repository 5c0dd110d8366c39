// Package veneer implements the binding between a host object-type id and
// a user-visible class so host objects acquire methods through the class
// system (spec.md §4.E). Grounded on
// _examples/original_source/src/classes/clss.c's object_setveneerclass
// usage pattern (commented out in class_initialize, where it would bind
// the Class type itself to a veneer once one exists) and spec.md §4.E.
package veneer

import (
	"morpho/internal/class"
	"morpho/internal/object"
)

// Table records type-id -> class bindings and the global name environment
// every bound class is installed into (spec.md §4.E "bind(type-id, class)
// ... simultaneously installs the class under its name in the global name
// environment").
type Table struct {
	byTypeID map[int]*class.Class
	byName   map[string]*class.Class
}

// NewTable returns an empty, ready-to-use veneer table.
func NewTable() *Table {
	return &Table{
		byTypeID: make(map[int]*class.Class),
		byName:   make(map[string]*class.Class),
	}
}

// Bind associates typeID with c and installs c under c.Name in the global
// name environment (spec.md §4.E "bind").
func (t *Table) Bind(typeID int, c *class.Class) {
	t.byTypeID[typeID] = c
	t.byName[c.Name] = c
}

// ClassFor returns the class bound to typeID, if any. Method resolution on
// an object proceeds by reading its header's type id, consulting this
// table, then calling class.Class.Resolve (spec.md §4.E).
func (t *Table) ClassFor(typeID int) (*class.Class, bool) {
	c, ok := t.byTypeID[typeID]
	return c, ok
}

// Lookup returns the class installed under name in the global name
// environment, if any.
func (t *Table) Lookup(name string) (*class.Class, bool) {
	c, ok := t.byName[name]
	return c, ok
}

// Resolve performs the full dispatch path described in spec.md §4.E: given
// an object's type id and a method name, it consults the veneer table and
// then the bound class's linearization. If no veneer is bound for typeID,
// the object supports no user-visible methods.
func (t *Table) Resolve(typeID int, method string) (object.Value, bool) {
	c, ok := t.ClassFor(typeID)
	if !ok {
		return nil, false
	}
	return c.Resolve(method)
}
