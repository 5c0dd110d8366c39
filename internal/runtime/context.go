// Package runtime ties the class/object core's process-wide state into a
// single explicit struct, per Design Note §9 ("Global state ... should be
// encapsulated in an explicit runtime context object rather than package
// globals, to support multiple embedded instances and simplify testing").
package runtime

import (
	"github.com/google/uuid"

	"morpho/internal/builtin"
	"morpho/internal/class"
	"morpho/internal/log"
	"morpho/internal/object"
	"morpho/internal/random"
	"morpho/internal/types"
	"morpho/internal/veneer"
)

// Context bundles everything spec.md §5 calls "global state": the object
// type registry, the veneer binding table, the builtin class environment,
// and the shared RNG. A process may hold more than one Context — each
// gets its own InstanceID so diagnostic log lines from concurrent
// embedded runtimes stay distinguishable.
type Context struct {
	InstanceID uuid.UUID

	Types   *types.Registry
	Veneer  *veneer.Table
	Classes *builtin.Registry
	Random  *random.Engine

	Log *log.Logger
}

// New returns a ready-to-use Context: empty type registry, empty veneer
// table, empty class environment, and an RNG seeded from OS entropy
// (spec.md §4.H).
func New() *Context {
	id := uuid.New()
	return &Context{
		InstanceID: id,
		Types:      types.New(),
		Veneer:     veneer.NewTable(),
		Classes:    builtin.NewRegistry(),
		Random:     random.NewEngine(),
		Log:        log.Default(id.String()),
	}
}

// RegisterBuiltin installs def into the Context's class environment,
// logging and returning any registration failure rather than aborting
// the whole startup sequence (spec.md §7 item 2: "abort that
// initialization only").
func (c *Context) RegisterBuiltin(def builtin.Definition) (*class.Class, error) {
	cls, err := c.Classes.AddClass(def)
	if err != nil {
		c.Log.Errorf("registering class %q: %v", def.Name, err)
		return nil, err
	}
	return cls, nil
}

// BindVeneer links typeID to className's registered class, completing
// spec.md §4.E/§4.F's "optionally" veneer-binding step.
func (c *Context) BindVeneer(className string, typeID int) error {
	if err := c.Classes.BindVeneer(c.Veneer, className, typeID); err != nil {
		c.Log.Errorf("binding veneer for %q: %v", className, err)
		return err
	}
	return nil
}

// Resolve dispatches method on the object behind typeID, routing through
// the veneer table then the bound class's linearization (spec.md §4.E).
func (c *Context) Resolve(typeID int, method string) (object.Value, bool) {
	return c.Veneer.Resolve(typeID, method)
}

// Track records a freshly allocated heap object with the type registry so
// Teardown can later run its Freefn (spec.md §4.B).
func (c *Context) Track(obj object.HeapObject) {
	c.Types.Track(obj)
}

// Shutdown runs every live object's Freefn exactly once (spec.md §4.B
// "during teardown"). A Context should not be reused afterward.
func (c *Context) Shutdown() {
	c.Types.Teardown()
}
