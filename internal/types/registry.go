// Package types implements the process-wide type registry and vtable
// (spec.md §4.B): a numeric object-type id maps to a fixed set of
// host-provided behaviors. Grounded on
// _examples/original_source/src/classes/clss.c's objecttypedefn/
// object_addtype pattern.
package types

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"morpho/internal/object"
)

// Entry is a type's vtable: up to six callbacks, stable once installed
// (spec.md §3 "Type entry (vtable)"). Hashfn and Cmpfn are optional.
type Entry struct {
	Name    string
	Printfn func(obj object.HeapObject) string
	Markfn  func(obj object.HeapObject, mark func(object.Value))
	Freefn  func(obj object.HeapObject)
	Sizefn  func(obj object.HeapObject) uintptr
	Hashfn  func(obj object.HeapObject) uint64
	Cmpfn   func(a, b object.HeapObject) int
}

// Registry assigns dense non-zero object-type ids and stores their vtable
// entries. It is process-wide with init-on-startup, teardown-on-shutdown
// lifecycle (spec.md §4.B).
type Registry struct {
	entries []Entry // index 0 unused; ids start at 1
	live    []object.HeapObject
}

// New returns an empty, ready-to-use registry.
func New() *Registry {
	return &Registry{entries: make([]Entry, 1)}
}

// Register installs definition under a freshly assigned id and returns it.
// Registration is idempotent only with respect to the id it returns:
// registering the same definition twice yields two distinct ids
// (spec.md §4.B).
func (r *Registry) Register(def Entry) int {
	r.entries = append(r.entries, def)
	return len(r.entries) - 1
}

// Lookup returns the vtable entry for id. It is total for any id
// previously returned by Register.
func (r *Registry) Lookup(id int) (Entry, bool) {
	if id <= 0 || id >= len(r.entries) {
		return Entry{}, false
	}
	return r.entries[id], true
}

// Track adds obj to the registry's live-object list so Teardown can find
// it, and links its header onto the intrusive next-object chain (spec.md
// §3 "Object header": "an intrusive next-object link for the allocator's
// tracking list"). Callers should invoke this exactly once per allocation.
func (r *Registry) Track(obj object.HeapObject) {
	h := obj.ObjectHeader()
	if len(r.live) > 0 {
		h.Next = r.live[len(r.live)-1].ObjectHeader()
	}
	r.live = append(r.live, obj)
}

// Teardown invokes each live object's Freefn exactly once (spec.md §4.B
// "during teardown all callbacks registered as free are invoked on live
// instances"). It does not free Go memory itself — the Go garbage
// collector owns that — but runs the vtable's Freefn contract
// deterministically, as a non-GC host embedding this registry would need.
func (r *Registry) Teardown() {
	for _, obj := range r.live {
		h := obj.ObjectHeader()
		if entry, ok := r.Lookup(h.TypeID); ok && entry.Freefn != nil {
			entry.Freefn(obj)
		}
	}
	r.live = nil
}

// Stats summarizes live-object memory usage using each type's Sizefn,
// rendered human-readably (spec.md §4.B's per-type Sizefn, SPEC_FULL.md §9).
func (r *Registry) Stats(liveObjects []object.HeapObject) string {
	var total uintptr
	counts := map[string]int{}
	for _, o := range liveObjects {
		h := o.ObjectHeader()
		entry, ok := r.Lookup(h.TypeID)
		if !ok {
			continue
		}
		counts[entry.Name]++
		if entry.Sizefn != nil {
			total += entry.Sizefn(o)
		}
	}
	out := fmt.Sprintf("%s across %d live object(s)", humanize.Bytes(uint64(total)), len(liveObjects))
	for name, n := range counts {
		out += fmt.Sprintf("\n  %s: %d", name, n)
	}
	return out
}
