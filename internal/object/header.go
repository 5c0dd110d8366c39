// Package object implements the tagged runtime value and heap object
// header shared by the whole class/object core (spec.md §3/§4.A).
package object

// Header is embedded as the first field of every heap-allocated object.
// The object-type id it carries uniquely determines the vtable entry
// (types.Entry) that knows how to print, mark, free, size, hash, and
// compare instances of that type (spec.md §3 "Object header").
type Header struct {
	TypeID int
	Marked bool
	Next   *Header // intrusive link in the allocator's live-object list
	hash   uint64
	hashed bool
}

// CachedHash returns a previously computed identity/hash value, if any.
func (h *Header) CachedHash() (uint64, bool) {
	return h.hash, h.hashed
}

// SetCachedHash stores a computed identity/hash value for reuse.
func (h *Header) SetCachedHash(v uint64) {
	h.hash = v
	h.hashed = true
}

// HeapObject is implemented by every heap-allocated object: it must expose
// its header so the type registry and GC-style mark/free callbacks (which
// operate on *Header) can find it.
type HeapObject interface {
	ObjectHeader() *Header
}
