package class

import "fmt"

// ErrInconsistentLinearization reports that no good head existed while
// some input list was still non-empty: the class hierarchy cannot be
// linearized (spec.md §4.D "If no good head exists while any list is
// non-empty, linearization fails").
type ErrInconsistentLinearization struct {
	Class string
}

func (e *ErrInconsistentLinearization) Error() string {
	return fmt.Sprintf("cannot linearize class '%s': inconsistent parent order", e.Class)
}

// ErrDuplicateClass reports a name collision at builtin registration time
// (spec.md §4.F "Errors (duplicate name, missing parent) are fatal during
// initialization").
type ErrDuplicateClass struct {
	Name string
}

func (e *ErrDuplicateClass) Error() string {
	return fmt.Sprintf("class '%s' already registered", e.Name)
}

// intail reports whether v appears anywhere but position 0 of list
// (clss.c's _intail).
func intail(list []*Class, v *Class) bool {
	for i := 1; i < len(list); i++ {
		if list[i] == v {
			return true
		}
	}
	return false
}

// removeValue deletes every occurrence of v from list, preserving order
// (clss.c's _remove).
func removeValue(list []*Class, v *Class) []*Class {
	out := list[:0]
	for _, e := range list {
		if e != v {
			out = append(out, e)
		}
	}
	return out
}

// inanytail reports whether v appears in the tail of any of the input
// lists (clss.c's _inanytail).
func inanytail(in [][]*Class, v *Class) bool {
	for _, list := range in {
		if intail(list, v) {
			return true
		}
	}
	return false
}

// allEmpty reports whether every input list has been exhausted
// (clss.c's _done).
func allEmpty(in [][]*Class) bool {
	for _, list := range in {
		if len(list) > 0 {
			return false
		}
	}
	return true
}

// merge performs one C3 merge step: scan the input lists in order, take
// the first list whose head is not in any list's tail (a "good head"),
// append it to out, and remove it from every input list. Returns false
// if no good head exists (clss.c's _merge).
func merge(in [][]*Class, out []*Class) ([][]*Class, []*Class, bool) {
	for i, list := range in {
		if len(list) == 0 {
			continue
		}
		head := list[0]
		if inanytail(in, head) {
			continue
		}
		out = append(out, head)
		for j := range in {
			in[j] = removeValue(in[j], head)
		}
		_ = i
		return in, out, true
	}
	return in, out, false
}

// Linearize computes c's C3 linearization and stores it in c.Linearization,
// always beginning with c itself (spec.md §3 item 6, §4.D). It returns
// ErrInconsistentLinearization if the parents' linearizations and their
// order cannot be merged consistently.
//
// This differs from clss.c's _linearize in one respect: the merge's final
// input list is the parents' own order (c.Parents), not merely their
// linearizations. spec.md §4.D / §9 documents the C version's omission of
// this list as a divergence from canonical C3 that breaks monotonicity;
// this port includes it, as a faithful re-implementation must.
func (c *Class) Linearize() error {
	out := []*Class{c}
	n := len(c.Parents)
	if n == 0 {
		c.Linearization = out
		return nil
	}

	in := make([][]*Class, n+1)
	for i, p := range c.Parents {
		in[i] = append([]*Class{}, p.Linearization...)
	}
	in[n] = append([]*Class{}, c.Parents...)

	var ok bool
	for !allEmpty(in) {
		in, out, ok = merge(in, out)
		if !ok {
			return &ErrInconsistentLinearization{Class: c.Name}
		}
	}

	c.Linearization = out
	return nil
}
