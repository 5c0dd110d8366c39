// Package discretization implements the finite-element discretization
// descriptor used as a worked example of a host-defined object type
// plugging into the veneer system (spec.md §4.I). Grounded on
// _examples/original_source/morpho5/geometry/discretization.c.
package discretization

import (
	"fmt"

	"morpho/internal/object"
)

// Grade is a mesh element dimension: vertex, line, area, or volume, the
// geometric grade a discretization's shape vector is indexed by
// (discretization.c's grade typedef).
type Grade int

const (
	GradeVertex Grade = 0
	GradeLine   Grade = 1
	GradeArea   Grade = 2
	GradeVolume Grade = 3
)

// Discretization carries a label, polynomial order (>= 1), geometric
// grade, and a shape vector of length grade+1 giving the degrees of
// freedom per grade (spec.md §4.I).
type Discretization struct {
	header object.Header

	Label string
	Order int
	Grade Grade
	Shape []int
}

// ObjectHeader satisfies object.HeapObject.
func (d *Discretization) ObjectHeader() *object.Header { return &d.header }

// New builds a discretization descriptor, copying shape so later mutation
// of the caller's slice cannot alias the stored one
// (discretization.c's discretization_init + object_newdiscretization).
func New(label string, order int, grade Grade, shape []int) *Discretization {
	cp := make([]int, len(shape))
	copy(cp, shape)
	return &Discretization{Label: label, Order: order, Grade: grade, Shape: cp}
}

// Lagrange builds a 1-D Lagrange discretization. order defaults to 1 when
// <= 0 is passed (discretization.c's lagrange_constructor: "if (nargs==1)
// ... else order=1"). Its grade is always line, and its shape is
// [1, order-1] (spec.md §4.I).
func Lagrange(order int) *Discretization {
	if order <= 0 {
		order = 1
	}
	return New("lagrange", order, GradeLine, []int{1, order - 1})
}

// NodeCount returns the number of nodes per element: order+1
// (discretization.c's cgn_nodecount).
func (d *Discretization) NodeCount() int {
	return d.Order + 1
}

// NodePositions returns the reference-element coordinates of each node:
// i/(n-1) for node i of n (discretization.c's cgn_nodepositions). A
// single-node discretization (order 0) has its one node at the origin.
func (d *Discretization) NodePositions() []float64 {
	n := d.NodeCount()
	out := make([]float64, n)
	if n == 1 {
		return out
	}
	for i := 0; i < n; i++ {
		out[i] = float64(i) / float64(n-1)
	}
	return out
}

// Printfn renders a discretization as "<label order>"
// (discretization.c's objectdiscretization_printfn's "<%s %i>" format).
func Printfn(obj object.HeapObject) string {
	d, ok := obj.(*Discretization)
	if !ok {
		return "<discretization ?>"
	}
	return fmt.Sprintf("<%s %d>", d.Label, d.Order)
}

// Markfn is a no-op: a discretization holds only scalar fields and an
// owned int slice, nothing the GC must trace
// (discretization.c's objectdiscretization_markfn does nothing).
func Markfn(obj object.HeapObject, mark func(object.Value)) {}

// Freefn releases the shape slice (discretization.c's
// objectdiscretization_freefn -> discretization_clear).
func Freefn(obj object.HeapObject) {
	d, ok := obj.(*Discretization)
	if !ok {
		return
	}
	d.Shape = nil
}

// Sizefn reports a discretization's approximate footprint.
func Sizefn(obj object.HeapObject) uintptr {
	d, ok := obj.(*Discretization)
	if !ok {
		return 0
	}
	return uintptr(32 + len(d.Shape)*8)
}

// AssembleFieldRef is the supplemented but still-stubbed field-assembly
// hook: discretization.c's discretization_assemblefieldref always returns
// false because it was never completed upstream (its body is commented
// out). Left unimplemented here for the same reason — see SPEC_FULL.md
// Open Questions.
func (d *Discretization) AssembleFieldRef() bool {
	return false
}
