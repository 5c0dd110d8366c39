// Command morphoclassdump is a demonstration CLI exercising the class/
// object core end to end: it registers a small builtin class hierarchy,
// links and linearizes it, binds a veneer for the discretization example
// type, and dumps the result. It is not a Morpho language CLI — the
// lexer/parser's output feeds an external compiler and VM that this repo
// does not implement (spec.md §1 "Out of scope").
package main

import (
	"fmt"
	"os"

	"morpho/internal/builtin"
	"morpho/internal/class"
	"morpho/internal/discretization"
	"morpho/internal/object"
	"morpho/internal/runtime"
	"morpho/internal/types"
)

// discretizationTypeID is the veneer type id this demo binds a class to
// (spec.md §4.E). It is a separate id space from the types.Registry
// entry id returned by Register below: the former is the "VM object
// type tag" a veneer dispatches on, the latter is this process's vtable
// slot for printing/marking/freeing that type.
const discretizationTypeID = 100

func main() {
	args := os.Args[1:]
	cmd := "dump"
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "dump":
		runDump()
	case "random":
		runRandom()
	case "--help", "-h", "help":
		showUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		showUsage()
		os.Exit(1)
	}
}

func showUsage() {
	fmt.Println(`morphoclassdump — class/object core demonstration CLI

Usage:
  morphoclassdump dump    register a sample class hierarchy and print it
  morphoclassdump random  print ten deterministic RNG draws from a fixed seed`)
}

// runDump registers Object, Drawable and Shape (both children of Object)
// and Circle (child of Shape), binds a veneer for
// discretization.Discretization, and prints each class's C3
// linearization and the discretization's rendered form.
func runDump() {
	ctx := runtime.New()
	defer ctx.Shutdown()

	ctx.Log.Infof("instance %s starting", ctx.InstanceID)

	discretizationTypeEntry := ctx.Types.Register(types.Entry{
		Name:    "Discretization",
		Printfn: discretization.Printfn,
		Markfn:  discretization.Markfn,
		Freefn:  discretization.Freefn,
		Sizefn:  discretization.Sizefn,
	})
	_ = ctx.Types.Register(types.Entry{
		Name:    "Class",
		Printfn: class.Printfn,
		Markfn:  class.Markfn,
		Freefn:  class.Freefn,
		Sizefn:  class.Sizefn,
	})

	definitions := []builtin.Definition{
		{Name: "Object"},
		{
			Name:   "Drawable",
			Parent: "Object",
			Methods: []builtin.Method{
				{Name: "draw", Callable: object.Callable{Name: "Drawable.draw"}},
			},
		},
		{
			Name:   "Shape",
			Parent: "Object",
			Methods: []builtin.Method{
				{Name: "describe", Callable: object.Callable{Name: "Shape.describe"}},
			},
		},
		{
			Name:   "Circle",
			Parent: "Shape",
			Methods: []builtin.Method{
				{Name: "describe", Callable: object.Callable{Name: "Circle.describe"}},
				{Name: "area", Callable: object.Callable{Name: "Circle.area"}},
			},
		},
	}

	for _, def := range definitions {
		if _, err := ctx.RegisterBuiltin(def); err != nil {
			ctx.Log.Errorf("skipping %q: %v", def.Name, err)
			continue
		}
	}

	for _, name := range []string{"Object", "Drawable", "Shape", "Circle"} {
		cls, ok := ctx.Classes.Lookup(name)
		if !ok {
			continue
		}
		names := make([]string, len(cls.Linearization))
		for i, k := range cls.Linearization {
			names[i] = k.Name
		}
		fmt.Printf("%-10s %v\n", name, names)
	}

	if m, ok := ctx.Classes.Lookup("Circle"); ok {
		if fn, ok := m.Resolve("describe"); ok {
			fmt.Printf("Circle.describe -> %v\n", fn)
		}
	}

	if err := ctx.BindVeneer("Shape", discretizationTypeID); err != nil {
		ctx.Log.Errorf("binding veneer: %v", err)
	}
	if fn, ok := ctx.Resolve(discretizationTypeID, "describe"); ok {
		fmt.Printf("veneer dispatch for type %d -> %v\n", discretizationTypeID, fn)
	}

	d := discretization.Lagrange(3)
	d.ObjectHeader().TypeID = discretizationTypeEntry
	ctx.Track(d)
	fmt.Printf("discretization: %s, nodes=%d, positions=%v\n",
		discretization.Printfn(d), d.NodeCount(), d.NodePositions())
}

// runRandom prints ten deterministic draws from a fixed seed, the
// property exercised by scenario 6 (spec.md §8).
func runRandom() {
	ctx := runtime.New()
	ctx.Random.Seed(42)
	for i := 0; i < 10; i++ {
		fmt.Printf("%d: %v\n", i, ctx.Random.RandomDouble())
	}
}
