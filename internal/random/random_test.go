package random

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Seeding with the same value must reproduce the exact same draw
// sequence (spec.md §6 "Bit-exact reproduction of xoshiro256+ /
// xoshiro256++ output sequences under a given 256-bit state is
// required").
func TestSeedIsDeterministic(t *testing.T) {
	a := &Engine{}
	a.Seed(42)
	b := &Engine{}
	b.Seed(42)

	for i := 0; i < 10; i++ {
		got, want := a.RandomDouble(), b.RandomDouble()
		require.Equal(t, want, got, "draw %d diverged", i)
	}
}

func TestRandomDoubleInUnitInterval(t *testing.T) {
	e := &Engine{}
	e.Seed(7)
	for i := 0; i < 1000; i++ {
		d := e.RandomDouble()
		if d < 0 || d > 1 {
			t.Fatalf("draw %d out of range: %v", i, d)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := &Engine{}
	a.Seed(1)
	b := &Engine{}
	b.Seed(2)
	if a.RandomDouble() == b.RandomDouble() {
		t.Fatal("expected different seeds to diverge on first draw")
	}
}

func TestJumpChangesStateDeterministically(t *testing.T) {
	a := &Engine{}
	a.Seed(99)
	b := &Engine{}
	b.Seed(99)

	a.Plus.Jump()
	b.Plus.Jump()

	if a.RandomDouble() != b.RandomDouble() {
		t.Fatal("expected jump to be deterministic given the same seed")
	}

	c := &Engine{}
	c.Seed(99)
	if a.RandomDouble() == c.RandomDouble() {
		t.Fatal("expected jumped stream to diverge from the un-jumped stream")
	}
}

func TestLongJumpAdvancesPlusPlusState(t *testing.T) {
	g := &PlusPlus{}
	sm := &splitmix64{state: 1234}
	for i := 0; i < 4; i++ {
		g.state[i] = sm.next()
	}
	before := g.state
	g.LongJump()
	if before == g.state {
		t.Fatal("expected long-jump to change state")
	}
}

func TestRandomIntUsesUpper32Bits(t *testing.T) {
	e := &Engine{}
	e.Seed(5)
	x := e.Plus.Next()
	// Re-seed so RandomInt draws the same underlying value.
	e.Seed(5)
	got := e.RandomInt()
	want := uint32(x >> 32)
	if got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
}
