// Package random implements the two xoshiro256 generators the runtime
// shares (spec.md §4.H): xoshiro256++ for general-purpose 64-bit draws and
// xoshiro256+ for floating-point draws, both seeded via splitmix64.
// Grounded on _examples/original_source/src/support/random.c, a direct
// port of David Blackman and Sebastiano Vigna's public-domain xoshiro256
// reference implementations.
package random

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"time"
)

// splitmix64 expands a single 64-bit seed into an arbitrary number of
// well-distributed 64-bit values, used only to fill the xoshiro states
// (random.c's splitmix64_next).
type splitmix64 struct{ state uint64 }

func (s *splitmix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// jumpPolynomial and longJumpPolynomial are shared between xoshiro256++
// and xoshiro256+: both generators advance state with the same transition
// function, so the same coefficients produce a 2^128 (jump) or 2^192
// (long-jump) state advance for either one (random.c's JUMP/LONG_JUMP).
var jumpPolynomial = [4]uint64{0x180ec6d33cfd0aba, 0xd5a61266f0c9392c, 0xa9582618e03fc9aa, 0x39abdc4529b1661c}
var longJumpPolynomial = [4]uint64{0x76e15d3efefdcbbf, 0xc5004e441c522fb3, 0x77710069854ee241, 0x39109bb02acbe635}

func rotl(x uint64, k uint) uint64 {
	return (x << k) | (x >> (64 - k))
}

// PlusPlus is xoshiro256++, the module's general-purpose 64-bit generator.
type PlusPlus struct {
	state [4]uint64
}

// Next advances the generator and returns the next 64-bit draw
// (random.c's next()).
func (g *PlusPlus) Next() uint64 {
	s := &g.state
	result := rotl(s[0]+s[3], 23) + s[0]

	t := s[1] << 17

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t
	s[3] = rotl(s[3], 45)

	return result
}

// Jump advances the state as if Next had been called 2^128 times, for
// generating non-overlapping parallel streams (random.c's
// xoshiro256pp_jump).
func (g *PlusPlus) Jump() { g.advance(jumpPolynomial) }

// LongJump advances the state as if Next had been called 2^192 times
// (random.c's xoshiro256pp_longjump).
func (g *PlusPlus) LongJump() { g.advance(longJumpPolynomial) }

func (g *PlusPlus) advance(poly [4]uint64) {
	var s [4]uint64
	for _, word := range poly {
		for b := uint(0); b < 64; b++ {
			if word&(1<<b) != 0 {
				s[0] ^= g.state[0]
				s[1] ^= g.state[1]
				s[2] ^= g.state[2]
				s[3] ^= g.state[3]
			}
			g.Next()
		}
	}
	g.state = s
}

// Plus is xoshiro256+, the module's floating-point generator.
type Plus struct {
	state [4]uint64
}

// Next advances the generator and returns the next 64-bit draw
// (random.c's xoshiro256p_next).
func (g *Plus) Next() uint64 {
	s := &g.state
	result := s[0] + s[3]

	t := s[1] << 17

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t
	s[3] = rotl(s[3], 45)

	return result
}

// Jump advances the state by 2^128 draws (random.c's xoshiro256p_jump).
func (g *Plus) Jump() { g.advance(jumpPolynomial) }

// LongJump advances the state by 2^192 draws
// (random.c's xoshiro256p_longjump).
func (g *Plus) LongJump() { g.advance(longJumpPolynomial) }

func (g *Plus) advance(poly [4]uint64) {
	var s [4]uint64
	for _, word := range poly {
		for b := uint(0); b < 64; b++ {
			if word&(1<<b) != 0 {
				s[0] ^= g.state[0]
				s[1] ^= g.state[1]
				s[2] ^= g.state[2]
				s[3] ^= g.state[3]
			}
			g.Next()
		}
	}
	g.state = s
}

// Engine bundles the two generators the module shares: xoshiro256++
// (PlusPlus) for general use and xoshiro256+ (Plus) backing the public
// RandomDouble/RandomInt operations (spec.md §4.H).
type Engine struct {
	PlusPlus PlusPlus
	Plus     Plus
}

// RandomDouble returns a draw on [0,1] using the top 53 bits of a
// xoshiro256+ draw times 2^-53 (random.c's random_double, spec.md §4.H).
func (e *Engine) RandomDouble() float64 {
	x := e.Plus.Next()
	return float64(x>>11) * 0x1.0p-53
}

// RandomInt returns the upper 32 bits of a xoshiro256+ draw as an
// unsigned 32-bit integer (random.c's random_int, spec.md §4.H).
func (e *Engine) RandomInt() uint32 {
	x := e.Plus.Next()
	return uint32(x >> 32)
}

// Seed initializes both generators from a single 64-bit seed expanded
// through splitmix64 (random.c's random_initialize's splitmix64 usage).
func (e *Engine) Seed(seed uint64) {
	sm := &splitmix64{state: seed}
	for i := 0; i < 4; i++ {
		e.PlusPlus.state[i] = sm.next()
	}
	for i := 0; i < 4; i++ {
		e.Plus.state[i] = sm.next()
	}
}

// NewEngine seeds an Engine from 8 OS-random bytes (via crypto/rand, the
// Go analogue of random.c's /dev/urandom read), used as the single 64-bit
// splitmix64 seed, when available; it does not read a full 32-byte seed.
// It falls back to the wall-clock second with a warning (spec.md §4.H, §6 "Seeding
// from /dev/urandom is best-effort; its absence is a warning, not an
// error").
func NewEngine() *Engine {
	e := &Engine{}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err == nil {
		e.Seed(binary.LittleEndian.Uint64(buf[:]))
		return e
	}
	fmt.Fprintln(os.Stderr, "Warning: initializing random number generator using time-not recommended for production runs.")
	e.Seed(uint64(time.Now().Unix()))
	return e
}
