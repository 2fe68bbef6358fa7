// SPDX-License-Identifier: MIT

package random

import (
	"sync"
	"time"

	"github.com/MichaelTJones/pcg"
)

// Source yields uniform values in [0, 1).
type Source interface {
	Float64() float64
}

// pcgIncrement selects the PCG32 stream when none is derived.
const pcgIncrement = 0xda3e39cb94b95bdb

// Generator is a seedable PCG32 stream. The zero value is not usable;
// construct one with NewGenerator. All methods are safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	pcg *pcg.PCG32
}

// NewGenerator returns a Generator seeded with seed (0 = wall clock).
func NewGenerator(seed uint64) *Generator {
	g := &Generator{pcg: pcg.NewPCG32()}
	g.Seed(seed)
	return g
}

// Seed restarts the stream. Seed 0 seeds from the wall clock; any other
// value reproduces the same sequence on every run.
func (g *Generator) Seed(seed uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g.mu.Lock()
	g.pcg.Seed(seed, pcgIncrement)
	g.mu.Unlock()
}

// Uint32 returns a uniform 32-bit value.
func (g *Generator) Uint32() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pcg.Random()
}

// Float64 returns a uniform value in [0, 1) with 32 bits of resolution.
func (g *Generator) Float64() float64 {
	return float64(g.Uint32()) / (1 << 32)
}

// Intn returns a uniform int in [0, n). Panics with ErrInvalidRange unless
// 0 < n <= 1<<32 - 1.
func (g *Generator) Intn(n int) int {
	if n <= 0 || uint64(n) > 1<<32-1 {
		randomPanic(opIntn, ErrInvalidRange)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return int(g.pcg.Bounded(uint32(n)))
}

// Split derives an independent Generator for stream id. It consumes one
// draw from g, so repeated Splits with the same id still differ.
//
// Use it during setup to hand each worker its own stream.
func (g *Generator) Split(stream uint64) *Generator {
	parent := uint64(g.Uint32())<<32 | uint64(g.Uint32())
	child := &Generator{pcg: pcg.NewPCG32()}
	child.pcg.Seed(mixSeed(parent, stream), mixSeed(stream, parent)|1)
	return child
}

// mixSeed combines a parent seed and a stream id with a SplitMix64
// finalizer so that neighbouring inputs give unrelated outputs.
//
// Complexity: O(1).
func mixSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

var defaultGenerator = NewGenerator(0)

// Default returns the process-wide Generator used by the package-level functions.
func Default() *Generator { return defaultGenerator }

// Seed reseeds the process-wide Generator. Seed 0 seeds from the wall clock.
func Seed(seed uint64) { defaultGenerator.Seed(seed) }
