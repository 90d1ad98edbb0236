package core

import "time"

// RNG is the single-register generator that drives world generation. The
// stream depends only on the seed, so a seed reproduces a world on any
// platform.
type RNG struct {
	state uint32
	seed  uint32
}

// NewRNG creates an RNG seeded with seed. A zero seed is replaced by the
// current Unix time.
func NewRNG(seed uint32) *RNG {
	r := &RNG{}
	r.Seed(seed)
	return r
}

// Seed resets the register. The resolved value is kept for Resolved.
func (r *RNG) Seed(seed uint32) {
	if seed == 0 {
		seed = uint32(time.Now().Unix())
	}
	r.seed = seed
	r.state = seed
}

// Resolved returns the seed actually in use, after the zero-seed substitution.
func (r *RNG) Resolved() uint32 { return r.seed }

// Next returns the next value in the stream.
func (r *RNG) Next() uint32 {
	r.state += 0x9E3779B9
	out := r.state
	out = (out ^ (out >> 16)) * 0x85EBCA6B
	out = (out ^ (out >> 13)) * 0xC2B2AE35
	return out ^ (out >> 16)
}

// Uint32n returns Next() modulo n. The modulo bias is part of the stream
// contract; n == 0 returns 0 without consuming a draw.
func (r *RNG) Uint32n(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	return r.Next() % n
}
