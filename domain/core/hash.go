package core

// Deterministic integer hashing for seeds, lattice indices and grid cells.
// Every generator derives its pseudo-randomness from these functions, so they
// must stay bit-stable across platforms and releases. Do not touch the
// constants: permutation tables, feature points and impulse draws all change
// with them.

const (
	noiseBit1 = 0xd2a80a3f
	noiseBit2 = 0xa884f197
	noiseBit3 = 0x6c736f4b
	noiseBit4 = 0xb79f3abb
	noiseBit5 = 0x1b56c4f5

	// Large primes decorrelating the axes when folding 2D/3D positions
	// into a single index.
	primeY = 198491317
	primeZ = 6542989
)

// Mangle32 scrambles a 32-bit position with a seed. Squirrel-style
// avalanching: raw positions in, well-distributed bits out.
func Mangle32(pos, seed uint32) uint32 {
	m := pos * noiseBit1
	m += seed
	m ^= m >> 9
	m += noiseBit2
	m ^= m >> 11
	m *= noiseBit3
	m ^= m >> 13
	m += noiseBit4
	m ^= m >> 15
	m *= noiseBit5
	m ^= m >> 7
	return m
}

// Hash2 returns a stable hash for a 2D integer cell + seed.
func Hash2(seed uint32, x, y int32) uint32 {
	return Mangle32(uint32(x)+primeY*uint32(y), seed)
}

// Hash3 returns a stable hash for a 3D integer cell + seed.
func Hash3(seed uint32, x, y, z int32) uint32 {
	return Mangle32(uint32(x)+primeY*uint32(y)+primeZ*uint32(z), seed)
}

// FoldSeed reduces a caller-supplied 64-bit seed to the 32-bit form the
// manglers consume. All 64-bit values are valid seeds.
func FoldSeed(seed int64) uint32 {
	return uint32(seed) ^ uint32(uint64(seed)>>32)
}

// UnitFloat maps a hash to [0, 1).
func UnitFloat(h uint32) float64 {
	return float64(h) / (1 << 32)
}

// SignedUnitFloat maps a hash to [-1, 1).
func SignedUnitFloat(h uint32) float64 {
	return UnitFloat(h)*2 - 1
}

// StreamSeed derives a 64-bit stream seed for a grid cell. Cells get
// independent, order-free random streams: the draw for a cell depends only on
// (seed, cell), never on evaluation order or neighboring cells.
func StreamSeed(seed uint32, x, y int32) uint64 {
	hi := Hash2(seed, x, y)
	lo := Hash2(seed^noiseBit3, x, y)
	return uint64(hi)<<32 | uint64(lo)
}
