package generator

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// NewSeededRNG creates a seeded random number generator and returns the seed
// it used. A zero seed is replaced by a fresh one so runs vary while staying
// reproducible from the reported value.
func NewSeededRNG(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = freshSeed()
	}
	return rand.New(rand.NewSource(seed)), seed
}

func freshSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err == nil {
		if seed := int64(binary.LittleEndian.Uint64(b[:])); seed != 0 {
			return seed
		}
	}
	return time.Now().UnixNano()
}
