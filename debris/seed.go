package debris

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"time"
)

// RandomSeed draws a seed from crypto/rand, falling back to the clock.
func RandomSeed() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.BigEndian.Uint64(b[:]) &^ (1 << 63))
}

// NewRand returns a generator for seed; zero picks a random seed.
func NewRand(seed int64) *mrand.Rand {
	if seed == 0 {
		seed = RandomSeed()
	}
	return mrand.New(mrand.NewSource(seed))
}
