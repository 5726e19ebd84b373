package utils

import (
	"math/rand/v2"
	"time"
)

// NewRand returns a PCG-backed generator. A zero seed is replaced by the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
