package game

import "math/rand"

// Source supplies the randomness for piece spawning. Intn must return a
// uniform value in [0, n). Injecting a scripted source makes a game fully
// deterministic in tests.
type Source interface {
	Intn(n int) int
}

// newSource returns the default randomness source for the given seed.
func newSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
