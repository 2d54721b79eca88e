package gossip

import (
	"fmt"
	"math/rand"
)

// Partner draws a uniformly random gossip partner for node self among n
// nodes, excluding self, by rejection sampling. A population below 2 leaves
// nothing to draw and panics.
func Partner(self, n int, rng *rand.Rand) int {
	if n < 2 {
		panic(fmt.Sprintf("gossip: cannot pick a partner among %d nodes", n))
	}
	for {
		p := rng.Intn(n)
		if p != self {
			return p
		}
	}
}
