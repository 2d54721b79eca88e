package gossip

import (
	"math/rand"
	"testing"
)

func TestPartner_NeverReturnsSelf(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{2, 3, 10} {
		for self := 0; self < n; self++ {
			for i := 0; i < 200; i++ {
				if p := Partner(self, n, rng); p == self {
					t.Fatalf("Partner(%d, %d) returned self", self, n)
				}
			}
		}
	}
}

func TestPartner_StaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		p := Partner(0, 7, rng)
		if p < 0 || p >= 7 {
			t.Fatalf("Partner returned %d, want a value in [0, 7)", p)
		}
	}
}

func TestPartner_CoversAllOtherNodes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 5
	const self = 2

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		seen[Partner(self, n, rng)] = true
	}

	for id := 0; id < n; id++ {
		if id == self {
			continue
		}
		if !seen[id] {
			t.Errorf("Node %d was never drawn as a partner", id)
		}
	}
}

func TestPartner_PanicsOnTinyPopulation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic for a single-node population")
		}
	}()
	Partner(0, 1, rand.New(rand.NewSource(1)))
}
