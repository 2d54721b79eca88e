package sim

import (
	"github.com/pkg/errors"

	"gossipsim/internal/quorum"
)

// Params describes one simulation run: a population of N nodes out of which K
// vote, activated over VotingSteps rounds.
type Params struct {
	N           int
	K           int
	VotingSteps int
}

// Validate reports whether the parameters describe a simulation that can
// terminate. A run with fewer voters than a strict majority would gossip
// forever, so it is rejected here rather than started.
func (p Params) Validate() error {
	switch {
	case p.N < 2:
		return errors.Errorf("sim: invalid population %d (need at least 2 nodes)", p.N)
	case p.K < 1:
		return errors.Errorf("sim: invalid voter count %d (need at least 1)", p.K)
	case p.K > p.N:
		return errors.Errorf("sim: voter count %d exceeds population %d", p.K, p.N)
	case p.VotingSteps < 1:
		return errors.Errorf("sim: invalid voting steps %d (need at least 1)", p.VotingSteps)
	case p.K < quorum.Required(p.N):
		return errors.Errorf("sim: %d voters can never reach a majority of %d nodes (need %d)",
			p.K, p.N, quorum.Required(p.N))
	}
	return nil
}
