package gossip

import (
	"gossipsim/internal/vote"
)

// Push computes the diff a sender would push to a receiver: for every
// proposal the sender knows votes for and the receiver holds no quorum on,
// the voters the sender knows and the receiver does not. Returns nil when the
// receiver would learn nothing, so callers can skip counting an exchange.
func Push(from, to *vote.State) vote.Diff {
	diff := make(vote.Diff)
	for _, proposal := range from.Proposals() {
		// A receiver that already has a quorum needs no more voters.
		if to.HasQuorumFor(proposal) {
			continue
		}
		missing := from.Voters(proposal).Minus(to.Voters(proposal))
		if len(missing) > 0 {
			diff[proposal] = missing
		}
	}

	if len(diff) == 0 {
		return nil
	}
	return diff
}

// PushPull models one bidirectional contact as two independent directional
// computations against the parties' current state: what b pushes to a, and
// what a pushes to b.
func PushPull(a, b *vote.State) (forA, forB vote.Diff) {
	return Push(b, a), Push(a, b)
}
