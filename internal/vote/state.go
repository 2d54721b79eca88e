package vote

import (
	"sort"

	"gossipsim/internal/quorum"
)

// State is one node's record of which proposals it knows votes for and from
// whom. The simulation engine owns every State for the duration of a run;
// State is not safe for concurrent use.
type State struct {
	id         int
	population int
	votes      map[int]Set // proposal ID -> known voters
}

// NewState creates the vote record for node id in a population of the given
// size.
func NewState(id, population int) *State {
	return &State{
		id:         id,
		population: population,
		votes:      make(map[int]Set),
	}
}

// ID returns the node's own ID.
func (s *State) ID() int {
	return s.id
}

// Population returns the size of the population the node belongs to.
func (s *State) Population() int {
	return s.population
}

// VoteFor records the node's own vote for the proposal. Voting again has no
// further effect.
func (s *State) VoteFor(proposal int) {
	s.voters(proposal).Add(s.id)
}

// HasVotedFor reports whether the node itself voted for the proposal.
func (s *State) HasVotedFor(proposal int) bool {
	return s.votes[proposal].Has(s.id)
}

// HasQuorumFor reports whether the voters the node knows for the proposal
// form a strict majority of the population. A proposal the node has never
// heard of has no quorum.
func (s *State) HasQuorumFor(proposal int) bool {
	return quorum.Reached(len(s.votes[proposal]), s.population)
}

// ApplyDiff unions the diff's voter sets into the node's record. Applying the
// same diff twice, or two diffs in either order, leaves the same state.
func (s *State) ApplyDiff(d Diff) {
	for proposal, voters := range d {
		s.voters(proposal).Union(voters)
	}
}

// Proposals returns the IDs of every proposal the node knows votes for, in
// ascending order.
func (s *State) Proposals() []int {
	out := make([]int, 0, len(s.votes))
	for proposal := range s.votes {
		out = append(out, proposal)
	}
	sort.Ints(out)
	return out
}

// Voters returns a copy of the voter set the node knows for the proposal.
func (s *State) Voters(proposal int) Set {
	return s.votes[proposal].Copy()
}

// VoterCount returns the number of voters the node knows for the proposal.
func (s *State) VoterCount(proposal int) int {
	return len(s.votes[proposal])
}

// HasVoter reports whether the node already knows that id voted for the
// proposal.
func (s *State) HasVoter(proposal, id int) bool {
	return s.votes[proposal].Has(id)
}

// voters returns the mutable voter set for proposal, creating it if needed.
func (s *State) voters(proposal int) Set {
	v, ok := s.votes[proposal]
	if !ok {
		v = make(Set)
		s.votes[proposal] = v
	}
	return v
}
