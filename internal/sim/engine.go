package sim

import (
	"log"
	"math/rand"

	"github.com/pkg/errors"

	"gossipsim/internal/gossip"
	"gossipsim/internal/schedule"
	"gossipsim/internal/vote"
	"gossipsim/internal/wire"
)

// proposalID is the single proposal every run votes on.
const proposalID = 0

// ErrRoundLimit is returned when a capped run does not converge in time.
var ErrRoundLimit = errors.New("round limit reached before convergence")

// Engine runs simulations. One engine reuses its random stream across runs,
// so a batch of runs is reproducible from a single seed.
type Engine struct {
	rng       *rand.Rand
	maxRounds int
	logEvery  int
}

// NewEngine creates an engine drawing partners from rng. maxRounds caps the
// rounds of a single run, 0 means no cap. logEvery emits a progress line
// every that many rounds, 0 silences progress.
func NewEngine(rng *rand.Rand, maxRounds, logEvery int) *Engine {
	return &Engine{
		rng:       rng,
		maxRounds: maxRounds,
		logEvery:  logEvery,
	}
}

// Run simulates one parameter set to convergence.
//
// Each round first activates the scheduled voters, then lets every node
// contact one random partner. Both directions of a contact are computed
// against the state at the start of the round; deliveries are buffered per
// recipient and committed only after every contact, so the order nodes take
// their turns in never changes the outcome of a round.
func (e *Engine) Run(p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	sched, err := schedule.Build(p.K, p.VotingSteps)
	if err != nil {
		return Result{}, err
	}

	nodes := make([]*vote.State, p.N)
	for i := range nodes {
		nodes[i] = vote.NewState(i, p.N)
	}

	var (
		iterations   int
		exchanges    int
		payloadBytes int64
	)
	for !converged(nodes) {
		if e.maxRounds > 0 && iterations >= e.maxRounds {
			return Result{}, errors.Wrapf(ErrRoundLimit, "sim: n=%d k=%d after %d rounds",
				p.N, p.K, iterations)
		}

		activate(nodes, sched.ForRound(iterations))

		updates := make(map[int]vote.Diff, p.N)
		for _, node := range nodes {
			partner := gossip.Partner(node.ID(), p.N, e.rng)
			forSelf, forPartner := gossip.PushPull(node, nodes[partner])
			if forSelf != nil {
				exchanges++
				payloadBytes += int64(wire.DiffSize(forSelf))
				buffer(updates, node.ID(), forSelf)
			}
			if forPartner != nil {
				exchanges++
				payloadBytes += int64(wire.DiffSize(forPartner))
				buffer(updates, partner, forPartner)
			}
		}
		for id, diff := range updates {
			nodes[id].ApplyDiff(diff)
		}
		iterations++

		if e.logEvery > 0 && iterations%e.logEvery == 0 {
			log.Printf("[sim] n=%d k=%d: round %d done, exchanges=%d, payload_bytes=%d",
				p.N, p.K, iterations, exchanges, payloadBytes)
		}
	}

	return Result{
		Params:           p,
		NumIterations:    iterations,
		NumExchanges:     exchanges,
		AverageVotesHeld: averageVotesHeld(nodes),
		PayloadBytes:     payloadBytes,
	}, nil
}

// converged reports whether every node sees a majority for the proposal.
func converged(nodes []*vote.State) bool {
	for _, node := range nodes {
		if !node.HasQuorumFor(proposalID) {
			return false
		}
	}
	return true
}

// activate makes the first count nodes that have not voted yet cast their
// vote, in node ID order.
func activate(nodes []*vote.State, count int) {
	for _, node := range nodes {
		if count == 0 {
			return
		}
		if !node.HasVotedFor(proposalID) {
			node.VoteFor(proposalID)
			count--
		}
	}
}

// buffer queues diff for delivery to node id at the end of the round. Diffs
// for the same recipient are unioned.
func buffer(updates map[int]vote.Diff, id int, diff vote.Diff) {
	if cur, ok := updates[id]; ok {
		cur.Merge(diff)
		return
	}
	updates[id] = diff
}

func averageVotesHeld(nodes []*vote.State) float64 {
	total := 0
	for _, node := range nodes {
		total += node.VoterCount(proposalID)
	}
	return float64(total) / float64(len(nodes))
}
