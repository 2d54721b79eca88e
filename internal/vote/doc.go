// Package vote models a node's knowledge of proposal voters and the diffs
// gossip moves between nodes. Voter sets grow by set union only, which makes
// applying a diff commutative and idempotent and keeps quorum, once reached,
// stable for the rest of a run.
package vote
