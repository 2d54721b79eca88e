// Package gossip implements the push-pull exchange between two nodes: the
// one-directional knowledge diff, the bidirectional contact built from two
// such diffs, and uniform random partner selection.
package gossip
