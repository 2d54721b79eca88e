// Package sim runs the push-pull gossip simulation. An Engine drives a
// population of voting nodes round by round until every node can prove a
// majority for the proposal, then reports how many rounds, exchanges, and
// payload bytes that took.
package sim
