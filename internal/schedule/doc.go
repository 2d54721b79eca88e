// Package schedule splits a voter pool into per-round activation quotas so a
// simulation can stagger when eligible voters cast their vote.
package schedule
