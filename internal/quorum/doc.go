// Package quorum provides the strict-majority predicate that decides when a
// set of voters counts as agreement of the whole population. The predicate is
// monotonic: once a voter count reaches quorum, any larger count does too.
package quorum
