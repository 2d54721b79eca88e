package vote

// Diff maps proposal IDs to voters the recipient does not know about yet.
// A diff is computed against a snapshot of the recipient, delivered once,
// and discarded; it never outlives the round that produced it.
type Diff map[int]Set

// Merge unions every voter set of other into d, creating proposal entries as
// needed. The merged-in sets are copied, so later changes to d never reach
// other.
func (d Diff) Merge(other Diff) {
	for proposal, voters := range other {
		cur, ok := d[proposal]
		if !ok {
			cur = make(Set, len(voters))
			d[proposal] = cur
		}
		cur.Union(voters)
	}
}

// Voters returns the total number of voter entries across all proposals.
func (d Diff) Voters() int {
	total := 0
	for _, voters := range d {
		total += len(voters)
	}
	return total
}
