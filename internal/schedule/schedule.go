package schedule

import "github.com/pkg/errors"

// Schedule holds, per round index, how many additional voters become active.
// Rounds past the end of the schedule activate nobody.
type Schedule []int

// Build splits k voters into steps near-equal chunks: every round activates
// k/steps voters and the final round absorbs the remainder, so the quotas
// always sum to exactly k.
func Build(k, steps int) (Schedule, error) {
	if steps < 1 {
		return nil, errors.Errorf("schedule: steps must be at least 1, got %d", steps)
	}
	if k < 0 {
		return nil, errors.Errorf("schedule: voter pool must not be negative, got %d", k)
	}

	per := k / steps
	s := make(Schedule, steps)
	for i := range s {
		s[i] = per
	}
	s[steps-1] = k - (steps-1)*per
	return s, nil
}

// ForRound returns the number of voters to activate in the given round.
func (s Schedule) ForRound(round int) int {
	if round < 0 || round >= len(s) {
		return 0
	}
	return s[round]
}

// Total returns the sum of all per-round quotas.
func (s Schedule) Total() int {
	total := 0
	for _, quota := range s {
		total += quota
	}
	return total
}
