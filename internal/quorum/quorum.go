package quorum

import "fmt"

// Reached reports whether count voters form a strict majority of population.
// A population below 1 has no meaningful majority and panics.
func Reached(count, population int) bool {
	if population < 1 {
		panic(fmt.Sprintf("quorum: population must be positive, got %d", population))
	}
	return 2*count > population
}

// Required returns the smallest voter count that satisfies Reached for the
// given population: floor(population/2) + 1.
func Required(population int) int {
	if population < 1 {
		panic(fmt.Sprintf("quorum: population must be positive, got %d", population))
	}
	return population/2 + 1
}
