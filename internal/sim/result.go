package sim

// Result captures what one simulation run took to converge.
type Result struct {
	Params

	// NumIterations is the number of gossip rounds until every node saw a
	// majority.
	NumIterations int

	// NumExchanges counts directional diff deliveries. A contact between two
	// nodes counts once per direction that actually carried news.
	NumExchanges int

	// AverageVotesHeld is the mean number of voters a node knows at the end
	// of the run.
	AverageVotesHeld float64

	// PayloadBytes is the wire-framed size of every delivered diff summed
	// over the whole run.
	PayloadBytes int64
}
