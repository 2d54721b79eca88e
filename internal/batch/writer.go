package batch

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"gossipsim/internal/sim"
)

var resultHeader = []string{
	"n", "k", "voting_steps", "num_iterations", "num_exchanges", "average_votes_held",
}

// WriteResults writes the result CSV: a header row, then one row per run in
// input order.
func WriteResults(w io.Writer, results []sim.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(resultHeader); err != nil {
		return errors.Wrap(err, "results: header")
	}
	for i, res := range results {
		record := []string{
			strconv.Itoa(res.N),
			strconv.Itoa(res.K),
			strconv.Itoa(res.VotingSteps),
			strconv.Itoa(res.NumIterations),
			strconv.Itoa(res.NumExchanges),
			strconv.FormatFloat(res.AverageVotesHeld, 'f', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrapf(err, "results: row %d", i+1)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "results: flush")
}
