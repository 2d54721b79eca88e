package batch

import (
	"log"
	"os"

	"github.com/pkg/errors"

	"gossipsim/internal/sim"
)

// Run reads parameters from inputPath, simulates every row on eng, and
// writes the results to outputPath. Every row is validated before the first
// simulation starts, and the output file is only created once all runs have
// finished, so a failing batch never leaves a truncated result file behind.
func Run(inputPath, outputPath string, eng *sim.Engine) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return errors.Wrap(err, "batch: open input")
	}
	defer f.Close()

	rows, err := ReadParams(f)
	if err != nil {
		return errors.Wrapf(err, "batch: %s", inputPath)
	}

	for i, p := range rows {
		if err := p.Validate(); err != nil {
			return errors.Wrapf(err, "batch: row %d", i+1)
		}
	}
	log.Printf("[batch] %s: %d parameter rows", inputPath, len(rows))

	results := make([]sim.Result, 0, len(rows))
	for i, p := range rows {
		log.Printf("[batch] row %d/%d: n=%d k=%d voting_steps=%d",
			i+1, len(rows), p.N, p.K, p.VotingSteps)
		res, err := eng.Run(p)
		if err != nil {
			return errors.Wrapf(err, "batch: row %d", i+1)
		}
		log.Printf("[batch] row %d/%d: converged after %d rounds, exchanges=%d, avg_votes=%.2f, payload_bytes=%d",
			i+1, len(rows), res.NumIterations, res.NumExchanges, res.AverageVotesHeld, res.PayloadBytes)
		results = append(results, res)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return errors.Wrap(err, "batch: create output")
	}
	if err := WriteResults(out, results); err != nil {
		out.Close()
		return err
	}
	return errors.Wrap(out.Close(), "batch: close output")
}
