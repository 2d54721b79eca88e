package batch

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"gossipsim/internal/sim"
)

// Input columns are found by header name, so column order never matters and
// unknown columns are ignored.
const (
	colN           = "n"
	colK           = "k"
	colVotingSteps = "voting_steps"
)

type columns struct {
	n           int
	k           int
	votingSteps int
}

// ReadParams parses every parameter row of an input CSV. The first record
// must be a header naming the n, k, and voting_steps columns.
func ReadParams(r io.Reader) ([]sim.Params, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("params: empty input, expected a header row")
	}
	if err != nil {
		return nil, errors.Wrap(err, "params: header")
	}
	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var out []sim.Params
	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "params: row %d", row)
		}

		n, err := parseCount(record[cols.n])
		if err != nil {
			return nil, errors.Wrapf(err, "params: row %d: %s", row, colN)
		}
		k, err := parseCount(record[cols.k])
		if err != nil {
			return nil, errors.Wrapf(err, "params: row %d: %s", row, colK)
		}
		steps, err := parseCount(record[cols.votingSteps])
		if err != nil {
			return nil, errors.Wrapf(err, "params: row %d: %s", row, colVotingSteps)
		}
		out = append(out, sim.Params{N: n, K: k, VotingSteps: steps})
	}
}

func resolveColumns(header []string) (columns, error) {
	cols := columns{n: -1, k: -1, votingSteps: -1}
	for i, name := range header {
		switch name {
		case colN:
			cols.n = i
		case colK:
			cols.k = i
		case colVotingSteps:
			cols.votingSteps = i
		}
	}
	switch {
	case cols.n < 0:
		return cols, errors.Errorf("params: missing column %q", colN)
	case cols.k < 0:
		return cols, errors.Errorf("params: missing column %q", colK)
	case cols.votingSteps < 0:
		return cols, errors.Errorf("params: missing column %q", colVotingSteps)
	}
	return cols, nil
}

// parseCount parses a non-negative count that fits an int. Signs, fractions,
// and junk are all rejected.
func parseCount(field string) (int, error) {
	v, err := strconv.ParseUint(field, 10, strconv.IntSize-1)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
