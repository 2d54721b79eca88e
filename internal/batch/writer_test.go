package batch

import (
	"strings"
	"testing"

	"gossipsim/internal/sim"
)

func TestWriteResults(t *testing.T) {
	results := []sim.Result{
		{
			Params:           sim.Params{N: 3, K: 3, VotingSteps: 1},
			NumIterations:    1,
			NumExchanges:     6,
			AverageVotesHeld: 8.0 / 3.0,
			PayloadBytes:     30,
		},
		{
			Params:           sim.Params{N: 2, K: 2, VotingSteps: 1},
			NumIterations:    1,
			NumExchanges:     4,
			AverageVotesHeld: 2,
			PayloadBytes:     20,
		},
	}

	var buf strings.Builder
	if err := WriteResults(&buf, results); err != nil {
		t.Fatalf("WriteResults: %v", err)
	}

	want := "n,k,voting_steps,num_iterations,num_exchanges,average_votes_held\n" +
		"3,3,1,1,6,2.6666666666666665\n" +
		"2,2,1,1,4,2\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteResults output:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteResults_Empty(t *testing.T) {
	var buf strings.Builder
	if err := WriteResults(&buf, nil); err != nil {
		t.Fatalf("WriteResults: %v", err)
	}
	want := "n,k,voting_steps,num_iterations,num_exchanges,average_votes_held\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteResults output %q, want header only", got)
	}
}
