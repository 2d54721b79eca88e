package batch

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gossipsim/internal/sim"
)

func newRunnerEngine() *sim.Engine {
	return sim.NewEngine(rand.New(rand.NewSource(1)), 0, 0)
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "params.csv")
	output := filepath.Join(dir, "results.csv")
	require.NoError(t, os.WriteFile(input, []byte("n,k,voting_steps\n3,3,1\n2,2,1\n"), 0o644))

	require.NoError(t, Run(input, output, newRunnerEngine()))

	raw, err := os.ReadFile(output)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "n,k,voting_steps,num_iterations,num_exchanges,average_votes_held", lines[0])

	// The three-node row converges in one round with six exchanges whatever
	// the partner draws; only its average depends on them.
	require.True(t, strings.HasPrefix(lines[1], "3,3,1,1,6,"), "row 1 = %q", lines[1])

	// The two-node row is fully forced.
	require.Equal(t, "2,2,1,1,4,2", lines[2])
}

func TestRun_HeaderOnlyInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "params.csv")
	output := filepath.Join(dir, "results.csv")
	require.NoError(t, os.WriteFile(input, []byte("n,k,voting_steps\n"), 0o644))

	require.NoError(t, Run(input, output, newRunnerEngine()))

	raw, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "n,k,voting_steps,num_iterations,num_exchanges,average_votes_held\n", string(raw))
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	err := Run(filepath.Join(dir, "no-such-file.csv"), filepath.Join(dir, "out.csv"), newRunnerEngine())
	require.Error(t, err)
	require.Contains(t, err.Error(), "open input")
}

func TestRun_InvalidRowWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "params.csv")
	output := filepath.Join(dir, "results.csv")

	// First row is fine; the second can never converge. Nothing may run and
	// no output file may appear.
	require.NoError(t, os.WriteFile(input, []byte("n,k,voting_steps\n3,3,1\n5,1,1\n"), 0o644))

	err := Run(input, output, newRunnerEngine())
	require.Error(t, err)
	require.Contains(t, err.Error(), "row 2")

	_, statErr := os.Stat(output)
	require.True(t, os.IsNotExist(statErr), "output file exists after failed batch")
}

func TestRun_UnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "params.csv")
	require.NoError(t, os.WriteFile(input, []byte("n,k,voting_steps\n2,2,1\n"), 0o644))

	err := Run(input, filepath.Join(dir, "missing", "results.csv"), newRunnerEngine())
	require.Error(t, err)
	require.Contains(t, err.Error(), "create output")
}
