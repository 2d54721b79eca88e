package it

import (
	"bytes"
	"errors"
	"os/exec"
	"path/filepath"
)

// DefaultBinary is where the CLI lands when built from the repository root
// with 'go build -o gossipsim ./cmd/gossipsim'.
var DefaultBinary = filepath.Join("..", "..", "gossipsim")

// RunResult captures one CLI invocation.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunCLI invokes the binary with args and waits for it to exit. A non-zero
// exit status is reported through ExitCode, not as an error; the returned
// error is reserved for failures to run the binary at all.
func RunCLI(binary string, args ...string) (RunResult, error) {
	cmd := exec.Command(binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := RunResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return res, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	return res, err
}
