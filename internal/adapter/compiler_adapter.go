package adapter

import (
	"bytes"
	"context"
	"os/exec"
)

// CompileResult holds the captured output of one compiler invocation.
type CompileResult struct {
	Command []string
	Stdout  string
	Stderr  string
}

// CompilerAdapter abstracts running the external C compiler.
type CompilerAdapter interface {
	// Run executes compiler with args and captures stdout and stderr.
	// A non-nil error means the process could not be started or exited
	// with a non-zero status.
	Run(ctx context.Context, compiler string, args []string) (CompileResult, error)
}

// LocalCompilerAdapter provides a concrete implementation using os/exec.
// There is no timeout: a hung compiler blocks until the process is killed.
type LocalCompilerAdapter struct{}

// NewLocalCompilerAdapter constructs a LocalCompilerAdapter.
func NewLocalCompilerAdapter() *LocalCompilerAdapter {
	return &LocalCompilerAdapter{}
}

// Run executes the compiler and waits for it to exit.
func (a *LocalCompilerAdapter) Run(ctx context.Context, compiler string, args []string) (CompileResult, error) {
	result := CompileResult{
		Command: append([]string{compiler}, args...),
	}

	// #nosec G204 - the compiler and its flags are chosen by the user
	cmd := exec.CommandContext(ctx, compiler, args...)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	return result, err
}
