package pdf2image

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Runner executes one external tool invocation: spawn the executable with
// the given arguments, feed stdin to its input stream, and return whatever
// it wrote to stdout.
//
// A nonzero exit status is not an error at this layer. The poppler tools
// write partial or empty output when they fail, and the caller's decoder
// is what rejects that; a Runner only fails when the process cannot be
// spawned or the pipes break.
//
// Tests substitute a deterministic Runner via [WithRunner].
type Runner interface {
	Run(ctx context.Context, exe string, args []string, stdin []byte) ([]byte, error)
}

// execRunner is the production Runner, backed by os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, exe string, args []string, stdin []byte) ([]byte, error) {
	cmd := exec.CommandContext(ctx, exe, args...)
	cmd.Stdin = bytes.NewReader(stdin)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Tool ran and exited nonzero; return what it produced.
			return stdout.Bytes(), nil
		}
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return nil, fmt.Errorf("pdf2image: spawning %s: %w", exe, err)
		}
		return nil, fmt.Errorf("pdf2image: running %s: %w", exe, err)
	}
	return stdout.Bytes(), nil
}

// ExecutableResolver maps a tool name such as "pdftoppm" to the path or
// command used to invoke it.
type ExecutableResolver func(tool string) string

// popplerPathEnv names a directory holding the poppler executables. When
// unset, tools are resolved through the regular executable search path.
const popplerPathEnv = "PDF2IMAGE_POPPLER_PATH"

// defaultResolver honors popplerPathEnv and appends the platform
// executable suffix on Windows.
func defaultResolver(tool string) string {
	if runtime.GOOS == "windows" {
		tool += ".exe"
	}
	if dir := os.Getenv(popplerPathEnv); dir != "" {
		return filepath.Join(dir, tool)
	}
	return tool
}

// dirResolver resolves tools inside a fixed directory, ignoring the
// environment.
func dirResolver(dir string) ExecutableResolver {
	return func(tool string) string {
		if runtime.GOOS == "windows" {
			tool += ".exe"
		}
		return filepath.Join(dir, tool)
	}
}
