// SPDX-License-Identifier: MPL-2.0

package podman

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"
	"testing"
)

type (
	// mockCommandRecorder captures arguments passed to exec.CommandContext
	// for verification. It uses the TestHelperProcess pattern to simulate
	// command execution.
	mockCommandRecorder struct {
		invocations []mockInvocation
		exitCode    int
		stdout      string
		stderr      string
	}

	mockInvocation struct {
		name string
		args []string
	}
)

// commandFunc returns a function that replaces the delegate's exec command
// factory. It records invocations and returns a command that re-runs the
// test binary as a helper process with canned output.
func (m *mockCommandRecorder) commandFunc(t *testing.T) ExecCommandFunc {
	t.Helper()
	return func(ctx context.Context, name string, args ...string) *exec.Cmd {
		m.invocations = append(m.invocations, mockInvocation{name: name, args: args})

		cs := []string{"-test.run=TestHelperProcess", "--", name}
		cs = append(cs, args...)
		cmd := exec.CommandContext(ctx, os.Args[0], cs...)
		cmd.Env = []string{
			"GO_WANT_HELPER_PROCESS=1",
			fmt.Sprintf("GO_HELPER_EXIT_CODE=%d", m.exitCode),
			"GO_HELPER_STDOUT=" + m.stdout,
			"GO_HELPER_STDERR=" + m.stderr,
		}
		return cmd
	}
}

// TestHelperProcess simulates podman for the mock recorder. It reads its
// behavior from environment variables and is not a real test.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	if stdout := os.Getenv("GO_HELPER_STDOUT"); stdout != "" {
		fmt.Fprint(os.Stdout, stdout)
	}
	if stderr := os.Getenv("GO_HELPER_STDERR"); stderr != "" {
		fmt.Fprint(os.Stderr, stderr)
	}

	exitCode := 0
	if code := os.Getenv("GO_HELPER_EXIT_CODE"); code != "" {
		fmt.Sscanf(code, "%d", &exitCode)
	}
	os.Exit(exitCode)
}

func TestProcessDelegate_ReturnsStdoutLinesInOrder(t *testing.T) {
	t.Parallel()

	recorder := &mockCommandRecorder{stdout: "STEP 1/2: FROM alpine\nSTEP 2/2: RUN true\nabc123\n"}
	delegate := NewProcessDelegate(WithExecCommand(recorder.commandFunc(t)))

	lines, err := delegate.Execute(context.Background(), "podman", []string{"build", "--format", "oci", "Containerfile"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := []string{"STEP 1/2: FROM alpine", "STEP 2/2: RUN true", "abc123"}
	if !slices.Equal(lines, want) {
		t.Errorf("lines = %v, want %v", lines, want)
	}

	if len(recorder.invocations) != 1 {
		t.Fatalf("recorded %d invocations, want 1", len(recorder.invocations))
	}
	inv := recorder.invocations[0]
	if inv.name != "podman" || !slices.Equal(inv.args, []string{"build", "--format", "oci", "Containerfile"}) {
		t.Errorf("invocation = %s %v, want podman build --format oci Containerfile", inv.name, inv.args)
	}
}

func TestProcessDelegate_NonZeroExit(t *testing.T) {
	t.Parallel()

	recorder := &mockCommandRecorder{
		exitCode: 125,
		stdout:   "partial progress\n",
		stderr:   "Error: no such image\n",
	}
	delegate := NewProcessDelegate(WithExecCommand(recorder.commandFunc(t)))

	_, err := delegate.Execute(context.Background(), "podman", []string{"rmi", "repo/img:1"})
	if err == nil {
		t.Fatal("Execute() expected error, got nil")
	}

	var execErr *ExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("Execute() error = %T, want *ExecutionError", err)
	}
	if execErr.ExitCode != 125 {
		t.Errorf("ExitCode = %d, want 125", execErr.ExitCode)
	}
	if want := []string{"podman", "rmi", "repo/img:1"}; !slices.Equal(execErr.Argv, want) {
		t.Errorf("Argv = %v, want %v", execErr.Argv, want)
	}
	if !slices.Contains(execErr.Output, "partial progress") || !slices.Contains(execErr.Output, "Error: no such image") {
		t.Errorf("Output = %v, want both captured streams", execErr.Output)
	}
	if !errors.Is(err, ErrCommandFailed) {
		t.Errorf("error %v does not match ErrCommandFailed", err)
	}
	if !strings.Contains(err.Error(), "podman rmi repo/img:1") {
		t.Errorf("error message lacks the command line: %q", err.Error())
	}
}

func TestProcessDelegate_LaunchFailure(t *testing.T) {
	t.Parallel()

	delegate := NewProcessDelegate()

	_, err := delegate.Execute(context.Background(), "/nonexistent/podman-binary", []string{"version"})
	if err == nil {
		t.Fatal("Execute() expected error, got nil")
	}

	var execErr *ExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("Execute() error = %T, want *ExecutionError", err)
	}
	if execErr.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1 for a launch failure", execErr.ExitCode)
	}
}

func TestDryRunDelegate_DoesNotExecute(t *testing.T) {
	t.Parallel()

	delegate := &DryRunDelegate{}
	lines, err := delegate.Execute(context.Background(), "podman", []string{"push", "repo/img:1"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if lines != nil {
		t.Errorf("dry run produced output lines: %v", lines)
	}
}
