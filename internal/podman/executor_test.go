// SPDX-License-Identifier: MPL-2.0

package podman

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

type (
	// recordingDelegate captures every argument vector it is asked to
	// execute and plays back canned results.
	recordingDelegate struct {
		invocations [][]string
		lines       []string
		err         error
	}
)

func (d *recordingDelegate) Execute(_ context.Context, name string, args []string) ([]string, error) {
	d.invocations = append(d.invocations, append([]string{name}, args...))
	if d.err != nil {
		return nil, d.err
	}
	return d.lines, nil
}

func newTestExecutor(global GlobalOptions, delegate Delegate) (*Executor, *bytes.Buffer) {
	var logBuf bytes.Buffer
	logger := log.NewWithOptions(&logBuf, log.Options{Prefix: "podman"})
	return NewExecutor(logger, global, delegate), &logBuf
}

func TestExecutor_BuildReturnsOutputLines(t *testing.T) {
	t.Parallel()

	delegate := &recordingDelegate{lines: []string{"STEP 1/1: FROM alpine", "abc123def"}}
	exec, _ := newTestExecutor(GlobalOptions{}, delegate)

	lines, err := exec.Build(context.Background(), BuildSpec{
		ContainerFile: "Containerfile",
		Format:        FormatOCI,
		NoCache:       true,
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	hash, ok := ImageHash(lines)
	if !ok || hash != "abc123def" {
		t.Errorf("ImageHash() = (%q, %v), want (abc123def, true)", hash, ok)
	}

	want := []string{"podman", "build", "--format", "oci", "--no-cache", "Containerfile"}
	if len(delegate.invocations) != 1 || !slices.Equal(delegate.invocations[0], want) {
		t.Errorf("delegate saw %v, want single invocation %v", delegate.invocations, want)
	}
}

func TestExecutor_BuildConfigurationErrorSkipsExecution(t *testing.T) {
	t.Parallel()

	delegate := &recordingDelegate{}
	exec, _ := newTestExecutor(GlobalOptions{}, delegate)

	_, err := exec.Build(context.Background(), BuildSpec{Format: FormatOCI})
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("Build() error = %v, want ErrInvalidConfiguration", err)
	}
	if len(delegate.invocations) != 0 {
		t.Errorf("delegate was invoked despite a configuration error: %v", delegate.invocations)
	}
}

func TestExecutor_OperationVectors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		call func(*Executor) error
		want []string
	}{
		{
			name: "tag",
			call: func(e *Executor) error { return e.Tag(context.Background(), "abc123", "repo/img:1") },
			want: []string{"podman", "tag", "abc123", "repo/img:1"},
		},
		{
			name: "save",
			call: func(e *Executor) error { return e.Save(context.Background(), "img.tar", "repo/img:1") },
			want: []string{"podman", "save", "-o", "img.tar", "repo/img:1"},
		},
		{
			name: "push",
			call: func(e *Executor) error { return e.Push(context.Background(), "repo/img:1") },
			want: []string{"podman", "push", "repo/img:1"},
		},
		{
			name: "version",
			call: func(e *Executor) error {
				_, err := e.Version(context.Background())
				return err
			},
			want: []string{"podman", "version"},
		},
		{
			name: "rmi",
			call: func(e *Executor) error { return e.RemoveLocalImage(context.Background(), "repo/img:1") },
			want: []string{"podman", "rmi", "repo/img:1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			delegate := &recordingDelegate{}
			exec, _ := newTestExecutor(GlobalOptions{}, delegate)

			if err := tt.call(exec); err != nil {
				t.Fatalf("%s error = %v", tt.name, err)
			}
			if len(delegate.invocations) != 1 || !slices.Equal(delegate.invocations[0], tt.want) {
				t.Errorf("delegate saw %v, want single invocation %v", delegate.invocations, tt.want)
			}
		})
	}
}

func TestExecutor_ExecutionErrorsPropagateUnmodified(t *testing.T) {
	t.Parallel()

	execErr := &ExecutionError{
		Argv:     []string{"podman", "push", "repo/img:1"},
		ExitCode: 125,
		Output:   []string{"denied: access forbidden"},
	}
	delegate := &recordingDelegate{err: execErr}
	exec, _ := newTestExecutor(GlobalOptions{}, delegate)

	err := exec.Push(context.Background(), "repo/img:1")
	if !errors.Is(err, ErrCommandFailed) {
		t.Fatalf("Push() error = %v, want ErrCommandFailed", err)
	}
	var gotExecErr *ExecutionError
	if !errors.As(err, &gotExecErr) {
		t.Fatalf("Push() error = %v, want *ExecutionError", err)
	}
	if gotExecErr != execErr {
		t.Error("execution error was rewrapped; non-login failures must surface as-is")
	}
	if !strings.Contains(err.Error(), "denied: access forbidden") {
		t.Errorf("error message lost the captured output: %q", err.Error())
	}
}

func TestExecutor_LoginSuccessLogsNothing(t *testing.T) {
	t.Parallel()

	delegate := &recordingDelegate{lines: []string{"Login Succeeded!"}}
	exec, logBuf := newTestExecutor(GlobalOptions{}, delegate)

	creds := RegistryCredentials{Registry: "registry.example.com", Username: "builder", Password: "hunter2"}
	if err := exec.Login(context.Background(), creds); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if strings.Contains(logBuf.String(), "hunter2") {
		t.Errorf("log sink contains the raw password: %q", logBuf.String())
	}

	want := []string{"podman", "login", "registry.example.com", "-u", "builder", "-p=hunter2"}
	if len(delegate.invocations) != 1 || !slices.Equal(delegate.invocations[0], want) {
		t.Errorf("delegate saw %v, want single invocation %v", delegate.invocations, want)
	}
}

func TestExecutor_LoginFailureIsRedacted(t *testing.T) {
	t.Parallel()

	password := "p@ss/w0rd"
	argv := []string{"podman", "login", "registry.example.com", "-u", "builder", "-p=" + password}
	delegate := &recordingDelegate{err: &ExecutionError{
		Argv:     argv,
		ExitCode: 125,
		Output:   []string{"error logging in: invalid username/password"},
	}}
	exec, logBuf := newTestExecutor(GlobalOptions{}, delegate)

	err := exec.Login(context.Background(), RegistryCredentials{
		Registry: "registry.example.com",
		Username: "builder",
		Password: password,
	})
	if err == nil {
		t.Fatal("Login() expected error, got nil")
	}

	var loginErr *LoginError
	if !errors.As(err, &loginErr) {
		t.Fatalf("Login() error = %T, want *LoginError", err)
	}
	if !errors.Is(err, ErrLoginFailed) {
		t.Errorf("error %v does not match ErrLoginFailed", err)
	}

	// No path back to the unredacted execution error.
	if errors.Is(err, ErrCommandFailed) {
		t.Error("login error still unwraps to the raw execution error")
	}
	var leaked *ExecutionError
	if errors.As(err, &leaked) {
		t.Error("login error exposes the original *ExecutionError")
	}

	if strings.Contains(err.Error(), password) {
		t.Errorf("error message contains the raw password: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "-p="+passwordMask) {
		t.Errorf("error message lacks the masked flag: %q", err.Error())
	}
	if strings.Contains(logBuf.String(), password) {
		t.Errorf("log sink contains the raw password: %q", logBuf.String())
	}
	if !strings.Contains(logBuf.String(), passwordMask) {
		t.Errorf("log sink is missing the scrubbed message: %q", logBuf.String())
	}
}

func TestExecutor_NilDefaultsAreUsable(t *testing.T) {
	t.Parallel()

	exec := NewExecutor(nil, GlobalOptions{}, &recordingDelegate{})
	if err := exec.Tag(context.Background(), "abc", "repo/img:1"); err != nil {
		t.Fatalf("Tag() error = %v", err)
	}
}
