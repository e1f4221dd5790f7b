// Package runner executes resolved scripts as subprocesses with a hard
// wall-clock timeout. The argument is passed as a single argv element with
// no shell interpretation, so its content cannot inject commands.
package runner

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// Status classifies the outcome of one script execution.
type Status string

// Status values for Result.Status.
const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
	StatusTimeout Status = "timeout"
)

// Result is the outcome of one script run. Exactly one of Output and Err is
// meaningful: Output for StatusSuccess, Err otherwise.
type Result struct {
	Status   Status
	Output   string // trimmed combined stdout+stderr
	Err      string // explanation for failure or timeout
	Duration time.Duration
}

// Runner launches scripts with a fixed execution timeout.
// It is stateless and safe for concurrent use; each Run spawns an
// independent process.
type Runner struct {
	timeout time.Duration
}

// New creates a Runner with the given execution timeout.
func New(timeout time.Duration) *Runner {
	return &Runner{timeout: timeout}
}

// Run executes the script at path with arg as its only argument and blocks
// until the process exits or the timeout elapses. On timeout the whole
// process group is killed, so no child outlives the call. Partial output
// from a timed-out process is discarded.
func (r *Runner) Run(path, arg string) Result {
	start := time.Now()

	cmd := exec.Command(path, arg)
	var combined bytes.Buffer
	cmd.Stdout = &combined
	cmd.Stderr = &combined
	// Own process group so a timeout kill reaches the script's children.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		return Result{
			Status:   StatusFailure,
			Err:      launchError(path, err),
			Duration: time.Since(start),
		}
	}

	waitCh := make(chan error, 1)
	go func() { waitCh <- cmd.Wait() }()

	select {
	case err := <-waitCh:
		return r.classify(combined.Bytes(), err, time.Since(start))
	case <-time.After(r.timeout):
		_ = unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
		<-waitCh // reap; the group kill guarantees this returns
		return Result{
			Status:   StatusTimeout,
			Err:      fmt.Sprintf("execution timed out after %s", r.timeout),
			Duration: time.Since(start),
		}
	}
}

// classify maps a completed process into a Result. Exit 0 is success with
// the trimmed output as payload. Non-zero exit is a failure carrying the
// trimmed output when present, or a synthesized exit-code message when the
// process produced none.
func (r *Runner) classify(output []byte, waitErr error, dur time.Duration) Result {
	trimmed := strings.TrimSpace(string(output))

	if waitErr == nil {
		return Result{Status: StatusSuccess, Output: trimmed, Duration: dur}
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		msg := trimmed
		if msg == "" {
			msg = fmt.Sprintf("script exited with code %d", exitErr.ExitCode())
		}
		return Result{Status: StatusFailure, Err: msg, Duration: dur}
	}

	return Result{Status: StatusFailure, Err: waitErr.Error(), Duration: dur}
}

// launchError shapes process start failures into short messages.
func launchError(path string, err error) string {
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return fmt.Sprintf("cannot launch %s: %v", path, execErr.Err)
	}
	return fmt.Sprintf("cannot launch %s: %v", path, err)
}
