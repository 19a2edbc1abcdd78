package git

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

var ErrGitNotInstalled = errors.New("git not installed")

// Commander is the minimal surface the inspectors and the interactive flows
// need. Run streams output to the terminal, Output captures stdout and turns
// a non-zero exit into a *CommandError.
type Commander interface {
	Run(args ...string) error
	Output(args ...string) (string, error)
}

type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

type Shell struct {
	dir string
	bin string
}

func NewShell(dir string) (*Shell, error) {
	bin, err := exec.LookPath("git")
	if err != nil {
		return nil, ErrGitNotInstalled
	}
	return &Shell{dir: dir, bin: bin}, nil
}

func (s *Shell) Run(args ...string) error {
	logrus.WithField("args", args).Debug("git run")
	cmd := exec.Command(s.bin, args...)
	cmd.Dir = s.dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return &CommandError{Args: args, Err: err}
	}
	return nil
}

func (s *Shell) Output(args ...string) (string, error) {
	logrus.WithField("args", args).Debug("git output")
	cmd := exec.Command(s.bin, args...)
	cmd.Dir = s.dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", &CommandError{Args: args, Stderr: stderr.String(), Err: err}
	}
	return strings.TrimRight(string(out), "\n"), nil
}
