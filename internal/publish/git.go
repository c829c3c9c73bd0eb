package publish

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kspace-org/kspace/internal/config"
)

// Publisher commits and ships changed files.
type Publisher interface {
	Publish(ctx context.Context, files ...string) (string, error)
}

// Runner executes a command in dir and returns its combined output.
type Runner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

// ExecRunner runs commands with os/exec.
func ExecRunner(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// CommandError reports a failed git invocation with its output.
type CommandError struct {
	Args   []string
	Output string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

// Git publishes by running git add, commit and push in Dir.
type Git struct {
	Dir     string
	Remote  string
	Branch  string
	Message string
	Push    bool
	Run     Runner
}

// NewGit creates a Git publisher for the repository containing dir.
func NewGit(cfg config.GitConfig, dir string) *Git {
	return &Git{
		Dir:     dir,
		Remote:  cfg.Remote,
		Branch:  cfg.Branch,
		Message: cfg.CommitMessage,
		Push:    cfg.Push,
		Run:     ExecRunner,
	}
}

// Publish stages files, commits them and pushes. A commit with nothing to
// commit is not an error. The combined output of every step is returned.
func (g *Git) Publish(ctx context.Context, files ...string) (string, error) {
	var log strings.Builder

	add := append([]string{"add", "--"}, files...)
	if _, err := g.git(ctx, &log, add...); err != nil {
		return log.String(), err
	}

	if out, err := g.git(ctx, &log, "commit", "-m", g.Message); err != nil {
		if !nothingToCommit(out) {
			return log.String(), err
		}
	}

	if g.Push {
		push := []string{"push"}
		if g.Remote != "" {
			push = append(push, g.Remote)
			if g.Branch != "" {
				push = append(push, g.Branch)
			}
		}
		if _, err := g.git(ctx, &log, push...); err != nil {
			return log.String(), err
		}
	}
	return log.String(), nil
}

func (g *Git) git(ctx context.Context, log *strings.Builder, args ...string) (string, error) {
	run := g.Run
	if run == nil {
		run = ExecRunner
	}
	out, err := run(ctx, g.Dir, "git", args...)
	fmt.Fprintf(log, "$ git %s\n%s", strings.Join(args, " "), out)
	if err != nil {
		return string(out), &CommandError{Args: args, Output: string(out), Err: err}
	}
	return string(out), nil
}

func nothingToCommit(out string) bool {
	return strings.Contains(out, "nothing to commit") || strings.Contains(out, "nothing added to commit")
}
