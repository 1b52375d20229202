// Package git provides access to git operations via shell commands.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/fwojciec/revmoji"
)

// Compile-time interface verification.
var _ revmoji.GitRunner = (*Runner)(nil)

// baseRefCandidates are conventional trunk names, in resolution order. Each
// is tried as a local head, then as an origin remote-tracking ref.
var baseRefCandidates = []string{"main", "master", "trunk"}

// fallbackRef is used when no trunk candidate exists.
const fallbackRef = "HEAD~1"

// excludePathspecs filter generated files out of the diff.
var excludePathspecs = []string{
	":(exclude)*.gen.*",
	":(exclude).*.gen.*",
}

// Runner executes git commands via shell.
type Runner struct{}

// NewRunner creates a new git runner.
func NewRunner() *Runner {
	return &Runner{}
}

// IsRepo reports whether repoPath is inside a git repository.
func (r *Runner) IsRepo(ctx context.Context, repoPath string) (bool, error) {
	cmd := exec.CommandContext(ctx, "git", "-C", repoPath, "rev-parse", "--git-dir")
	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return false, nil
		}
		return false, fmt.Errorf("git rev-parse failed: %w", err)
	}
	return true, nil
}

// ResolveBaseRef returns the first trunk candidate that exists, checking local
// heads before origin remote-tracking refs. When none exists it falls back to
// the commit preceding HEAD.
func (r *Runner) ResolveBaseRef(ctx context.Context, repoPath string) (string, error) {
	for _, name := range baseRefCandidates {
		if r.refExists(ctx, repoPath, "refs/heads/"+name) {
			return name, nil
		}
		if r.refExists(ctx, repoPath, "refs/remotes/origin/"+name) {
			return "origin/" + name, nil
		}
	}
	return fallbackRef, nil
}

// refExists checks whether a fully qualified ref resolves.
func (r *Runner) refExists(ctx context.Context, repoPath, ref string) bool {
	cmd := exec.CommandContext(ctx, "git", "-C", repoPath, "rev-parse", "--verify", "--quiet", ref)
	return cmd.Run() == nil
}

// Diff returns the working-tree diff against baseRef, excluding generated
// files. An empty string means no changes and is not an error.
func (r *Runner) Diff(ctx context.Context, repoPath, baseRef string) (string, error) {
	args := []string{"-C", repoPath, "diff", baseRef, "--", "."}
	args = append(args, excludePathspecs...)
	cmd := exec.CommandContext(ctx, "git", args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("git diff failed: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git diff failed: %w", err)
	}
	return string(output), nil
}
