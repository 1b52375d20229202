package mock

import (
	"context"

	"github.com/fwojciec/revmoji"
)

// Compile-time interface verification.
var _ revmoji.GitRunner = (*GitRunner)(nil)

// GitRunner is a mock implementation of revmoji.GitRunner.
type GitRunner struct {
	IsRepoFn         func(ctx context.Context, repoPath string) (bool, error)
	ResolveBaseRefFn func(ctx context.Context, repoPath string) (string, error)
	DiffFn           func(ctx context.Context, repoPath, baseRef string) (string, error)
}

func (g *GitRunner) IsRepo(ctx context.Context, repoPath string) (bool, error) {
	return g.IsRepoFn(ctx, repoPath)
}

func (g *GitRunner) ResolveBaseRef(ctx context.Context, repoPath string) (string, error) {
	return g.ResolveBaseRefFn(ctx, repoPath)
}

func (g *GitRunner) Diff(ctx context.Context, repoPath, baseRef string) (string, error) {
	return g.DiffFn(ctx, repoPath, baseRef)
}
