package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/revmoji"
	"github.com/fwojciec/revmoji/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp wires an App with permissive mocks; tests override what they need.
func newTestApp() (*App, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	app := &App{
		RepoPath: "/repo",
		Git: &mock.GitRunner{
			IsRepoFn: func(ctx context.Context, repoPath string) (bool, error) {
				return true, nil
			},
			ResolveBaseRefFn: func(ctx context.Context, repoPath string) (string, error) {
				return "main", nil
			},
			DiffFn: func(ctx context.Context, repoPath, baseRef string) (string, error) {
				return "+added\n-removed\n", nil
			},
		},
		Summarizer: &mock.Summarizer{
			SummarizeFn: func(diffText string) (revmoji.ChangeMetrics, error) {
				return revmoji.ChangeMetrics{Added: 1, Removed: 1}, nil
			},
		},
		Classifier: &mock.Classifier{
			ClassifyFn: func(ctx context.Context, prompt string) (*revmoji.Classification, error) {
				return &revmoji.Classification{Emoji: "🙂", Reasoning: "small"}, nil
			},
		},
		Stdout: stdout,
		Stderr: stderr,
	}
	return app, stdout, stderr
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the classification emoji", func(t *testing.T) {
		t.Parallel()
		app, stdout, _ := newTestApp()

		err := app.Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "🙂\n", stdout.String())
	})

	t.Run("sends the diff content in the prompt", func(t *testing.T) {
		t.Parallel()
		app, _, _ := newTestApp()

		var gotPrompt string
		app.Classifier = &mock.Classifier{
			ClassifyFn: func(ctx context.Context, prompt string) (*revmoji.Classification, error) {
				gotPrompt = prompt
				return &revmoji.Classification{Emoji: "🙂", Reasoning: "ok"}, nil
			},
		}

		err := app.Run(context.Background())

		require.NoError(t, err)
		assert.Contains(t, gotPrompt, "+added")
		assert.Contains(t, gotPrompt, "-removed")
	})

	t.Run("empty diff short-circuits without a network call", func(t *testing.T) {
		t.Parallel()
		app, stdout, _ := newTestApp()

		app.Git.(*mock.GitRunner).DiffFn = func(ctx context.Context, repoPath, baseRef string) (string, error) {
			return "", nil
		}
		app.Classifier = &mock.Classifier{
			ClassifyFn: func(ctx context.Context, prompt string) (*revmoji.Classification, error) {
				t.Fatal("classifier must not be called for an empty diff")
				return nil, nil
			},
		}

		err := app.Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, revmoji.NoChangesEmoji+"\n", stdout.String())
	})

	t.Run("metadata-only diff short-circuits the same way", func(t *testing.T) {
		t.Parallel()
		app, stdout, _ := newTestApp()

		app.Git.(*mock.GitRunner).DiffFn = func(ctx context.Context, repoPath, baseRef string) (string, error) {
			return "diff --git a/s b/s\nold mode 100644\nnew mode 100755\n", nil
		}
		app.Summarizer = &mock.Summarizer{
			SummarizeFn: func(diffText string) (revmoji.ChangeMetrics, error) {
				return revmoji.ChangeMetrics{}, nil
			},
		}
		app.Classifier = &mock.Classifier{
			ClassifyFn: func(ctx context.Context, prompt string) (*revmoji.Classification, error) {
				t.Fatal("classifier must not be called when metrics are zero")
				return nil, nil
			},
		}

		err := app.Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, revmoji.NoChangesEmoji+"\n", stdout.String())
	})

	t.Run("classifier failure degrades to the fallback", func(t *testing.T) {
		t.Parallel()
		app, stdout, stderr := newTestApp()

		app.Classifier = &mock.Classifier{
			ClassifyFn: func(ctx context.Context, prompt string) (*revmoji.Classification, error) {
				return nil, errors.New("boom")
			},
		}

		err := app.Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, revmoji.FallbackEmoji+"\n", stdout.String())
		assert.Empty(t, stderr.String(), "error detail is verbose-only")
	})

	t.Run("verbose shows the classifier failure on stderr and two stdout lines", func(t *testing.T) {
		t.Parallel()
		app, stdout, stderr := newTestApp()
		app.Verbose = true

		app.Classifier = &mock.Classifier{
			ClassifyFn: func(ctx context.Context, prompt string) (*revmoji.Classification, error) {
				return nil, errors.New("boom")
			},
		}

		err := app.Run(context.Background())

		require.NoError(t, err)
		lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, revmoji.FallbackEmoji, lines[0])
		assert.Equal(t, "Reasoning: "+revmoji.FallbackReasoning, lines[1])
		assert.Contains(t, stderr.String(), "boom")
	})

	t.Run("fails when the directory is not a repository", func(t *testing.T) {
		t.Parallel()
		app, stdout, _ := newTestApp()

		app.Git.(*mock.GitRunner).IsRepoFn = func(ctx context.Context, repoPath string) (bool, error) {
			return false, nil
		}

		err := app.Run(context.Background())

		require.ErrorIs(t, err, ErrNotARepo)
		assert.Empty(t, stdout.String(), "stdout is reserved for the emoji contract")
	})

	t.Run("propagates git diff failures", func(t *testing.T) {
		t.Parallel()
		app, stdout, _ := newTestApp()

		app.Git.(*mock.GitRunner).DiffFn = func(ctx context.Context, repoPath, baseRef string) (string, error) {
			return "", errors.New("git diff failed: fatal: bad revision")
		}

		err := app.Run(context.Background())

		require.Error(t, err)
		assert.Empty(t, stdout.String())
	})
}

func TestNewClassifier(t *testing.T) {
	// t.Setenv forbids t.Parallel.

	t.Run("missing openai credential is a precondition error", func(t *testing.T) {
		t.Setenv("REVMOJI_PROVIDER", "")
		t.Setenv("OPENAI_API_KEY", "")

		_, err := newClassifier(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	})

	t.Run("missing gemini credential is a precondition error", func(t *testing.T) {
		t.Setenv("REVMOJI_PROVIDER", "gemini")
		t.Setenv("GEMINI_API_KEY", "")

		_, err := newClassifier(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "GEMINI_API_KEY")
	})

	t.Run("unknown provider is rejected", func(t *testing.T) {
		t.Setenv("REVMOJI_PROVIDER", "claude")

		_, err := newClassifier(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "claude")
	})

	t.Run("openai is the default provider", func(t *testing.T) {
		t.Setenv("REVMOJI_PROVIDER", "")
		t.Setenv("OPENAI_API_KEY", "test-key")

		classifier, err := newClassifier(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, classifier)
	})
}

func TestParseArgs(t *testing.T) {
	t.Parallel()

	t.Run("no arguments", func(t *testing.T) {
		t.Parallel()
		verbose, err := parseArgs(nil)
		require.NoError(t, err)
		assert.False(t, verbose)
	})

	t.Run("short verbose flag", func(t *testing.T) {
		t.Parallel()
		verbose, err := parseArgs([]string{"-v"})
		require.NoError(t, err)
		assert.True(t, verbose)
	})

	t.Run("long verbose flag", func(t *testing.T) {
		t.Parallel()
		verbose, err := parseArgs([]string{"--verbose"})
		require.NoError(t, err)
		assert.True(t, verbose)
	})

	t.Run("unknown flag is a usage error", func(t *testing.T) {
		t.Parallel()
		_, err := parseArgs([]string{"--fast"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--fast")
	})
}
