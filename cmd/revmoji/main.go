// Command revmoji classifies the review effort of pending changes against the
// trunk branch as a single emoji, by sending the diff content to a model.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fwojciec/revmoji"
	"github.com/fwojciec/revmoji/gemini"
	"github.com/fwojciec/revmoji/git"
	"github.com/fwojciec/revmoji/gitdiff"
	"github.com/fwojciec/revmoji/openai"
	"github.com/joho/godotenv"
)

const usage = "Usage: revmoji [-v|--verbose]"

// ErrNotARepo is returned when the working directory is not a git repository.
var ErrNotARepo = errors.New("not a git repository")

// App encapsulates the application logic for testing.
type App struct {
	RepoPath   string
	Git        revmoji.GitRunner
	Summarizer revmoji.Summarizer
	Classifier revmoji.Classifier
	Verbose    bool
	Stdout     io.Writer
	Stderr     io.Writer
}

// Run executes the pipeline: resolve the base ref, collect the diff, and
// classify it from the diff content. An empty diff short-circuits to the
// no-changes sentinel without a network call.
func (a *App) Run(ctx context.Context) error {
	ok, err := a.Git.IsRepo(ctx, a.RepoPath)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotARepo
	}

	baseRef, err := a.Git.ResolveBaseRef(ctx, a.RepoPath)
	if err != nil {
		return err
	}

	diff, err := a.Git.Diff(ctx, a.RepoPath, baseRef)
	if err != nil {
		return err
	}
	if strings.TrimSpace(diff) == "" {
		revmoji.Present(a.Stdout, revmoji.NoChanges(), a.Verbose)
		return nil
	}

	metrics, err := a.Summarizer.Summarize(diff)
	if err != nil {
		return err
	}
	if metrics.Total() == 0 {
		revmoji.Present(a.Stdout, revmoji.NoChanges(), a.Verbose)
		return nil
	}

	prompt := revmoji.BuildContentPrompt(diff)
	result := a.classifyOrFallback(ctx, prompt)
	revmoji.Present(a.Stdout, result, a.Verbose)
	return nil
}

// classifyOrFallback degrades any classifier failure to the fixed fallback.
// The tool's output is advisory, so availability wins over strictness; the
// underlying error is shown on stderr only in verbose mode.
func (a *App) classifyOrFallback(ctx context.Context, prompt string) *revmoji.Classification {
	result, err := a.Classifier.Classify(ctx, prompt)
	if err != nil {
		if a.Verbose {
			fmt.Fprintln(a.Stderr, "classifier error:", err)
		}
		return revmoji.Fallback()
	}
	return result
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	verbose, err := parseArgs(os.Args[1:])
	if err != nil {
		return fmt.Errorf("%w\n%s", err, usage)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Best-effort: a repo-local .env can carry the credential.
	_ = godotenv.Load()

	classifier, err := newClassifier(ctx)
	if err != nil {
		return err
	}

	app := &App{
		RepoPath:   ".",
		Git:        git.NewRunner(),
		Summarizer: gitdiff.NewSummarizer(),
		Classifier: classifier,
		Verbose:    verbose,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}
	return app.Run(ctx)
}

// parseArgs accepts only the verbose flag; anything else is a usage error.
func parseArgs(args []string) (verbose bool, err error) {
	for _, arg := range args {
		switch arg {
		case "-v", "--verbose":
			verbose = true
		default:
			return false, fmt.Errorf("unknown argument %q", arg)
		}
	}
	return verbose, nil
}

// newClassifier builds the backend selected by REVMOJI_PROVIDER. The
// credential check happens here, before any git work.
func newClassifier(ctx context.Context) (revmoji.Classifier, error) {
	model := os.Getenv("REVMOJI_MODEL")

	switch provider := os.Getenv("REVMOJI_PROVIDER"); provider {
	case "", "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, errors.New("OPENAI_API_KEY environment variable required")
		}
		var opts []openai.Option
		if model != "" {
			opts = append(opts, openai.WithModel(model))
		}
		return openai.NewClient(apiKey, opts...), nil

	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, errors.New("GEMINI_API_KEY environment variable required")
		}
		client, err := gemini.NewClient(ctx, apiKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		if model == "" {
			model = gemini.DefaultModel
		}
		return gemini.NewClassifier(client, model), nil

	default:
		return nil, fmt.Errorf("unknown provider %q (expected openai or gemini)", provider)
	}
}
