// Package completion turns a question into an answer through an llm.Client.
package completion

import (
	"context"
	"log/slog"

	"ask-gateway/internal/llm"
)

// SystemPrompt is the fixed instruction sent ahead of every question.
const SystemPrompt = "You are a helpful assistant."

const unknownFailure = "unknown provider error"

// Result is the outcome of one Ask call: either an answer or a failure reason.
type Result struct {
	ok     bool
	answer string
	reason string
}

// Success wraps a provider answer.
func Success(answer string) Result {
	return Result{ok: true, answer: answer}
}

// Failure wraps a provider error. The reason is the error text, never empty.
func Failure(err error) Result {
	reason := unknownFailure
	if err != nil && err.Error() != "" {
		reason = err.Error()
	}
	return Result{reason: reason}
}

// OK reports whether the result carries an answer.
func (r Result) OK() bool { return r.ok }

// Answer is the provider text; empty for failures.
func (r Result) Answer() string { return r.answer }

// Reason is the failure text; empty for successes.
func (r Result) Reason() string { return r.reason }

// Adapter issues a single provider call per question.
type Adapter struct {
	client llm.Client
	log    *slog.Logger
}

func New(client llm.Client, log *slog.Logger) *Adapter {
	return &Adapter{client: client, log: log}
}

// Ask forwards question as the only user turn. Errors are reported in the Result, not returned;
// there is no retry and no classification of the failure.
func (a *Adapter) Ask(ctx context.Context, question string) Result {
	answer, err := a.client.Complete(ctx, SystemPrompt, question)
	if err != nil {
		res := Failure(err)
		a.log.Warn("completion failed", "err", res.Reason())
		return res
	}
	return Success(answer)
}
