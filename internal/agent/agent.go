// Package agent defines the interface between the chat surface and whatever
// executes an agent turn. The default Runner is a deterministic local echo;
// wiring a real model provider happens behind this interface.
package agent

import (
	"context"
	"fmt"
	"strings"
)

//go:generate mockgen -package mockagent -source=agent.go -destination=mock/mockagent.go *
type Runner interface {
	// Run executes one agent turn for the given prompt and returns the
	// assistant's reply.
	Run(ctx context.Context, prompt string) (string, error)
}

// EchoRunner is the built-in Runner. It produces a deterministic reply from
// the prompt so the whole queue/worker/storage path can run without any
// model provider configured.
type EchoRunner struct{}

var _ Runner = EchoRunner{}

func (EchoRunner) Run(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("agent run aborted: %w", err)
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "I need a prompt to act on.", nil
	}

	return "Acknowledged: " + prompt, nil
}
