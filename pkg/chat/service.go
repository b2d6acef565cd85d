package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Gogul-D/Ai-bot/pkg/llm"
)

// StatusSuccess is the status value of every successful Response.
const StatusSuccess = "success"

// Response is the only success shape of a chat turn.
type Response struct {
	Response string `json:"response"`
	Status   string `json:"status"`
}

// UseCase handles a single prompt/answer exchange.
type UseCase interface {
	Chat(ctx context.Context, prompt string) (Response, error)
}

type service struct {
	gen     llm.Generator
	timeout time.Duration
}

// NewService wires the generator built at startup. A zero timeout leaves the
// caller's context as the only bound on the provider call.
func NewService(gen llm.Generator, timeout time.Duration) (UseCase, error) {
	if gen == nil {
		return nil, errors.New("chat: generator must not be nil")
	}
	if timeout < 0 {
		timeout = 0
	}
	return &service{gen: gen, timeout: timeout}, nil
}

// Chat validates the prompt and asks the generator for a reply. Every error it
// returns is a *Error.
func (s *service) Chat(ctx context.Context, prompt string) (Response, error) {
	if strings.TrimSpace(prompt) == "" {
		return Response{}, newValidationError()
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return Response{}, Classify(err)
	}
	if text == "" {
		return Response{}, newEmptyGenerationError()
	}
	return Response{Response: text, Status: StatusSuccess}, nil
}
