package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/spec-kit/helpdesk-gateway/pkg/util"
)

// systemInstruction is the fixed role sent with every prompt.
const systemInstruction = "Eres un asistente profesional de soporte TI. " +
	"Responde siempre en español, de forma clara, breve y profesional."

// Completer is the hosted-model contract consumed by CompletionService.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// CompletionService forwards prompts to the hosted completion model.
type CompletionService struct {
	completer Completer
	logger    *zap.Logger
}

// NewCompletionService creates the service.
func NewCompletionService(completer Completer, logger *zap.Logger) *CompletionService {
	return &CompletionService{completer: completer, logger: logger}
}

// RunPrompt validates the prompt and returns the model's answer verbatim.
// Upstream failures surface as a 500 carrying the raw error message; there
// is no retry and no partial-result handling.
func (s *CompletionService) RunPrompt(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", apperrors.NewValidationError("Missing required field: prompt")
	}

	answer, err := s.completer.Complete(ctx, systemInstruction, prompt)
	if err != nil {
		s.logger.Error("completion call failed", zap.Error(err))
		return "", apperrors.NewUpstreamError(err)
	}
	return answer, nil
}
