package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-gateway/internal/events"
	apperrors "github.com/spec-kit/helpdesk-gateway/pkg/util"
)

// WorkflowService hands out workflow identifiers without performing any
// orchestration. The id is ephemeral: nothing is persisted.
type WorkflowService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// WorkflowResult is the client-visible outcome of starting a workflow.
type WorkflowResult struct {
	WorkflowID string
	Started    bool
}

// NewWorkflowService creates the service.
func NewWorkflowService(dispatcher events.Dispatcher, logger *zap.Logger) *WorkflowService {
	return &WorkflowService{dispatcher: dispatcher, logger: logger}
}

// StartWorkflow validates the request and returns a fresh workflow id.
func (w *WorkflowService) StartWorkflow(ctx context.Context, userID, requestType string) (*WorkflowResult, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(requestType) == "" {
		return nil, apperrors.NewValidationError("Missing required fields: user_id, request_type")
	}

	workflowID := generateID("WF-")
	w.logger.Info("workflow started",
		zap.String("workflow_id", workflowID),
		zap.String("user_id", userID),
		zap.String("request_type", requestType))

	if w.dispatcher != nil {
		_ = w.dispatcher.Publish(ctx, events.Event{
			Type:      events.EventWorkflowStarted,
			UserID:    userID,
			Timestamp: time.Now().UTC(),
			Payload: events.WorkflowStartedPayload{
				WorkflowID:  workflowID,
				RequestType: requestType,
			},
		})
	}

	return &WorkflowResult{WorkflowID: workflowID, Started: true}, nil
}
