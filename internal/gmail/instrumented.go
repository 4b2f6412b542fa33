package gmail

import (
	"context"
	"time"
)

// Service is the subset of the Gmail client used to persist and label
// outgoing email.
type Service interface {
	CreateDraft(ctx context.Context, msg *DraftMessage) (*DraftInfo, error)
	SendMessage(ctx context.Context, msg *DraftMessage) (string, error)
	GetOrCreateLabel(ctx context.Context, name string) (string, error)
	ApplyLabel(ctx context.Context, messageID, labelID string) error
}

// OperationRecorder receives the outcome of each Gmail API operation.
type OperationRecorder interface {
	RecordGmailOperation(ctx context.Context, operation, status string, elapsed time.Duration)
}

// InstrumentedService wraps a Service and records every operation.
type InstrumentedService struct {
	next     Service
	recorder OperationRecorder
}

func NewInstrumentedService(next Service, recorder OperationRecorder) *InstrumentedService {
	return &InstrumentedService{next: next, recorder: recorder}
}

func (s *InstrumentedService) CreateDraft(ctx context.Context, msg *DraftMessage) (*DraftInfo, error) {
	start := time.Now()
	info, err := s.next.CreateDraft(ctx, msg)
	s.record(ctx, "create_draft", err, start)
	return info, err
}

func (s *InstrumentedService) SendMessage(ctx context.Context, msg *DraftMessage) (string, error) {
	start := time.Now()
	id, err := s.next.SendMessage(ctx, msg)
	s.record(ctx, "send_message", err, start)
	return id, err
}

func (s *InstrumentedService) GetOrCreateLabel(ctx context.Context, name string) (string, error) {
	start := time.Now()
	id, err := s.next.GetOrCreateLabel(ctx, name)
	s.record(ctx, "get_or_create_label", err, start)
	return id, err
}

func (s *InstrumentedService) ApplyLabel(ctx context.Context, messageID, labelID string) error {
	start := time.Now()
	err := s.next.ApplyLabel(ctx, messageID, labelID)
	s.record(ctx, "apply_label", err, start)
	return err
}

func (s *InstrumentedService) record(ctx context.Context, operation string, err error, start time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	s.recorder.RecordGmailOperation(ctx, operation, status, time.Since(start))
}
