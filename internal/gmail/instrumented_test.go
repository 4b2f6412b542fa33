package gmail

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	createErr error
	applyErr  error
}

func (s *stubService) CreateDraft(context.Context, *DraftMessage) (*DraftInfo, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &DraftInfo{DraftID: "d1", MessageID: "m1"}, nil
}

func (s *stubService) SendMessage(context.Context, *DraftMessage) (string, error) {
	return "m1", nil
}

func (s *stubService) GetOrCreateLabel(context.Context, string) (string, error) {
	return "l1", nil
}

func (s *stubService) ApplyLabel(context.Context, string, string) error {
	return s.applyErr
}

type stubRecorder struct {
	ops []string
}

func (r *stubRecorder) RecordGmailOperation(_ context.Context, operation, status string, _ time.Duration) {
	r.ops = append(r.ops, operation+":"+status)
}

func TestInstrumentedServiceRecordsOperations(t *testing.T) {
	recorder := &stubRecorder{}
	svc := NewInstrumentedService(&stubService{}, recorder)

	info, err := svc.CreateDraft(t.Context(), &DraftMessage{})
	require.NoError(t, err)
	assert.Equal(t, "d1", info.DraftID)

	_, err = svc.GetOrCreateLabel(t.Context(), "Outreach")
	require.NoError(t, err)

	require.NoError(t, svc.ApplyLabel(t.Context(), "m1", "l1"))

	assert.Equal(t, []string{
		"create_draft:success",
		"get_or_create_label:success",
		"apply_label:success",
	}, recorder.ops)
}

func TestInstrumentedServiceRecordsErrors(t *testing.T) {
	recorder := &stubRecorder{}
	svc := NewInstrumentedService(&stubService{createErr: errors.New("quota")}, recorder)

	_, err := svc.CreateDraft(t.Context(), &DraftMessage{})
	require.Error(t, err)
	assert.Equal(t, []string{"create_draft:error"}, recorder.ops)
}
