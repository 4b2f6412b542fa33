package agent

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvaughn/outreach/internal/attachments"
	"github.com/dvaughn/outreach/internal/gmail"
)

type fakeTransport struct {
	createdDrafts []*gmail.DraftMessage
	sentMessages  []*gmail.DraftMessage
	labelNames    []string
	appliedLabels map[string]string

	createErr error
	sendErr   error
	labelErr  error
	applyErr  error
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{appliedLabels: map[string]string{}}
}

func (f *fakeTransport) CreateDraft(_ context.Context, msg *gmail.DraftMessage) (*gmail.DraftInfo, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.createdDrafts = append(f.createdDrafts, msg)
	return &gmail.DraftInfo{DraftID: "draft-1", MessageID: "msg-1"}, nil
}

func (f *fakeTransport) SendMessage(_ context.Context, msg *gmail.DraftMessage) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.sentMessages = append(f.sentMessages, msg)
	return "sent-1", nil
}

func (f *fakeTransport) GetOrCreateLabel(_ context.Context, name string) (string, error) {
	if f.labelErr != nil {
		return "", f.labelErr
	}
	f.labelNames = append(f.labelNames, name)
	return "label-" + name, nil
}

func (f *fakeTransport) ApplyLabel(_ context.Context, messageID, labelID string) error {
	if f.applyErr != nil {
		return f.applyErr
	}
	f.appliedLabels[messageID] = labelID
	return nil
}

func fixedClock() time.Time {
	return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
}

func TestComposeAndLabelNoAttachments(t *testing.T) {
	transport := newFakeTransport()
	c := NewComposer(transport, WithComposerClock(fixedClock))

	status, err := c.ComposeAndLabel(t.Context(), &ValidatedArgs{
		ToAddrs: []string{"x@y.com"},
		Subject: "Hi",
		Body:    "<p>Hi</p>",
	})
	require.NoError(t, err)
	assert.Contains(t, status, "saved and labeled")

	require.Len(t, transport.createdDrafts, 1)
	draft := transport.createdDrafts[0]
	assert.Empty(t, draft.Attachments)
	assert.True(t, draft.IsHTML)

	require.Len(t, transport.labelNames, 1)
	assert.Equal(t, "outreach/hi-2026-03-14", transport.labelNames[0])
	assert.Equal(t, "label-outreach/hi-2026-03-14", transport.appliedLabels["msg-1"])
}

func TestComposeAndLabelBaseLabel(t *testing.T) {
	transport := newFakeTransport()
	c := NewComposer(transport, WithBaseLabel("Campaigns/Spring"))

	_, err := c.ComposeAndLabel(t.Context(), &ValidatedArgs{
		ToAddrs: []string{"x@y.com"},
		Subject: "Anything",
		Body:    "b",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Campaigns/Spring"}, transport.labelNames)
}

func TestComposeAndLabelDeterministicLabel(t *testing.T) {
	transport := newFakeTransport()
	c := NewComposer(transport, WithComposerClock(fixedClock))

	args := &ValidatedArgs{ToAddrs: []string{"x@y.com"}, Subject: "Follow Up: Pricing!", Body: "b"}
	_, err := c.ComposeAndLabel(t.Context(), args)
	require.NoError(t, err)
	_, err = c.ComposeAndLabel(t.Context(), args)
	require.NoError(t, err)

	require.Len(t, transport.labelNames, 2)
	assert.Equal(t, transport.labelNames[0], transport.labelNames[1])
	assert.Equal(t, "outreach/follow-up-pricing-2026-03-14", transport.labelNames[0])
}

func TestComposeAndLabelTransportFailure(t *testing.T) {
	transport := newFakeTransport()
	transport.createErr = errors.New("quota exceeded")
	c := NewComposer(transport)

	status, err := c.ComposeAndLabel(t.Context(), &ValidatedArgs{
		ToAddrs: []string{"x@y.com"},
		Subject: "Hi",
		Body:    "b",
	})
	require.Error(t, err)
	assert.Empty(t, status)

	var composeErr *ComposeError
	require.True(t, errors.As(err, &composeErr))
	assert.Equal(t, ComposeTransportFailure, composeErr.Kind)

	// persistence failed, so nothing was labeled
	assert.Empty(t, transport.labelNames)
	assert.Empty(t, transport.appliedLabels)
}

func TestComposeAndLabelAttachmentFailure(t *testing.T) {
	transport := newFakeTransport()
	c := NewComposer(transport)

	_, err := c.ComposeAndLabel(t.Context(), &ValidatedArgs{
		ToAddrs:        []string{"x@y.com"},
		Subject:        "Hi",
		Body:           "b",
		AttachmentPath: "/missing/file.pdf",
	})
	require.Error(t, err)

	var composeErr *ComposeError
	require.True(t, errors.As(err, &composeErr))
	assert.Equal(t, ComposeAttachmentFailure, composeErr.Kind)

	var notFound *attachments.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "/missing/file.pdf", notFound.Path)

	// the transport is never reached when attachments fail to resolve
	assert.Empty(t, transport.createdDrafts)
}

func TestComposeAndLabelWithAttachments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))

	transport := newFakeTransport()
	c := NewComposer(transport)

	_, err := c.ComposeAndLabel(t.Context(), &ValidatedArgs{
		ToAddrs:        []string{"x@y.com"},
		Subject:        "Hi",
		Body:           "b",
		AttachmentPath: path,
	})
	require.NoError(t, err)

	require.Len(t, transport.createdDrafts, 1)
	require.Len(t, transport.createdDrafts[0].Attachments, 1)
	assert.Equal(t, "catalog.pdf", transport.createdDrafts[0].Attachments[0].Filename)
}

func TestComposeAndLabelSendMode(t *testing.T) {
	transport := newFakeTransport()
	c := NewComposer(transport, WithSendMode(true), WithBaseLabel("Sent/Outreach"))

	status, err := c.ComposeAndLabel(t.Context(), &ValidatedArgs{
		ToAddrs: []string{"x@y.com"},
		Subject: "Hi",
		Body:    "b",
	})
	require.NoError(t, err)
	assert.Contains(t, status, "sent")

	assert.Empty(t, transport.createdDrafts)
	require.Len(t, transport.sentMessages, 1)
	assert.Equal(t, "label-Sent/Outreach", transport.appliedLabels["sent-1"])
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hi", "hi"},
		{"Follow Up: Pricing!", "follow-up-pricing"},
		{"   ", "untitled"},
		{"A very long subject line that keeps going and going", "a-very-long-subject-line-that-ke"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.in), "slugify(%q)", tt.in)
	}
}
