package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	gmail "google.golang.org/api/gmail/v1"

	"github.com/dvaughn/outreach/internal/google"
)

// Client wraps the Gmail Users service
type Client struct {
	svc *gmail.UsersService
}

// HasToken checks if a cached OAuth token exists
func HasToken() bool {
	return google.HasToken()
}

// GetAuthURL returns the OAuth URL for user authorization
func GetAuthURL() (string, error) {
	return google.GetAuthURL()
}

// NewClient creates a new Gmail client with OAuth2 authentication
func NewClient(ctx context.Context) (*Client, error) {
	client, err := google.GetHTTPClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found: %w", err)
	}

	svc, err := gmail.New(client)
	if err != nil {
		return nil, err
	}

	return &Client{svc: svc.Users}, nil
}

// DraftInfo identifies a persisted draft
type DraftInfo struct {
	DraftID   string
	MessageID string
	ThreadID  string
}

// CreateDraft persists msg as an unsent Gmail draft and returns its identifiers.
// The draft ID comes straight from the drafts.create response, so no lookup by
// subject is needed afterwards.
func (c *Client) CreateDraft(ctx context.Context, msg *DraftMessage) (*DraftInfo, error) {
	raw, err := BuildMIME(msg)
	if err != nil {
		return nil, err
	}

	draft, err := c.svc.Drafts.Create("me", &gmail.Draft{
		Message: &gmail.Message{
			Raw: base64.URLEncoding.EncodeToString(raw),
		},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create draft: %w", err)
	}

	info := &DraftInfo{DraftID: draft.Id}
	if draft.Message != nil {
		info.MessageID = draft.Message.Id
		info.ThreadID = draft.Message.ThreadId
	}
	return info, nil
}

// SendMessage delivers msg immediately instead of saving a draft.
// Returns the sent message ID.
func (c *Client) SendMessage(ctx context.Context, msg *DraftMessage) (string, error) {
	raw, err := BuildMIME(msg)
	if err != nil {
		return "", err
	}

	sent, err := c.svc.Messages.Send("me", &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString(raw),
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}

	return sent.Id, nil
}

// GetOrCreateLabel returns the label ID for name, creating the label if it
// does not exist yet. Lookup is case-insensitive to avoid near-duplicate labels.
func (c *Client) GetOrCreateLabel(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("label name is required")
	}

	resp, err := c.svc.Labels.List("me").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to list labels: %w", err)
	}

	for _, lbl := range resp.Labels {
		if strings.EqualFold(lbl.Name, name) {
			return lbl.Id, nil
		}
	}

	created, err := c.svc.Labels.Create("me", &gmail.Label{
		Name:                  name,
		LabelListVisibility:   "labelShow",
		MessageListVisibility: "show",
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create label %q: %w", name, err)
	}

	return created.Id, nil
}

// ApplyLabel attaches the label to a persisted message (draft or sent)
func (c *Client) ApplyLabel(ctx context.Context, messageID, labelID string) error {
	if messageID == "" {
		return fmt.Errorf("messageID is required")
	}
	if labelID == "" {
		return fmt.Errorf("labelID is required")
	}

	_, err := c.svc.Messages.Modify("me", messageID, &gmail.ModifyMessageRequest{
		AddLabelIds: []string{labelID},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to apply label to message %s: %w", messageID, err)
	}
	return nil
}
