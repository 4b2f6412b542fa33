package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/dvaughn/outreach/internal/attachments"
	"github.com/dvaughn/outreach/internal/gmail"
	"github.com/dvaughn/outreach/internal/logging"
)

// Transport persists composed emails. Implemented by the Gmail client; tests
// substitute a fake.
type Transport interface {
	CreateDraft(ctx context.Context, msg *gmail.DraftMessage) (*gmail.DraftInfo, error)
	SendMessage(ctx context.Context, msg *gmail.DraftMessage) (string, error)
	GetOrCreateLabel(ctx context.Context, name string) (string, error)
	ApplyLabel(ctx context.Context, messageID, labelID string) error
}

// Composer builds an email from validated tool arguments, persists it through
// the transport, and labels it. Exactly one persistence call is made per
// logical request; a failed persistence leaves nothing behind to label.
type Composer struct {
	transport Transport
	baseLabel string
	sendMode  bool
	now       func() time.Time
	logger    *slog.Logger
}

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithBaseLabel fixes the label applied to every draft. When unset, the label
// is derived from the subject and the current date.
func WithBaseLabel(label string) ComposerOption {
	return func(c *Composer) { c.baseLabel = label }
}

// WithSendMode delivers messages immediately instead of saving drafts.
func WithSendMode(send bool) ComposerOption {
	return func(c *Composer) { c.sendMode = send }
}

// WithComposerClock substitutes the time source used for derived label names.
func WithComposerClock(now func() time.Time) ComposerOption {
	return func(c *Composer) { c.now = now }
}

// WithComposerLogger sets the composer's logger.
func WithComposerLogger(logger *slog.Logger) ComposerOption {
	return func(c *Composer) { c.logger = logger }
}

func NewComposer(transport Transport, opts ...ComposerOption) *Composer {
	c := &Composer{
		transport: transport,
		now:       time.Now,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ComposeAndLabel resolves attachments, persists the email, and applies its
// label. Returns a human-readable status message on success.
func (c *Composer) ComposeAndLabel(ctx context.Context, args *ValidatedArgs) (string, error) {
	log := logging.WithOperation(c.logger, "compose_and_label")

	attached, err := attachments.Resolve(args.AttachmentPath, args.AttachmentPaths)
	if err != nil {
		return "", &ComposeError{Kind: ComposeAttachmentFailure, Err: err}
	}

	msg := &gmail.DraftMessage{
		To:          args.ToAddrs,
		Subject:     args.Subject,
		Body:        args.Body,
		IsHTML:      true,
		Attachments: attached,
	}

	label := c.labelFor(args.Subject)

	if c.sendMode {
		messageID, err := c.transport.SendMessage(ctx, msg)
		if err != nil {
			return "", &ComposeError{Kind: ComposeTransportFailure, Err: err}
		}
		if err := c.label(ctx, messageID, label); err != nil {
			return "", err
		}
		log.InfoContext(ctx, "message sent and labeled",
			logging.Label(label),
			logging.RecipientHash(args.ToAddrs[0]),
			logging.Status(logging.StatusSuccess))
		return fmt.Sprintf("Email sent and labeled %q.", label), nil
	}

	info, err := c.transport.CreateDraft(ctx, msg)
	if err != nil {
		return "", &ComposeError{Kind: ComposeTransportFailure, Err: err}
	}
	if err := c.label(ctx, info.MessageID, label); err != nil {
		return "", err
	}

	log.InfoContext(ctx, "draft saved and labeled",
		logging.DraftID(info.DraftID),
		logging.Label(label),
		logging.RecipientHash(args.ToAddrs[0]),
		logging.Status(logging.StatusSuccess))
	return fmt.Sprintf("Draft %s saved and labeled %q.", info.DraftID, label), nil
}

func (c *Composer) label(ctx context.Context, messageID, label string) error {
	labelID, err := c.transport.GetOrCreateLabel(ctx, label)
	if err != nil {
		return &ComposeError{Kind: ComposeTransportFailure, Err: err}
	}
	if err := c.transport.ApplyLabel(ctx, messageID, labelID); err != nil {
		return &ComposeError{Kind: ComposeTransportFailure, Err: err}
	}
	return nil
}

// labelFor returns the label name for a draft. A configured base label wins;
// otherwise the name is derived from the subject and the current date so
// drafts from one campaign stay retrievable as a group.
func (c *Composer) labelFor(subject string) string {
	if c.baseLabel != "" {
		return c.baseLabel
	}
	return fmt.Sprintf("outreach/%s-%s", slugify(subject), c.now().Format("2006-01-02"))
}

// slugify reduces a subject line to a short lowercase label segment.
func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
		if b.Len() >= 32 {
			break
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "untitled"
	}
	return out
}
