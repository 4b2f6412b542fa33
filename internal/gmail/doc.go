// Package gmail provides the draft transport for the outreach agent.
//
// The client wraps the Gmail Users service and exposes the three operations
// the Draft Composer needs:
//   - CreateDraft persists a MIME message as an unsent draft and returns
//     its identifiers in one call (no search roundtrip).
//   - GetOrCreateLabel resolves a label name to an ID, creating the label
//     on first use. Lookup is case-insensitive.
//   - ApplyLabel attaches a label to a persisted message.
//
// SendMessage is the send-mode variant: it delivers the message immediately
// instead of saving a draft.
//
// Authentication uses the cached Google OAuth token from the google package.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := gmail.NewClient(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	draft, err := client.CreateDraft(ctx, &gmail.DraftMessage{
//	    To:      []string{"recipient@example.com"},
//	    Subject: "Hello",
//	    Body:    "<p>Hello</p>",
//	    IsHTML:  true,
//	})
package gmail
