package gmail

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"strings"

	"github.com/dvaughn/outreach/internal/attachments"
)

// DraftMessage represents an email to be drafted or sent
type DraftMessage struct {
	To          []string
	Cc          []string
	Bcc         []string
	Subject     string
	Body        string
	IsHTML      bool
	Attachments []attachments.Attachment
}

// encodeRFC2047 encodes a string for use in email headers according to RFC 2047.
// This is necessary for non-ASCII characters (like German umlauts) in subjects.
func encodeRFC2047(s string) string {
	needsEncoding := false
	for _, r := range s {
		if r > 127 {
			needsEncoding = true
			break
		}
	}

	if !needsEncoding {
		return s
	}

	return mime.BEncoding.Encode("UTF-8", s)
}

// BuildMIME builds msg as an RFC 2822 multipart/mixed message.
// The body part is HTML or plain text depending on msg.IsHTML; each resolved
// attachment becomes a base64-encoded part with a sanitized filename.
func BuildMIME(msg *DraftMessage) ([]byte, error) {
	if len(msg.To) == 0 {
		return nil, fmt.Errorf("at least one recipient is required")
	}
	if msg.Subject == "" {
		return nil, fmt.Errorf("subject is required")
	}
	if msg.Body == "" {
		return nil, fmt.Errorf("body is required")
	}

	var parts bytes.Buffer
	mw := multipart.NewWriter(&parts)

	// Body part
	bodyHeader := make(textproto.MIMEHeader)
	if msg.IsHTML {
		bodyHeader.Set("Content-Type", `text/html; charset="UTF-8"`)
	} else {
		bodyHeader.Set("Content-Type", `text/plain; charset="UTF-8"`)
	}
	pw, err := mw.CreatePart(bodyHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to create body part: %w", err)
	}
	if _, err := pw.Write([]byte(msg.Body)); err != nil {
		return nil, fmt.Errorf("failed to write body part: %w", err)
	}

	// Attachment parts
	for _, att := range msg.Attachments {
		data, err := os.ReadFile(att.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read attachment %s: %w", att.Path, err)
		}

		attHeader := make(textproto.MIMEHeader)
		attHeader.Set("Content-Type", att.MimeType)
		attHeader.Set("Content-Transfer-Encoding", "base64")
		attHeader.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, att.Filename))

		aw, err := mw.CreatePart(attHeader)
		if err != nil {
			return nil, fmt.Errorf("failed to create attachment part: %w", err)
		}
		if _, err := aw.Write(wrapBase64(data)); err != nil {
			return nil, fmt.Errorf("failed to write attachment part: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize message: %w", err)
	}

	// Top-level headers
	var emailBuilder strings.Builder

	emailBuilder.WriteString("To: ")
	emailBuilder.WriteString(strings.Join(msg.To, ", "))
	emailBuilder.WriteString("\r\n")

	if len(msg.Cc) > 0 {
		emailBuilder.WriteString("Cc: ")
		emailBuilder.WriteString(strings.Join(msg.Cc, ", "))
		emailBuilder.WriteString("\r\n")
	}

	if len(msg.Bcc) > 0 {
		emailBuilder.WriteString("Bcc: ")
		emailBuilder.WriteString(strings.Join(msg.Bcc, ", "))
		emailBuilder.WriteString("\r\n")
	}

	emailBuilder.WriteString("Subject: ")
	emailBuilder.WriteString(encodeRFC2047(msg.Subject))
	emailBuilder.WriteString("\r\n")

	emailBuilder.WriteString("MIME-Version: 1.0\r\n")
	emailBuilder.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q\r\n", mw.Boundary()))
	emailBuilder.WriteString("\r\n")
	emailBuilder.WriteString(parts.String())

	return []byte(emailBuilder.String()), nil
}

// wrapBase64 encodes data as base64 with lines wrapped at 76 characters per RFC 2045.
func wrapBase64(data []byte) []byte {
	encoded := base64.StdEncoding.EncodeToString(data)

	const lineLen = 76
	var out bytes.Buffer
	for len(encoded) > lineLen {
		out.WriteString(encoded[:lineLen])
		out.WriteString("\r\n")
		encoded = encoded[lineLen:]
	}
	out.WriteString(encoded)

	return out.Bytes()
}
