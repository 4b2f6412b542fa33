package agent

import (
	"encoding/json"
	"net/mail"
	"strings"

	"github.com/dvaughn/outreach/internal/llm"
)

// Tool names the agent may call during execution.
const (
	ToolProcessEmail = "process_email_and_label"
	ToolEndLoop      = "end_execution_loop"
)

// ValidatedArgs holds the arguments of a process_email_and_label call after
// schema validation. Only validated arguments ever reach the composer.
type ValidatedArgs struct {
	ToAddrs         []string
	Subject         string
	Body            string
	AttachmentPath  string
	AttachmentPaths []string
}

var processEmailProperties = map[string]bool{
	"to_addrs":         true,
	"subject":          true,
	"body":             true,
	"attachment_path":  true,
	"attachment_paths": true,
}

var processEmailRequired = []string{"to_addrs", "subject", "body"}

// ValidateProcessEmail checks raw arguments against the declared schema and
// returns typed arguments. Unknown properties are rejected, required fields
// must be present and non-empty, and every recipient must parse as an
// address.
func ValidateProcessEmail(raw json.RawMessage) (*ValidatedArgs, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, &SchemaError{Kind: SchemaTypeMismatch, Property: "arguments"}
	}

	for name := range fields {
		if !processEmailProperties[name] {
			return nil, &SchemaError{Kind: SchemaUnknownProperty, Property: name}
		}
	}

	for _, name := range processEmailRequired {
		v, ok := fields[name]
		if !ok || isJSONNull(v) {
			return nil, &SchemaError{Kind: SchemaMissingRequired, Property: name}
		}
	}

	args := &ValidatedArgs{}

	if err := json.Unmarshal(fields["to_addrs"], &args.ToAddrs); err != nil {
		return nil, &SchemaError{Kind: SchemaTypeMismatch, Property: "to_addrs"}
	}
	if len(args.ToAddrs) == 0 {
		return nil, &SchemaError{Kind: SchemaMissingRequired, Property: "to_addrs"}
	}
	for _, addr := range args.ToAddrs {
		if _, err := mail.ParseAddress(addr); err != nil {
			return nil, &SchemaError{Kind: SchemaTypeMismatch, Property: "to_addrs"}
		}
	}

	if err := json.Unmarshal(fields["subject"], &args.Subject); err != nil {
		return nil, &SchemaError{Kind: SchemaTypeMismatch, Property: "subject"}
	}
	if strings.TrimSpace(args.Subject) == "" {
		return nil, &SchemaError{Kind: SchemaMissingRequired, Property: "subject"}
	}

	if err := json.Unmarshal(fields["body"], &args.Body); err != nil {
		return nil, &SchemaError{Kind: SchemaTypeMismatch, Property: "body"}
	}
	if strings.TrimSpace(args.Body) == "" {
		return nil, &SchemaError{Kind: SchemaMissingRequired, Property: "body"}
	}

	if v, ok := fields["attachment_path"]; ok && !isJSONNull(v) {
		if err := json.Unmarshal(v, &args.AttachmentPath); err != nil {
			return nil, &SchemaError{Kind: SchemaTypeMismatch, Property: "attachment_path"}
		}
	}

	if v, ok := fields["attachment_paths"]; ok && !isJSONNull(v) {
		if err := json.Unmarshal(v, &args.AttachmentPaths); err != nil {
			return nil, &SchemaError{Kind: SchemaTypeMismatch, Property: "attachment_paths"}
		}
	}

	return args, nil
}

func isJSONNull(v json.RawMessage) bool {
	return string(v) == "null"
}

const processEmailSchema = `{
	"type": "object",
	"properties": {
		"to_addrs": {
			"type": "array",
			"items": {"type": "string"},
			"description": "Recipient email addresses. Must not be empty."
		},
		"subject": {
			"type": "string",
			"description": "Subject line of the email."
		},
		"body": {
			"type": "string",
			"description": "Email body. HTML is the default; plain text is also accepted."
		},
		"attachment_path": {
			"type": ["string", "null"],
			"description": "Path of a single file to attach. Attached before attachment_paths."
		},
		"attachment_paths": {
			"type": ["array", "null"],
			"items": {"type": "string"},
			"description": "Paths of additional files to attach, in order."
		}
	},
	"required": ["to_addrs", "subject", "body"],
	"additionalProperties": false
}`

const endLoopSchema = `{
	"type": "object",
	"properties": {
		"summary": {
			"type": "string",
			"description": "Short summary of what was accomplished."
		}
	},
	"additionalProperties": false
}`

// ToolDefinitions returns the tool set exposed to the model during the
// execution phase.
func ToolDefinitions() []llm.Tool {
	return []llm.Tool{
		{
			Name:        ToolProcessEmail,
			Description: "Compose an outreach email, save it as a draft, and label it for later retrieval.",
			Parameters:  json.RawMessage(processEmailSchema),
		},
		{
			Name:        ToolEndLoop,
			Description: "End the execution loop once the task is complete.",
			Parameters:  json.RawMessage(endLoopSchema),
		},
	}
}
