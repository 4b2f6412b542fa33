package agent

import "fmt"

// SchemaError kinds.
const (
	SchemaUnknownProperty = "unknown_property"
	SchemaMissingRequired = "missing_required"
	SchemaTypeMismatch    = "type_mismatch"
)

// SchemaError reports a tool call that does not conform to the declared
// parameter schema. Validation rejects the call before any side effect.
type SchemaError struct {
	Kind     string
	Property string
}

func (e *SchemaError) Error() string {
	switch e.Kind {
	case SchemaUnknownProperty:
		return fmt.Sprintf("unknown property %q in tool call", e.Property)
	case SchemaMissingRequired:
		return fmt.Sprintf("missing required property %q in tool call", e.Property)
	case SchemaTypeMismatch:
		return fmt.Sprintf("property %q has the wrong type or an invalid value", e.Property)
	}
	return fmt.Sprintf("invalid tool call property %q", e.Property)
}

// ComposeError kinds.
const (
	ComposeTransportFailure  = "transport_failure"
	ComposeAttachmentFailure = "attachment_failure"
)

// ComposeError reports a failed draft composition. Kind distinguishes
// attachment resolution problems from transport rejections.
type ComposeError struct {
	Kind string
	Err  error
}

func (e *ComposeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *ComposeError) Unwrap() error {
	return e.Err
}
