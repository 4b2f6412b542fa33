// Package logging provides structured logging utilities for the outreach agent.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - PII sanitization (recipient address anonymization)
//   - Consistent attribute naming across the codebase
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithPhase(slog.Default(), "execution")
//	logger.Info("tool call dispatched",
//	    logging.Tool("process_email_and_label"))
//
// Sanitize sensitive data before logging:
//
//	logger.Info("draft composed",
//	    logging.RecipientHash(addr))
//
// # Security Considerations
//
// Recipient addresses are hashed before logging so runs can be correlated
// without leaking PII into log storage.
package logging
