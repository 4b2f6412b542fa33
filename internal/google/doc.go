// Package google provides shared Google OAuth2 authentication for the
// outreach agent.
//
// Tokens are cached on disk under the user cache directory
// (~/.cache/outreach on Linux). The OAuth client credentials are read from
// the GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET environment variables.
//
// The granted scopes cover draft creation, label management and sending,
// which is everything the draft transport needs.
package google
