// Package agent implements a two-phase outreach agent. A run first
// deliberates, producing a plan with no tool access, and then executes,
// invoking a single schema-validated tool that composes, saves, and labels
// an email. The run ends with exactly one of a status message or an error.
package agent
