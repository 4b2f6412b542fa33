// Package llm defines the completion-service contract the agent depends on.
//
// The agent treats the language model as a black-box text and tool-call
// generator behind the Client interface; the openai subpackage provides the
// HTTP implementation. Tests substitute a scripted fake.
package llm
