// Package openai implements the llm.Client interface against the
// OpenAI Chat Completions API, including function tool calls.
package openai
