// Package attachments resolves local file paths into validated attachment
// handles for draft composition.
//
// Callers may pass a single path, a list of paths, or both. The resolver
// merges them into one ordered, deduplicated set: the single path first,
// then the list in input order, keeping the first occurrence of any
// duplicate. Paths that do not resolve to a readable file fail resolution
// instead of being silently dropped.
package attachments
