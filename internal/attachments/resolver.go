package attachments

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// MaxAttachmentSize defines the maximum attachment size in bytes (25MB),
// matching the Gmail message size limit headroom.
const MaxAttachmentSize = 25 * 1024 * 1024

// Attachment is a resolved, readable local file ready to be attached to a draft.
type Attachment struct {
	Path     string // cleaned path as passed by the caller
	Filename string // sanitized base name used in the MIME part
	MimeType string
	Size     int64
}

// NotFoundError indicates an attachment path that does not resolve to a
// readable regular file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("attachment not found: %s", e.Path)
}

// Resolve validates and merges attachment paths into an ordered set.
//
// The single path, when present, comes first; entries of pathList follow in
// input order. Duplicates (by cleaned path) keep their first occurrence.
// Absence of both inputs yields an empty set, not an error.
func Resolve(singlePath string, pathList []string) ([]Attachment, error) {
	merged := make([]string, 0, len(pathList)+1)
	if singlePath != "" {
		merged = append(merged, singlePath)
	}
	merged = append(merged, pathList...)

	seen := make(map[string]bool, len(merged))
	resolved := make([]Attachment, 0, len(merged))
	for _, path := range merged {
		cleaned := filepath.Clean(path)
		if seen[cleaned] {
			continue
		}
		seen[cleaned] = true

		att, err := resolveOne(cleaned)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, att)
	}

	return resolved, nil
}

func resolveOne(path string) (Attachment, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return Attachment{}, &NotFoundError{Path: path}
	}

	// Existence is not enough; the composer will need to read the bytes later.
	f, err := os.Open(path)
	if err != nil {
		return Attachment{}, &NotFoundError{Path: path}
	}
	_ = f.Close()

	if info.Size() > MaxAttachmentSize {
		return Attachment{}, fmt.Errorf("attachment %s size %d exceeds maximum size %d", path, info.Size(), MaxAttachmentSize)
	}

	return Attachment{
		Path:     path,
		Filename: SanitizeFilename(filepath.Base(path)),
		MimeType: detectMimeType(path),
		Size:     info.Size(),
	}, nil
}

func detectMimeType(path string) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	return "application/octet-stream"
}

// SanitizeFilename sanitizes a filename to prevent path traversal attacks
func SanitizeFilename(filename string) string {
	// Remove path separators and other potentially dangerous characters
	filename = strings.ReplaceAll(filename, "/", "_")
	filename = strings.ReplaceAll(filename, "\\", "_")
	filename = strings.ReplaceAll(filename, "..", "_")
	return filename
}
