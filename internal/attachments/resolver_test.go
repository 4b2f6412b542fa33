package attachments

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestResolveEmpty(t *testing.T) {
	resolved, err := Resolve("", nil)
	require.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestResolveSinglePathFirst(t *testing.T) {
	dir := t.TempDir()
	a := writeTempFile(t, dir, "a.pdf", "a")
	b := writeTempFile(t, dir, "b.pdf", "b")
	c := writeTempFile(t, dir, "c.pdf", "c")

	resolved, err := Resolve(a, []string{b, a, c})
	require.NoError(t, err)

	require.Len(t, resolved, 3)
	assert.Equal(t, a, resolved[0].Path)
	assert.Equal(t, b, resolved[1].Path)
	assert.Equal(t, c, resolved[2].Path)
}

func TestResolveDeduplicatesByCleanedPath(t *testing.T) {
	dir := t.TempDir()
	a := writeTempFile(t, dir, "a.pdf", "a")

	// Same file through a redundant path element.
	alias := filepath.Join(dir, ".", "a.pdf")

	resolved, err := Resolve(a, []string{alias})
	require.NoError(t, err)
	assert.Len(t, resolved, 1)
}

func TestResolveMissingFileFails(t *testing.T) {
	dir := t.TempDir()
	a := writeTempFile(t, dir, "a.pdf", "a")
	missing := filepath.Join(dir, "missing.pdf")

	_, err := Resolve(a, []string{missing})
	require.Error(t, err)

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, missing, notFound.Path)
}

func TestResolveDirectoryFails(t *testing.T) {
	dir := t.TempDir()

	_, err := Resolve(dir, nil)
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestResolveMetadata(t *testing.T) {
	dir := t.TempDir()
	a := writeTempFile(t, dir, "catalog.pdf", "%PDF-1.4")

	resolved, err := Resolve(a, nil)
	require.NoError(t, err)
	require.Len(t, resolved, 1)

	assert.Equal(t, "catalog.pdf", resolved[0].Filename)
	assert.Equal(t, "application/pdf", resolved[0].MimeType)
	assert.Equal(t, int64(8), resolved[0].Size)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{
			name:     "normal filename",
			filename: "document.pdf",
			want:     "document.pdf",
		},
		{
			name:     "filename with forward slash",
			filename: "path/to/document.pdf",
			want:     "path_to_document.pdf",
		},
		{
			name:     "filename with parent directory",
			filename: "../../../etc/passwd",
			want:     "______etc_passwd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.filename); got != tt.want {
				t.Errorf("SanitizeFilename() = %v, want %v", got, tt.want)
			}
		})
	}
}
