package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCorpusFile(t *testing.T) {
	assert.True(t, isCorpusFile("data/Medical_book.PDF"))
	assert.True(t, isCorpusFile("notes.md"))
	assert.True(t, isCorpusFile("page.html"))
	assert.False(t, isCorpusFile("image.png"))
	assert.False(t, isCorpusFile("archive.zip"))
}

func TestLoadDocuments_PlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Aspirin thins the blood.  "), 0o644))

	docs, err := loadDocuments(path)

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "notes.txt", docs[0].Source)
	assert.Equal(t, 0, docs[0].Page)
	assert.Equal(t, "Aspirin thins the blood.", docs[0].Content)
}

func TestLoadDocuments_HTML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	html := `<html><head><script>ignored()</script></head><body><p>Fever management basics.</p></body></html>`
	require.NoError(t, os.WriteFile(path, []byte(html), 0o644))

	docs, err := loadDocuments(path)

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "page.html", docs[0].Source)
	assert.Contains(t, docs[0].Content, "Fever management basics.")
	assert.NotContains(t, docs[0].Content, "ignored")
}

func TestLoadDocuments_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n"), 0o644))

	docs, err := loadDocuments(path)

	require.NoError(t, err)
	assert.Empty(t, docs)
}
