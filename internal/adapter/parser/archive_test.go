package parser

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomasVenkrbec/Facebook-message-analyser/internal/domain"
)

func writeZip(t *testing.T, path string, files map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

func TestLoadArchive(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "facebook-export.zip")
	writeZip(t, archive, map[string]string{
		"messages/inbox/kiki_abc/message_1.json":      `{"participants": [{"name": "Kiki"}], "messages": [{"sender_name": "Kiki", "timestamp_ms": 1000, "content": "hi"}]}`,
		"messages/inbox/kiki_abc/photos/p.jpg":        "not json",
		"messages/inbox/kiki_abc/discord_export.json": `{"channel": {}, "messages": [{"timestamp": "2021-01-01T00:00:00Z", "content": "yo", "author": {"name": "kiki"}}]}`,
	})

	conv, err := NewCorpusLoader(cet, nil, nil).Load(archive)
	require.NoError(t, err)

	assert.Equal(t, archive, conv.Path)
	assert.Equal(t, []string{"Kiki"}, conv.Facebook.Names)
	assert.Equal(t, []string{"kiki"}, conv.Discord.Names)
	assert.Len(t, conv.Messages, 2)
}

func TestLoadArchiveWithoutMetadata(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "export.zip")
	writeZip(t, archive, map[string]string{"readme.json": `{}`})

	_, err := NewCorpusLoader(cet, nil, nil).Load(archive)
	var pathErr *domain.PathError
	require.ErrorAs(t, err, &pathErr)
	assert.ErrorIs(t, err, errNoCorpusInArchive)
}

func TestLoadMissingArchive(t *testing.T) {
	_, err := NewCorpusLoader(cet, nil, nil).Load(filepath.Join(t.TempDir(), "missing.zip"))
	var pathErr *domain.PathError
	assert.ErrorAs(t, err, &pathErr)
}
