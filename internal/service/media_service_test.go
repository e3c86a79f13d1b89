package service

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dharunks/insightiq/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File[field][0]
}

func TestMediaStore(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewLocalMediaService(&config.Config{Media: config.Media{Dir: dir}})
	require.NoError(t, err)

	url, err := svc.Store(uploadHeader(t, "audio", "clip.mp3", []byte("audio bytes")))
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(url, "/media/"))
	name := strings.TrimPrefix(url, "/media/")
	assert.Equal(t, ".mp3", filepath.Ext(name))
	// The stored name is a fresh uuid, never the user's filename.
	assert.NotContains(t, name, "clip")

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("audio bytes"), data)
}

func TestMediaStoreUniqueNames(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewLocalMediaService(&config.Config{Media: config.Media{Dir: dir}})
	require.NoError(t, err)

	a, err := svc.Store(uploadHeader(t, "video", "take.webm", []byte("one")))
	require.NoError(t, err)
	b, err := svc.Store(uploadHeader(t, "video", "take.webm", []byte("two")))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
