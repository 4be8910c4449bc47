package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilenamePreservesExtension(t *testing.T) {
	name := Filename("keran bocor.JPG")
	assert.True(t, strings.HasPrefix(name, "foto-"))
	assert.True(t, strings.HasSuffix(name, ".JPG"))
	// Only the extension of the client filename survives.
	assert.NotContains(t, name, "keran")
}

func TestFilenameWithoutExtension(t *testing.T) {
	name := Filename("foto")
	assert.True(t, strings.HasPrefix(name, "foto-"))
	assert.NotContains(t, name[5:], ".")
}

func TestFilenameUniqueUnderConcurrency(t *testing.T) {
	const n = 200
	var mu sync.Mutex
	seen := make(map[string]struct{}, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := Filename("masalah.png")
			mu.Lock()
			seen[name] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, n, "generated names must not collide")
}

// uploadHeader builds a *multipart.FileHeader the way Echo would hand it
// to the handler, by round-tripping through a multipart request.
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
	require.NoError(t, req.ParseMultipartForm(1<<20))
	_, fh, err := req.FormFile(field)
	require.NoError(t, err)
	return fh
}

func TestSaveWritesFile(t *testing.T) {
	dir := t.TempDir()
	store, err := New(filepath.Join(dir, "uploads"))
	require.NoError(t, err)

	fh := uploadHeader(t, "foto", "bocor.jpg", []byte("isi foto"))
	name, err := store.Save(fh)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "foto-"))
	assert.True(t, strings.HasSuffix(name, ".jpg"))

	got, err := os.ReadFile(filepath.Join(store.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, []byte("isi foto"), got)
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "uploads")
	store, err := New(dir)
	require.NoError(t, err)
	info, err := os.Stat(store.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
