package upload

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename, contentType string, size int) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("a"), size))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(int64(size) + 4096)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["file"][0]
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir(), 1024)
	require.NoError(t, err)
	return store
}

func dirEntries(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return entries
}

func TestSaveAndOpenRoundTrip(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Save(fileHeader(t, "photo.png", "image/png", 100))
	require.NoError(t, err)
	require.NotEqual(t, "photo.png", name)
	require.Equal(t, ".png", filepath.Ext(name))

	f, err := store.Open(name)
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.Len(t, data, 100)
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store := newTestStore(t)

	a, err := store.Save(fileHeader(t, "photo.png", "image/png", 10))
	require.NoError(t, err)
	b, err := store.Save(fileHeader(t, "photo.png", "image/png", 10))
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestSaveRejectsOversizeFile(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save(fileHeader(t, "big.png", "image/png", 2048))
	require.ErrorIs(t, err, ErrFileTooLarge)
	require.Empty(t, dirEntries(t, store.Dir))
}

func TestSaveRejectsDisallowedType(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save(fileHeader(t, "notes.txt", "text/plain", 10))
	require.ErrorIs(t, err, ErrDisallowedType)

	_, err = store.Save(fileHeader(t, "script.png", "application/x-sh", 10))
	require.ErrorIs(t, err, ErrDisallowedType)

	require.Empty(t, dirEntries(t, store.Dir))
}

func TestSaveIgnoresTraversalInDeclaredName(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Save(fileHeader(t, "../../evil.png", "image/png", 10))
	require.NoError(t, err)

	// Only the generated name exists, inside the directory.
	entries := dirEntries(t, store.Dir)
	require.Len(t, entries, 1)
	require.Equal(t, name, entries[0].Name())
	require.NoFileExists(t, filepath.Join(store.Dir, "..", "..", "evil.png"))
}

func TestOpenRejectsTraversalNames(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{
		"../../etc/passwd",
		"..%2F..%2Fetc%2Fpasswd",
		"..",
		"sub/../../x.png",
		`..\..\x.png`,
		"",
	} {
		_, err := store.Open(name)
		require.Error(t, err, "name %q must be rejected", name)
	}
}

func TestOpenUnknownFile(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Open("does-not-exist.png")
	require.Error(t, err)
}
