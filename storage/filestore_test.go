package storage

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"confgw/domain"
	"confgw/errors"
)

func newStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	root := t.TempDir()
	return NewFileStore(root, slog.Default()), root
}

func writeRoomFile(t *testing.T, root string, room domain.RoomAddress, rel string, content []byte) string {
	t.Helper()
	path := filepath.Join(root, room.String(), rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestLocate(t *testing.T) {
	req := require.New(t)
	store, root := newStore(t)
	room := domain.RoomAddress{User: "conf", Host: "example.org"}

	// Files may sit in per-sender subdirectories below the room.
	want := writeRoomFile(t, root, room, "alice@example.org/report.pdf", []byte("pdfpdf"))

	path, size, err := store.Locate(room, "report.pdf")
	req.NoError(err)
	req.Equal(want, path)
	req.Equal(int64(6), size)
}

func TestLocate_BaseNameOnly(t *testing.T) {
	req := require.New(t)
	store, root := newStore(t)
	room := domain.RoomAddress{User: "conf", Host: "example.org"}
	writeRoomFile(t, root, room, "notes.txt", []byte("x"))

	// A selector carrying path components still matches on the base name.
	path, _, err := store.Locate(room, "../../notes.txt")
	req.NoError(err)
	req.Equal(filepath.Join(root, room.String(), "notes.txt"), path)
}

func TestLocate_Missing(t *testing.T) {
	req := require.New(t)
	store, root := newStore(t)
	room := domain.RoomAddress{User: "conf", Host: "example.org"}
	other := domain.RoomAddress{User: "other", Host: "example.org"}
	writeRoomFile(t, root, other, "notes.txt", []byte("x"))

	// Absent room directory and absent file look the same.
	_, _, err := store.Locate(room, "notes.txt")
	req.ErrorIs(err, errors.ErrFileNotFound)
}

func TestContentType(t *testing.T) {
	req := require.New(t)
	store, root := newStore(t)
	room := domain.RoomAddress{User: "conf", Host: "example.org"}

	t.Run("by extension", func(t *testing.T) {
		path := writeRoomFile(t, root, room, "notes.txt", []byte("hello"))
		req.Contains(store.ContentType(path), "text/plain")
	})

	t.Run("encoding extension", func(t *testing.T) {
		path := writeRoomFile(t, root, room, "dump.sql.gz", []byte{0x1f, 0x8b, 0x08})
		// The system mime table may know .gz as application/gzip; either
		// way a gzip type must come out, never octet-stream.
		req.Contains(store.ContentType(path), "gzip")
	})

	t.Run("content sniff", func(t *testing.T) {
		// No useful extension, but a recognizable PDF magic.
		path := writeRoomFile(t, root, room, "attachment.bin1", []byte("%PDF-1.7\n"))
		req.Contains(store.ContentType(path), "application/pdf")
	})

	t.Run("fallback", func(t *testing.T) {
		req.Equal("application/octet-stream", store.ContentType(filepath.Join(root, "missing.bin1")))
	})
}
