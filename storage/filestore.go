// Package storage locates shared conference files on the backing
// filesystem and infers their content types.
package storage

import (
	"io/fs"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"confgw/domain"
	"confgw/errors"
)

// Compressed payloads without a registered media type get the classic
// application/x-* encoding types.
var encodingTypes = map[string]string{
	".gz":  "application/x-gzip",
	".bz2": "application/x-bzip2",
	".xz":  "application/x-xz",
	".z":   "application/x-compress",
}

const fallbackType = "application/octet-stream"

// FileStore resolves shared files beneath a per-room directory:
// <root>/<user@host>/... . Files may sit anywhere in the room's subtree;
// lookup is by base filename.
type FileStore struct {
	root string
	log  *slog.Logger
}

func NewFileStore(root string, log *slog.Logger) *FileStore {
	return &FileStore{root: root, log: log}
}

// Locate walks the room's directory for a file with the given base name
// and returns its full path and size. Returns errors.ErrFileNotFound when
// the file is absent, which also covers external deletion after the room
// indexed it.
func (f *FileStore) Locate(room domain.RoomAddress, name string) (string, int64, error) {
	base := filepath.Base(name)
	var (
		found string
		size  int64
	)
	root := filepath.Join(f.root, room.String())
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are treated as absent, not fatal.
			return nil
		}
		if d.IsDir() || d.Name() != base {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		found, size = path, info.Size()
		return fs.SkipAll
	})
	if err != nil {
		return "", 0, err
	}
	if found == "" {
		return "", 0, errors.ErrFileNotFound
	}
	return found, size, nil
}

// ContentType infers a MIME type for a located file. The chain is:
// extension mapping, then encoding-based application/x-* types, then a
// content sniff, then the generic octet-stream fallback.
func (f *FileStore) ContentType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	if t, ok := encodingTypes[ext]; ok {
		return t
	}
	if mt, err := mimetype.DetectFile(path); err == nil {
		return mt.String()
	}
	return fallbackType
}
