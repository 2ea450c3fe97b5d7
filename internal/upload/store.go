// Package upload stores admin-provided images under a public directory and
// serves them back by filename.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const DefaultMaxBytes = 5 << 20 // 5 MiB

var (
	ErrFileTooLarge   = errors.New("file exceeds the maximum allowed size")
	ErrDisallowedType = errors.New("file type is not allowed")
	ErrUnsafeFilename = errors.New("unsafe filename")
)

var allowedExt = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

type Store struct {
	Dir      string
	MaxBytes int64
}

func NewStore(dir string, maxBytes int64) (*Store, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{Dir: dir, MaxBytes: maxBytes}, nil
}

// Save validates type and size, writes the file under a generated unique
// name and returns that name. The declared filename only contributes its
// extension, so it can never escape the directory or collide.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > s.MaxBytes {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filepath.Base(fh.Filename)))
	if _, ok := allowedExt[ext]; !ok {
		return "", ErrDisallowedType
	}
	if ct := fh.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return "", ErrDisallowedType
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + ext
	dst, err := os.OpenFile(filepath.Join(s.Dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	// Size from the header is client-declared; cap the copy as well.
	n, err := io.Copy(dst, io.LimitReader(src, s.MaxBytes+1))
	if err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}
	if n > s.MaxBytes {
		os.Remove(dst.Name())
		return "", ErrFileTooLarge
	}

	return name, nil
}

// Open returns the stored file for serving. Any filename that is not a bare
// name inside the directory is rejected.
func (s *Store) Open(filename string) (*os.File, error) {
	if filename == "" || filename != filepath.Base(filename) ||
		strings.Contains(filename, "..") || strings.ContainsAny(filename, `/\`) {
		return nil, ErrUnsafeFilename
	}

	path := filepath.Join(s.Dir, filename)
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, ErrUnsafeFilename
	}
	dirAbs, err := filepath.Abs(s.Dir)
	if err != nil {
		return nil, ErrUnsafeFilename
	}
	if !strings.HasPrefix(abs, dirAbs+string(os.PathSeparator)) {
		return nil, ErrUnsafeFilename
	}

	return os.Open(path)
}
