package avatar

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore stores avatars on the local filesystem.
type DiskStore struct {
	dir     string
	baseURL string
	maxSize int64
}

// NewDiskStore creates a DiskStore.
//
// Parameters:
//   - dir: directory to store avatar files
//   - baseURL: public prefix the files are served under (e.g. "/avatars")
//   - maxSize: maximum file size in bytes (0 = no limit)
func NewDiskStore(dir, baseURL string, maxSize int64) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		maxSize: maxSize,
	}, nil
}

// Dir returns the directory avatars are written to, for serving them
// back over HTTP.
func (s *DiskStore) Dir() string {
	return s.dir
}

// Save writes the avatar to disk and returns its URL.
func (s *DiskStore) Save(userID, contentType string, size int64, r io.Reader) (string, error) {
	if s.maxSize > 0 && size > s.maxSize {
		return "", ErrTooLarge
	}

	name := userID + ext(contentType)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var reader io.Reader = r
	if s.maxSize > 0 {
		reader = io.LimitReader(r, s.maxSize+1) // +1 to detect overflow
	}
	written, err := io.Copy(f, reader)
	if err != nil {
		os.Remove(path)
		return "", err
	}
	if s.maxSize > 0 && written > s.maxSize {
		os.Remove(path)
		return "", ErrTooLarge
	}

	return s.baseURL + "/" + name, nil
}
