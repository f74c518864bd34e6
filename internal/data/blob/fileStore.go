package blob

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/studykit/studykit/internal/config"
	"github.com/studykit/studykit/pkg/logger_i"
)

// Store is the binary collaborator contract: put bytes, get them back by key.
type Store interface {
	Put(name string, r io.Reader) (key string, err error)
	Get(key string) ([]byte, error)
	// Path returns a local filesystem path for the key. The pdf and docx
	// extractors both read from a path rather than a reader.
	Path(key string) string
	Delete(key string) error
}

// FileStore keeps blobs on local disk under a single directory. Keys are
// timestamped filenames, the same scheme the upload dir always used.
type FileStore struct {
	dir    string
	logger *logger_i.Logger
}

func NewFileStore() (*FileStore, error) {
	root, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(root, config.UploadDirName)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, err
	}
	return &FileStore{
		dir:    dir,
		logger: logger_i.NewLogger("BlobStore"),
	}, nil
}

// NewTestFileStore roots the store at an arbitrary directory (t.TempDir).
func NewTestFileStore(dir string) *FileStore {
	return &FileStore{
		dir:    dir,
		logger: logger_i.NewLogger("test blob"),
	}
}

func (s *FileStore) Put(name string, r io.Reader) (string, error) {
	key := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(name))
	dst, err := os.Create(filepath.Join(s.dir, key))
	if err != nil {
		return "", fmt.Errorf("blob create failed: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("blob write failed: %w", err)
	}
	s.logger.Debug("Stored blob", "key", key)
	return key, nil
}

func (s *FileStore) Get(key string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.dir, filepath.Base(key)))
}

func (s *FileStore) Path(key string) string {
	return filepath.Join(s.dir, filepath.Base(key))
}

func (s *FileStore) Delete(key string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(key)))
	if err != nil {
		s.logger.Error("Error removing blob", "key", key, "error", err)
	}
	return err
}
