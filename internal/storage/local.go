package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var ErrAssetNotFound = fmt.Errorf("asset not found")

// LocalAssetStore keeps assets under basePath/<kind>/. File names carry a
// nanosecond suffix so regenerated assets never collide with the files they
// replace.
type LocalAssetStore struct {
	basePath string
	log      *slog.Logger
}

func NewLocalAssetStore(basePath string, log *slog.Logger) (*LocalAssetStore, error) {
	if log == nil {
		log = slog.Default()
	}
	for _, kind := range []string{KindImage, KindPDF} {
		if err := os.MkdirAll(filepath.Join(basePath, kind), 0o755); err != nil {
			return nil, fmt.Errorf("create asset directory: %w", err)
		}
	}
	return &LocalAssetStore{basePath: basePath, log: log}, nil
}

func (s *LocalAssetStore) Save(ctx context.Context, kind, prefix, mimeType string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%d%s", slugify(prefix), time.Now().UnixNano(), mimeTypeToExt(mimeType))
	path := filepath.Join(s.basePath, kind, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create asset file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		if cerr := f.Close(); cerr != nil {
			s.log.Error("close asset after write error", "name", name, "error", cerr)
		}
		if rerr := os.Remove(path); rerr != nil {
			s.log.Error("remove asset after write error", "name", name, "error", rerr)
		}
		return "", fmt.Errorf("write asset file: %w", err)
	}
	if err := f.Close(); err != nil {
		if rerr := os.Remove(path); rerr != nil {
			s.log.Error("remove asset after close error", "name", name, "error", rerr)
		}
		return "", fmt.Errorf("close asset file: %w", err)
	}
	return name, nil
}

func (s *LocalAssetStore) Open(ctx context.Context, kind, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.Path(kind, name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("open asset file: %w", err)
	}
	return f, nil
}

func (s *LocalAssetStore) Path(kind, name string) (string, error) {
	return s.safeJoin(filepath.Join(kind, name))
}

func (s *LocalAssetStore) Delete(ctx context.Context, kind, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.Path(kind, name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return ErrAssetNotFound
		}
		return fmt.Errorf("delete asset file: %w", err)
	}
	return nil
}

// safeJoin resolves key relative to basePath and rejects directory traversal.
func (s *LocalAssetStore) safeJoin(key string) (string, error) {
	absBase, err := filepath.Abs(s.basePath)
	if err != nil {
		return "", fmt.Errorf("invalid base path: %w", err)
	}

	absPath, err := filepath.Abs(filepath.Join(s.basePath, key))
	if err != nil {
		return "", fmt.Errorf("invalid asset path: %w", err)
	}

	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("asset path escapes storage root")
	}
	return absPath, nil
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "asset"
	}
	return b.String()
}

func mimeTypeToExt(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "application/pdf":
		return ".pdf"
	default:
		return ".jpg"
	}
}
