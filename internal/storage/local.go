package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// LocalStorage хранит файлы на локальном диске. Используется в dev-окружении
// и в тестах; в проде ожидается S3/R2.
type LocalStorage struct {
	basePath string
	baseURL  string
}

func NewLocalStorage(cfg Config) (*LocalStorage, error) {
	basePath := cfg.BasePath
	if basePath == "" {
		basePath = "./uploads"
	}

	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root %s: %w", basePath, err)
	}

	return &LocalStorage{basePath: basePath, baseURL: cfg.BaseURL}, nil
}

func (l *LocalStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	dst := filepath.Join(l.basePath, path)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (l *LocalStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(l.basePath, path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

// Delete не считает отсутствующий файл ошибкой.
func (l *LocalStorage) Delete(ctx context.Context, path string) error {
	if err := os.Remove(filepath.Join(l.basePath, path)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}

func (l *LocalStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(filepath.Join(l.basePath, path))
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, err
	}
}

func (l *LocalStorage) GetURL(ctx context.Context, path string) (string, error) {
	base := l.baseURL
	if base == "" {
		base = "/files"
	}
	return fmt.Sprintf("%s/%s", base, path), nil
}

// GetSignedURL: локальное хранилище не подписывает ссылки, отдаём обычный URL.
func (l *LocalStorage) GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return l.GetURL(ctx, path)
}
