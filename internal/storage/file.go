package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"storefront-client/internal/apperr"
)

// FileStore keeps one JSON file per key under a directory, standing in for
// the device key-value storage. Writes go through a temp file and rename so a
// crash never leaves a half-written blob behind.
type FileStore struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "storage.open", err)
	}
	return &FileStore{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// keyLock retrieves or creates the mutex serializing access to one key.
func (f *FileStore) keyLock(key string) *sync.Mutex {
	f.mu.Lock()
	defer f.mu.Unlock()

	l, ok := f.locks[key]
	if !ok {
		l = &sync.Mutex{}
		f.locks[key] = l
	}
	return l
}

func (f *FileStore) path(key string) string {
	// keys are fixed identifiers; the replace guards against path separators
	safe := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(f.dir, safe+".json")
}

func (f *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "storage.get "+key, err)
	}

	l := f.keyLock(key)
	l.Lock()
	defer l.Unlock()

	return f.read(key)
}

func (f *FileStore) read(key string) ([]byte, error) {
	raw, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, apperr.New(apperr.KindNotFound, "storage.get "+key, "key not set")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "storage.get "+key, err)
	}
	return raw, nil
}

func (f *FileStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return apperr.Wrap(apperr.KindStorage, "storage.set "+key, err)
	}

	l := f.keyLock(key)
	l.Lock()
	defer l.Unlock()

	return f.write(key, value)
}

func (f *FileStore) write(key string, value []byte) error {
	path := f.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return apperr.Wrap(apperr.KindStorage, "storage.set "+key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return apperr.Wrap(apperr.KindStorage, "storage.set "+key, err)
	}
	return nil
}

func (f *FileStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return apperr.Wrap(apperr.KindStorage, "storage.delete "+key, err)
	}

	l := f.keyLock(key)
	l.Lock()
	defer l.Unlock()

	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return apperr.Wrap(apperr.KindStorage, "storage.delete "+key, err)
	}
	return nil
}

func (f *FileStore) Update(ctx context.Context, key string, fn func(cur []byte) ([]byte, error)) error {
	if err := ctx.Err(); err != nil {
		return apperr.Wrap(apperr.KindStorage, "storage.update "+key, err)
	}

	l := f.keyLock(key)
	l.Lock()
	defer l.Unlock()

	cur, err := f.read(key)
	if err != nil && !apperr.IsKind(err, apperr.KindNotFound) {
		return err
	}

	next, err := fn(cur)
	if err != nil {
		return err
	}
	if next == nil {
		if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
			return apperr.Wrap(apperr.KindStorage, "storage.update "+key, err)
		}
		return nil
	}
	return f.write(key, next)
}
