// Package filestore keeps products and carts as JSON arrays on disk. Every
// mutation reads the whole file and writes it back.
package filestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/junaidrashid-git/ecommerce-realtime/store"
)

const (
	ProductsFile = "products.json"
	CartsFile    = "carts.json"
)

// jsonFile serialises access to one JSON array file within this process.
type jsonFile struct {
	mu   sync.Mutex
	path string
}

func (f *jsonFile) load(v any) error {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		data = []byte("[]")
	} else if err != nil {
		return fmt.Errorf("read %s: %w", f.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		data = []byte("[]")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", f.path, err)
	}
	return nil
}

func (f *jsonFile) store(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", f.path, err)
	}
	return writeAtomic(f.path, data)
}

// writeAtomic replaces path in one rename so readers, including a backup
// copying the directory, only ever see a complete file. The temp file is a
// dot-file next to the target so the rename stays on one filesystem.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// Open prepares dataDir and returns both file-backed stores.
func Open(dataDir string) (*store.Stores, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	products := NewProductStore(filepath.Join(dataDir, ProductsFile))
	carts := NewCartStore(filepath.Join(dataDir, CartsFile))
	return &store.Stores{
		Products: products,
		Carts:    carts,
		Close:    func(_ context.Context) error { return nil },
	}, nil
}
