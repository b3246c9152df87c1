package financeiro

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// CachedParceirosKey clave donde el módulo de parceiros deja su listado.
const CachedParceirosKey = "cached_parceiros"

// CacheProvider almacén clave/valor con alcance de sesión.
type CacheProvider interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// ──────────────────────────────────────────────────────────────────────────────
// MemoryCache
// ──────────────────────────────────────────────────────────────────────────────

// MemoryCache implementación en memoria, usada en tests y como fallback.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: map[string]string{}}
}

func (m *MemoryCache) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *MemoryCache) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryCache) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// FileCache
// ──────────────────────────────────────────────────────────────────────────────

// FileCache persiste el mapa clave/valor como un objeto JSON en disco.
// Un archivo inexistente equivale a un caché vacío.
type FileCache struct {
	mu   sync.Mutex
	path string
}

func NewFileCache(path string) *FileCache {
	return &FileCache{path: path}
}

func (f *FileCache) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := f.load()
	if err != nil {
		return "", false
	}
	v, ok := data[key]
	return v, ok
}

func (f *FileCache) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := f.load()
	if err != nil {
		data = map[string]string{}
	}
	data[key] = value
	return f.save(data)
}

func (f *FileCache) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := f.load()
	if err != nil {
		return nil
	}
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)
	return f.save(data)
}

func (f *FileCache) load() (map[string]string, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache: leer %s: %w", f.path, err)
	}
	data := map[string]string{}
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("cache: %s corrupto: %w", f.path, err)
	}
	return data, nil
}

func (f *FileCache) save(data map[string]string) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cache: %w", err)
		}
	}
	return os.WriteFile(f.path, raw, 0o600)
}
