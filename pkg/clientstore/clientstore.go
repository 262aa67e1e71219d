// Package clientstore ทำหน้าที่เหมือน localStorage ของ browser:
// key เดียวเก็บ blob เดียว เขียนทับได้ (last write wins) ไม่มี lock ข้าม tab
package clientstore

import (
	"os"
	"path/filepath"
	"sync"
)

// Store คือ collaborator ฝั่ง client; cart เก็บภายใต้ key เดียวต่อ user
type Store interface {
	// Load คืน (nil, false, nil) เมื่อไม่มี key — ไม่ถือเป็น error
	Load(key string) ([]byte, bool, error)
	Save(key string, value []byte) error
	Remove(key string) error
}

// ---- in-memory ----

type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, true, nil
}

func (s *MemoryStore) Save(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	s.data[key] = cp
	return nil
}

func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// ---- file-backed (หนึ่งไฟล์ต่อ key) ----

type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Load(key string) ([]byte, bool, error) {
	b, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *FileStore) Save(key string, value []byte) error {
	return os.WriteFile(s.path(key), value, 0o644)
}

func (s *FileStore) Remove(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
