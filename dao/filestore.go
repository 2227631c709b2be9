package dao

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps all documents in a single JSON file on disk. The
// whole snapshot is rewritten on every Set, mirroring how the browser
// original treated its storage: small, synchronous, all-or-nothing.
type FileStore struct {
	mu   sync.RWMutex
	file *os.File
	docs map[string]json.RawMessage
}

// OpenFileStore opens (or creates) the store file at path.
func OpenFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, err
	}
	s := &FileStore{file: f}
	if err := s.load(); err != nil {
		_ = f.Close()
		return nil, err
	}
	return s, nil
}

func (s *FileStore) Close() error { return s.file.Close() }

func (s *FileStore) load() error {
	info, err := s.file.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		s.docs = map[string]json.RawMessage{}
		return s.flushLocked()
	}
	dec := json.NewDecoder(s.file)
	var docs map[string]json.RawMessage
	if err := dec.Decode(&docs); err != nil {
		return err
	}
	s.docs = docs
	return nil
}

func (s *FileStore) flushLocked() error {
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	enc := json.NewEncoder(s.file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.docs); err != nil {
		return err
	}
	// truncate in case new content is shorter
	pos, _ := s.file.Seek(0, io.SeekCurrent)
	if err := s.file.Truncate(pos); err != nil {
		return err
	}
	return s.file.Sync()
}

func (s *FileStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

func (s *FileStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := make(json.RawMessage, len(value))
	copy(doc, value)
	s.docs[key] = doc
	return s.flushLocked()
}
