// Package storage provides the durable session store: a synchronous
// string-keyed medium the session snapshot is mirrored to, surviving process
// restarts and cleared only by logout or external wiping.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

const stateFile = "session.json"

// FileStore persists keys in a single JSON file inside the state directory.
// Writes are synchronous: set/remove rewrite the file before returning, via a
// temp-file rename so a crash mid-write never truncates existing state.
type FileStore struct {
	mu   sync.Mutex
	path string
	data map[string]string
	log  zerolog.Logger
}

// NewFileStore opens (or creates) the store under dir. A missing or
// unreadable state file is treated as empty; the store must tolerate its
// medium being wiped externally at any time.
func NewFileStore(dir string, log zerolog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}

	s := &FileStore{
		path: filepath.Join(dir, stateFile),
		data: make(map[string]string),
		log:  log,
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return s, nil
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("discarding corrupt session state")
		s.data = make(map[string]string)
	}
	return s, nil
}

func (s *FileStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	s.persist()
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *FileStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return
	}
	delete(s.data, key)
	s.persist()
}

// persist writes the full map atomically. A write failure leaves the session
// medium unusable, which is unrecoverable for the client.
func (s *FileStore) persist() {
	raw, err := json.Marshal(s.data)
	if err != nil {
		s.log.Fatal().Err(err).Msg("encode session state")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		s.log.Fatal().Err(err).Str("path", tmp).Msg("write session state")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.log.Fatal().Err(err).Str("path", s.path).Msg("commit session state")
	}
}
