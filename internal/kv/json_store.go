package kv

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// JSONStore keeps the whole key space in one JSON file. It is the default
// backend; the file is rewritten in full on every mutation.
type JSONStore struct {
	path string
	data map[string]string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.data = make(map[string]string)
	return s.save()
}

func (s *JSONStore) Load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotLoaded
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.data = make(map[string]string)
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Get(key string) (string, bool, error) {
	if s.data == nil {
		return "", false, ErrNotLoaded
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *JSONStore) Set(key, value string) error {
	if s.data == nil {
		return ErrNotLoaded
	}
	s.data[key] = value
	return s.save()
}

func (s *JSONStore) Delete(key string) error {
	if s.data == nil {
		return ErrNotLoaded
	}
	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.save()
}

func (s *JSONStore) Keys() ([]string, error) {
	if s.data == nil {
		return nil, ErrNotLoaded
	}
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *JSONStore) ConfigPath() string {
	return s.path
}
