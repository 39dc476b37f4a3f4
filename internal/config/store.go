package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// NoteKey is the settings key holding the path of the note open for editing.
const NoteKey = "editor.note"

// Store is a key-value lookup by namespaced key. The boolean result is false
// when the key has no value at all.
type Store interface {
	Get(key string) (string, bool)
}

// FileStore is a Store backed by the YAML settings file.
type FileStore struct {
	v    *viper.Viper
	path string
}

// Open loads the settings file of cfg. A missing file yields an empty store.
func Open(cfg *Config) (*FileStore, error) {
	v := viper.New()
	v.SetConfigFile(cfg.SettingsPath())
	v.SetConfigType("yaml")

	if cfg.HasSettings() {
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", cfg.SettingsPath())
		}
	}
	return &FileStore{v: v, path: cfg.SettingsPath()}, nil
}

// Get implements Store.
func (s *FileStore) Get(key string) (string, bool) {
	if !s.v.IsSet(key) {
		return "", false
	}
	return s.v.GetString(key), true
}

// Set assigns value to key. The change is kept in memory until Save.
func (s *FileStore) Set(key, value string) {
	s.v.Set(key, value)
}

// Unset removes key. Viper cannot delete a key, so the remaining settings are
// copied into a fresh instance.
func (s *FileStore) Unset(key string) {
	fresh := viper.New()
	fresh.SetConfigFile(s.path)
	fresh.SetConfigType("yaml")
	for _, k := range s.v.AllKeys() {
		if k == key {
			continue
		}
		fresh.Set(k, s.v.Get(k))
	}
	s.v = fresh
}

// Save writes the settings file with mode 0600.
func (s *FileStore) Save() error {
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return errors.Wrapf(err, "failed to write %s", s.path)
	}
	return os.Chmod(s.path, 0600)
}
