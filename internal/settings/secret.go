package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// SecretStore holds values that must not live in the plain settings document.
type SecretStore interface {
	// LoadConsent returns the stored consent and whether a value was found.
	LoadConsent() (bool, bool, error)
	SaveConsent(consent bool) error
}

type fileSecrets struct {
	path string
}

type secretDoc struct {
	LLMConsent bool `json:"llmConsent"`
}

// NewFileSecretStore keeps secrets in a single owner-only file.
func NewFileSecretStore(path string) SecretStore {
	return &fileSecrets{path: path}
}

func (f *fileSecrets) LoadConsent() (bool, bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("failed to read secret store: %w", err)
	}
	var doc secretDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return false, false, fmt.Errorf("failed to decode secret store: %w", err)
	}
	return doc.LLMConsent, true, nil
}

func (f *fileSecrets) SaveConsent(consent bool) error {
	data, err := json.Marshal(secretDoc{LLMConsent: consent})
	if err != nil {
		return err
	}
	return writeFile(f.path, data)
}

// writeFile replaces path atomically and restricts it to the owner.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerms); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	// atomic.WriteFile doesn't set permissions for new files
	if err := os.Chmod(path, filePerms); err != nil {
		return fmt.Errorf("failed to set file permissions: %w", err)
	}
	return nil
}
