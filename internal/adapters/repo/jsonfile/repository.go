// Package jsonfile persists the bot's two state documents as whole JSON
// files, rewritten on every mutation. Load and Save absorb storage failures:
// a missing or corrupt file reads as the empty document, and a failed write
// is logged without failing the in-progress command.
package jsonfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

const (
	documentFileMode = 0o600
	documentDirMode  = 0o700
	tempFilePattern  = ".dmbot-*.json.tmp"
)

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

// lockForPath returns a process-wide lock shared by every repository bound to
// the same file, so concurrent instances cannot interleave writes.
func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func normalizeDocumentPath(path string) (string, error) {
	if path == "" {
		return "", errors.New("document path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve document path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

// readDocument returns the raw file contents, or ok=false when the file does
// not exist yet.
func readDocument(path string) (data []byte, ok bool, err error) {
	data, err = os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read document file: %w", err)
	}

	return data, true, nil
}

// writeDocument replaces the file contents via a temp file in the target
// directory and an atomic rename.
func writeDocument(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), documentDirMode); err != nil {
		return fmt.Errorf("create document directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp document file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp document file: %w", err)
	}

	if err := tempFile.Chmod(documentFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp document file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp document file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace document file: %w", err)
	}

	cleanup = false
	return nil
}

func noopLogger(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
