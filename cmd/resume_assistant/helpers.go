package main

import (
	"fmt"

	"github.com/yamshy/resume-assistant/internal/config"
	"github.com/yamshy/resume-assistant/internal/storage"
)

// openStore opens the draft store rooted at the given directory, falling back
// to the built-in default when empty.
func openStore(storageDir string) (*storage.Store, error) {
	if storageDir == "" {
		storageDir = config.DefaultConfig().StorageDir
	}

	store, err := storage.NewOSStore(storageDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return store, nil
}
