// Package storage provides the file-backed JSON store for profiles and tailored resume drafts.
//
// Every draft lives in exactly one file under a fixed root, named by its
// canonical UUID. Identifiers that do not parse as canonical UUIDs, or whose
// resolved path would fall outside the root, are rejected before any
// filesystem access.
package storage

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/yamshy/resume-assistant/internal/types"
)

const (
	// profileFile is the fixed name of the single-user profile document
	profileFile = "profile.json"
	// jsonExt is the extension for all stored documents
	jsonExt = ".json"
)

// Store persists profiles and tailored resume drafts as JSON files
type Store struct {
	fs       afero.Fs
	root     string
	validate *validator.Validate
}

// NewStore creates a store rooted at the given directory, creating it if needed
func NewStore(fs afero.Fs, root string) (*Store, error) {
	if root == "" {
		return nil, fmt.Errorf("storage root is required")
	}

	root = filepath.Clean(root)
	if err := fs.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root %s: %w", root, err)
	}

	return &Store{
		fs:       fs,
		root:     root,
		validate: validator.New(),
	}, nil
}

// NewOSStore creates a store backed by the operating system filesystem
func NewOSStore(root string) (*Store, error) {
	return NewStore(afero.NewOsFs(), root)
}

// Root returns the storage root directory
func (s *Store) Root() string {
	return s.root
}

// resumePath maps a resume identifier to its file path under the root.
// The identifier must be a canonical UUID; uuid.Parse alone is not enough
// because it also accepts braced, URN, and hyphenless forms.
func (s *Store) resumePath(id string) (string, error) {
	trimmed := strings.TrimSpace(id)
	parsed, err := uuid.Parse(trimmed)
	if err != nil || parsed.String() != strings.ToLower(trimmed) {
		return "", &InvalidIDError{ID: id}
	}

	path := filepath.Join(s.root, parsed.String()+jsonExt)
	if err := s.checkWithinRoot(path); err != nil {
		return "", err
	}

	return path, nil
}

// checkWithinRoot rejects any path that resolves outside the storage root
func (s *Store) checkWithinRoot(path string) error {
	cleaned := filepath.Clean(path)
	if cleaned != s.root && !strings.HasPrefix(cleaned, s.root+string(filepath.Separator)) {
		return &PathEscapeError{Path: path}
	}
	return nil
}

// writeAtomic marshals the document and atomically replaces the file at path.
// The full document is written to a temp file first, then renamed over the
// previous snapshot so readers never observe a partial write.
func (s *Store) writeAtomic(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &WriteError{Message: "failed to marshal document", Cause: err}
	}

	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return &WriteError{Message: fmt.Sprintf("failed to write %s", tmp), Cause: err}
	}

	if err := s.fs.Rename(tmp, path); err != nil {
		// afero's in-memory filesystem refuses to clobber an existing
		// destination, unlike the OS rename which replaces in place.
		_ = s.fs.Remove(path)
		if err := s.fs.Rename(tmp, path); err != nil {
			_ = s.fs.Remove(tmp)
			return &WriteError{Message: fmt.Sprintf("failed to replace %s", path), Cause: err}
		}
	}

	return nil
}

// SaveResume persists a full draft snapshot under its UUID
func (s *Store) SaveResume(resume *types.TailoredResume) error {
	if resume == nil {
		return fmt.Errorf("resume is required")
	}
	if resume.ID == uuid.Nil {
		return &InvalidIDError{ID: resume.ID.String()}
	}

	path, err := s.resumePath(resume.ID.String())
	if err != nil {
		return err
	}

	return s.writeAtomic(path, resume)
}

// GetResume loads a full draft snapshot by identifier
func (s *Store) GetResume(id string) (*types.TailoredResume, error) {
	path, err := s.resumePath(id)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if exists, _ := afero.Exists(s.fs, path); !exists {
			return nil, fmt.Errorf("resume %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read resume %s: %w", id, err)
	}

	var resume types.TailoredResume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to decode resume %s: %w", id, err)
	}

	return &resume, nil
}

// ListResumes scans the root directory and returns draft summaries, newest first.
// Files that are not canonical UUID documents or fail to decode are skipped.
func (s *Store) ListResumes() ([]types.ResumeSummary, error) {
	entries, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan storage root: %w", err)
	}

	summaries := make([]types.ResumeSummary, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == profileFile || !strings.HasSuffix(name, jsonExt) {
			continue
		}

		id := strings.TrimSuffix(name, jsonExt)
		if _, err := uuid.Parse(id); err != nil {
			continue
		}

		resume, err := s.GetResume(id)
		if err != nil {
			continue
		}
		summaries = append(summaries, resume.Summary())
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})

	return summaries, nil
}

// SaveProfile validates and persists the user profile
func (s *Store) SaveProfile(profile *types.Profile) error {
	if profile == nil {
		return fmt.Errorf("profile is required")
	}
	if err := s.validate.Struct(profile); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	path := filepath.Join(s.root, profileFile)
	if err := s.checkWithinRoot(path); err != nil {
		return err
	}

	return s.writeAtomic(path, profile)
}

// GetProfile loads the stored user profile
func (s *Store) GetProfile() (*types.Profile, error) {
	path := filepath.Join(s.root, profileFile)

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if exists, _ := afero.Exists(s.fs, path); !exists {
			return nil, fmt.Errorf("profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile types.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}

	return &profile, nil
}
