// Package store persists the application's named JSON blobs on disk. Each
// logical key (resume data, template settings, saved CVs, cover letters,
// applications, profile) maps to one file under the data directory, mirroring
// the key-value shape the presentation layer expects.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"cvision/internal/errors"
	"cvision/internal/resume"

	"github.com/google/uuid"
)

// Blob keys. File names on disk are the key plus ".json".
const (
	KeyResumeData   = "cvision_data"
	KeySettings     = "cvision_settings"
	KeySavedCVs     = "cvision_saved_cvs"
	KeyCoverLetters = "cvision_cover_letters"
	KeyApplications = "cvision_applications"
	KeyProfile      = "cvision_profile"
)

// Store is a file-backed blob store with an in-memory read cache. Reads hit
// the cache; writes go through to disk and refresh the cache. The watcher
// invalidates cache entries when files change underneath us.
type Store struct {
	mu     sync.RWMutex
	dir    string
	cache  map[string][]byte
	logger *errors.Logger
}

// New opens (creating if needed) a store rooted at dir.
func New(dir string, logger *errors.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, errors.NewStorageError(errors.ErrCodeStoreUnavailable,
			fmt.Sprintf("Cannot create data directory: %s", dir), err)
	}

	return &Store{
		dir:    dir,
		cache:  make(map[string][]byte),
		logger: logger,
	}, nil
}

// Dir returns the data directory backing this store.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// readBlob returns the raw bytes for key, or (nil, nil) when the blob has
// never been written.
func (s *Store) readBlob(key string) ([]byte, error) {
	s.mu.RLock()
	cached, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.NewStorageError(errors.ErrCodeBlobNotFound,
			fmt.Sprintf("Cannot read blob: %s", key), err)
	}

	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	return data, nil
}

func (s *Store) writeBlob(key string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errors.NewInternalError(errors.ErrCodeInvalidFormat,
			fmt.Sprintf("Cannot encode blob: %s", key), err)
	}

	if err := os.WriteFile(s.path(key), data, 0600); err != nil {
		return errors.NewStorageError(errors.ErrCodeStoreUnavailable,
			fmt.Sprintf("Cannot write blob: %s", key), err)
	}

	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Debug("Blob written", "key", key, "bytes", len(data))
	}
	return nil
}

// Invalidate drops the cached copy of a blob so the next read goes to disk.
func (s *Store) Invalidate(key string) {
	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()
}

func readTyped[T any](s *Store, key string, fallback T) (T, error) {
	data, err := s.readBlob(key)
	if err != nil {
		return fallback, err
	}
	if data == nil {
		return fallback, nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return fallback, errors.NewStorageError(errors.ErrCodeInvalidFormat,
			fmt.Sprintf("Corrupt blob: %s", key), err)
	}
	return value, nil
}

// ResumeData returns the working resume, or the default when none is stored.
func (s *Store) ResumeData() (resume.ResumeData, error) {
	return readTyped(s, KeyResumeData, resume.DefaultResumeData())
}

// SaveResumeData persists the working resume.
func (s *Store) SaveResumeData(data resume.ResumeData) error {
	return s.writeBlob(KeyResumeData, data)
}

// Settings returns the template settings, or the defaults when none stored.
func (s *Store) Settings() (resume.TemplateSettings, error) {
	return readTyped(s, KeySettings, resume.DefaultTemplateSettings())
}

// SaveSettings persists the template settings.
func (s *Store) SaveSettings(settings resume.TemplateSettings) error {
	return s.writeBlob(KeySettings, settings)
}

// SavedCVs lists all stored resume snapshots.
func (s *Store) SavedCVs() ([]resume.SavedCV, error) {
	return readTyped(s, KeySavedCVs, []resume.SavedCV{})
}

// SaveCV snapshots the current resume and settings under a display name.
func (s *Store) SaveCV(name string, data resume.ResumeData, settings resume.TemplateSettings) (resume.SavedCV, error) {
	cvs, err := s.SavedCVs()
	if err != nil {
		return resume.SavedCV{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	cv := resume.SavedCV{
		ID:         uuid.NewString(),
		Name:       name,
		ResumeData: data,
		Settings:   settings,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	cvs = append(cvs, cv)

	if err := s.writeBlob(KeySavedCVs, cvs); err != nil {
		return resume.SavedCV{}, err
	}
	return cv, nil
}

// DeleteCV removes a snapshot by id. Deleting an unknown id is a no-op.
func (s *Store) DeleteCV(id string) error {
	cvs, err := s.SavedCVs()
	if err != nil {
		return err
	}

	kept := cvs[:0]
	for _, cv := range cvs {
		if cv.ID != id {
			kept = append(kept, cv)
		}
	}
	return s.writeBlob(KeySavedCVs, kept)
}

// CoverLetters lists all stored cover letters.
func (s *Store) CoverLetters() ([]resume.CoverLetter, error) {
	return readTyped(s, KeyCoverLetters, []resume.CoverLetter{})
}

// SaveCoverLetter stores a new cover letter and returns it with identity and
// timestamps filled in.
func (s *Store) SaveCoverLetter(name, company, position, content string) (resume.CoverLetter, error) {
	letters, err := s.CoverLetters()
	if err != nil {
		return resume.CoverLetter{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	letter := resume.CoverLetter{
		ID:             uuid.NewString(),
		Name:           name,
		TargetCompany:  company,
		TargetPosition: position,
		Content:        content,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	letters = append(letters, letter)

	if err := s.writeBlob(KeyCoverLetters, letters); err != nil {
		return resume.CoverLetter{}, err
	}
	return letter, nil
}

// Applications lists all tracked job applications.
func (s *Store) Applications() ([]resume.JobApplication, error) {
	return readTyped(s, KeyApplications, []resume.JobApplication{})
}

// AddApplication records a new application with status "applied".
func (s *Store) AddApplication(app resume.JobApplication) (resume.JobApplication, error) {
	apps, err := s.Applications()
	if err != nil {
		return resume.JobApplication{}, err
	}

	app.ID = uuid.NewString()
	if app.Status == "" {
		app.Status = resume.StatusApplied
	}
	if app.AppliedDate == "" {
		app.AppliedDate = time.Now().UTC().Format(time.RFC3339)
	}
	apps = append(apps, app)

	if err := s.writeBlob(KeyApplications, apps); err != nil {
		return resume.JobApplication{}, err
	}
	return app, nil
}

// UpdateApplicationStatus changes the status of an existing application.
func (s *Store) UpdateApplicationStatus(id string, status resume.ApplicationStatus) error {
	apps, err := s.Applications()
	if err != nil {
		return err
	}

	for i := range apps {
		if apps[i].ID == id {
			apps[i].Status = status
			return s.writeBlob(KeyApplications, apps)
		}
	}
	return errors.NewStorageError(errors.ErrCodeBlobNotFound,
		fmt.Sprintf("No application with id: %s", id), nil)
}

// Profile returns the stored user profile, or an empty local profile.
func (s *Store) Profile() (resume.UserProfile, error) {
	return readTyped(s, KeyProfile, resume.UserProfile{
		ID:        "local-user",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// SaveProfile persists the user profile.
func (s *Store) SaveProfile(profile resume.UserProfile) error {
	return s.writeBlob(KeyProfile, profile)
}
