// Package storage provides the file-backed template store.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kingvictorvector/portfolio-note-generator/internal/common"
	"github.com/kingvictorvector/portfolio-note-generator/internal/models"
	"github.com/kingvictorvector/portfolio-note-generator/internal/template"
)

// Validation errors reported before any write happens.
var (
	ErrEmptyTemplate    = errors.New("template content is empty")
	ErrEmptyName        = errors.New("template name is empty")
	ErrTemplateNotFound = errors.New("template not found")
)

const (
	activeTemplateFile = "template.txt"
	quickTemplatesFile = "quick-templates.json"
)

// FileStore persists templates on disk: the active template as raw text
// and quick templates as one JSON object keyed by template key. The
// layout is fixed for compatibility with existing data directories.
type FileStore struct {
	basePath string
	logger   *common.Logger
}

// NewFileStore creates a FileStore and ensures the data directory exists.
func NewFileStore(logger *common.Logger, config *common.StorageConfig) (*FileStore, error) {
	if err := os.MkdirAll(config.Path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", config.Path, err)
	}

	fs := &FileStore{
		basePath: config.Path,
		logger:   logger,
	}

	logger.Debug().Str("path", config.Path).Msg("FileStore opened")
	return fs, nil
}

// LoadActiveTemplate returns the saved active template. A missing file
// or read error falls back to the built-in default rather than failing:
// note generation must always have a template to work with.
func (fs *FileStore) LoadActiveTemplate(ctx context.Context) string {
	data, err := os.ReadFile(filepath.Join(fs.basePath, activeTemplateFile))
	if err != nil {
		if !os.IsNotExist(err) {
			fs.logger.Warn().Err(err).Msg("Failed to read active template, using default")
		}
		return template.DefaultActiveTemplate
	}
	return string(data)
}

// SaveActiveTemplate persists the active template. Empty or
// whitespace-only content is rejected before any write.
func (fs *FileStore) SaveActiveTemplate(ctx context.Context, content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyTemplate
	}
	return fs.writeFile(activeTemplateFile, []byte(content))
}

// LoadQuickTemplates returns the quick-template mapping. A missing or
// unreadable file yields the three built-in defaults.
func (fs *FileStore) LoadQuickTemplates(ctx context.Context) map[string]models.QuickTemplate {
	data, err := os.ReadFile(filepath.Join(fs.basePath, quickTemplatesFile))
	if err != nil {
		if !os.IsNotExist(err) {
			fs.logger.Warn().Err(err).Msg("Failed to read quick templates, using defaults")
		}
		return template.DefaultQuickTemplates()
	}

	templates := make(map[string]models.QuickTemplate)
	if err := json.Unmarshal(data, &templates); err != nil {
		fs.logger.Warn().Err(err).Msg("Failed to parse quick templates, using defaults")
		return template.DefaultQuickTemplates()
	}
	return templates
}

// SaveQuickTemplates overwrites the full quick-template mapping.
func (fs *FileStore) SaveQuickTemplates(ctx context.Context, templates map[string]models.QuickTemplate) error {
	data, err := json.MarshalIndent(templates, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal quick templates: %w", err)
	}
	data = append(data, '\n')
	return fs.writeFile(quickTemplatesFile, data)
}

// SaveQuickTemplate creates or updates one quick template via a full
// read-modify-write of the mapping and returns the template's key.
// When key is empty a time-based key is generated.
func (fs *FileStore) SaveQuickTemplate(ctx context.Context, key, name, content string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyName
	}
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyTemplate
	}

	if key == "" {
		key = fmt.Sprintf("tpl-%d", time.Now().UnixMilli())
	}

	templates := fs.LoadQuickTemplates(ctx)
	templates[key] = models.QuickTemplate{Name: name, Content: content}

	if err := fs.SaveQuickTemplates(ctx, templates); err != nil {
		return "", err
	}
	return key, nil
}

// DeleteQuickTemplate removes one quick template. A nonexistent key is
// an error and leaves the stored mapping untouched.
func (fs *FileStore) DeleteQuickTemplate(ctx context.Context, key string) error {
	templates := fs.LoadQuickTemplates(ctx)
	if _, ok := templates[key]; !ok {
		return fmt.Errorf("%w: '%s'", ErrTemplateNotFound, key)
	}
	delete(templates, key)
	return fs.SaveQuickTemplates(ctx, templates)
}

// writeFile writes data atomically: temp file in the same directory,
// then rename.
func (fs *FileStore) writeFile(name string, data []byte) error {
	target := filepath.Join(fs.basePath, name)

	tmpFile, err := os.CreateTemp(fs.basePath, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", target, err)
	}

	fs.logger.Debug().Str("file", name).Int("bytes", len(data)).Msg("Template file written")
	return nil
}
