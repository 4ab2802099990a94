// Package interfaces defines service contracts for the note generator
package interfaces

import (
	"context"

	"github.com/kingvictorvector/portfolio-note-generator/internal/models"
)

// TemplateStore persists the single active template and the named quick
// templates. Quick templates are read in full and rewritten in full on
// every mutation; concurrent writers race with last-writer-wins.
type TemplateStore interface {
	// LoadActiveTemplate returns the saved active template, or the
	// built-in default when nothing has been saved or the read fails.
	LoadActiveTemplate(ctx context.Context) string

	// SaveActiveTemplate persists the active template. Empty or
	// whitespace-only content is rejected before any write.
	SaveActiveTemplate(ctx context.Context, content string) error

	// LoadQuickTemplates returns the quick-template mapping, or the
	// built-in defaults when nothing has been saved.
	LoadQuickTemplates(ctx context.Context) map[string]models.QuickTemplate

	// SaveQuickTemplates overwrites the full quick-template mapping.
	SaveQuickTemplates(ctx context.Context, templates map[string]models.QuickTemplate) error

	// SaveQuickTemplate creates or updates one quick template and
	// returns its key. A key is generated when none is supplied.
	// Templates with an empty name or content are rejected.
	SaveQuickTemplate(ctx context.Context, key, name, content string) (string, error)

	// DeleteQuickTemplate removes one quick template. Deleting a
	// nonexistent key reports an error without mutating the mapping.
	DeleteQuickTemplate(ctx context.Context, key string) error
}
