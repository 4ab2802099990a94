package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingvictorvector/portfolio-note-generator/internal/common"
	"github.com/kingvictorvector/portfolio-note-generator/internal/models"
	"github.com/kingvictorvector/portfolio-note-generator/internal/template"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(common.NewSilentLogger(), &common.StorageConfig{Path: t.TempDir()})
	require.NoError(t, err)
	return store
}

func TestActiveTemplate_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	content := "My custom template {{clientName}}"
	require.NoError(t, store.SaveActiveTemplate(ctx, content))

	assert.Equal(t, content, store.LoadActiveTemplate(ctx))
}

func TestLoadActiveTemplate_DefaultWhenMissing(t *testing.T) {
	store := newTestStore(t)

	assert.Equal(t, template.DefaultActiveTemplate, store.LoadActiveTemplate(context.Background()))
}

func TestSaveActiveTemplate_RejectsEmpty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, store.SaveActiveTemplate(ctx, ""), ErrEmptyTemplate)
	assert.ErrorIs(t, store.SaveActiveTemplate(ctx, "  \n\t "), ErrEmptyTemplate)

	// Nothing was written.
	_, err := os.Stat(filepath.Join(store.basePath, activeTemplateFile))
	assert.True(t, os.IsNotExist(err))
}

func TestLoadQuickTemplates_DefaultsWhenMissing(t *testing.T) {
	store := newTestStore(t)

	templates := store.LoadQuickTemplates(context.Background())

	require.Len(t, templates, 3)
	for _, key := range []string{"simple", "detailed", "performance"} {
		qt, ok := templates[key]
		require.True(t, ok, "missing default %q", key)
		assert.NotEmpty(t, qt.Name)
		assert.NotEmpty(t, qt.Content)
	}
}

func TestSaveQuickTemplate_GeneratesKey(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	key, err := store.SaveQuickTemplate(ctx, "", "My Template", "content {{clientName}}")
	require.NoError(t, err)
	assert.NotEmpty(t, key)

	templates := store.LoadQuickTemplates(ctx)
	qt, ok := templates[key]
	require.True(t, ok)
	assert.Equal(t, "My Template", qt.Name)
	assert.Equal(t, "content {{clientName}}", qt.Content)
}

func TestSaveQuickTemplate_KeepsCallerKey(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	key, err := store.SaveQuickTemplate(ctx, "mine", "Mine", "body")
	require.NoError(t, err)
	assert.Equal(t, "mine", key)
}

func TestSaveQuickTemplate_RejectsEmptyNameOrContent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.SaveQuickTemplate(ctx, "", "", "body")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = store.SaveQuickTemplate(ctx, "", "Name", "   ")
	assert.ErrorIs(t, err, ErrEmptyTemplate)
}

func TestDeleteQuickTemplate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.SaveQuickTemplate(ctx, "gone", "Gone", "body")
	require.NoError(t, err)

	require.NoError(t, store.DeleteQuickTemplate(ctx, "gone"))

	_, ok := store.LoadQuickTemplates(ctx)["gone"]
	assert.False(t, ok)
}

func TestDeleteQuickTemplate_MissingKeyNoMutation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.SaveQuickTemplate(ctx, "keep", "Keep", "body")
	require.NoError(t, err)
	before := store.LoadQuickTemplates(ctx)

	err = store.DeleteQuickTemplate(ctx, "nope")
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	assert.Equal(t, before, store.LoadQuickTemplates(ctx))
}

func TestSaveQuickTemplates_FullOverwrite(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := map[string]models.QuickTemplate{
		"a": {Name: "A", Content: "a"},
		"b": {Name: "B", Content: "b"},
	}
	require.NoError(t, store.SaveQuickTemplates(ctx, first))

	second := map[string]models.QuickTemplate{
		"c": {Name: "C", Content: "c"},
	}
	require.NoError(t, store.SaveQuickTemplates(ctx, second))

	assert.Equal(t, second, store.LoadQuickTemplates(ctx))
}
