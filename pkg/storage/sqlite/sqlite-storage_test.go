package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silktrader/statuary/pkg/content"
	"github.com/silktrader/statuary/pkg/content/contenttest"
)

func open(t *testing.T, path string) *Storage {
	t.Helper()
	logger, _ := test.NewNullLogger()
	storage, err := New(logger, path)
	require.NoError(t, err)
	return storage
}

func TestNewDatabaseIsEmpty(t *testing.T) {
	storage := open(t, filepath.Join(t.TempDir(), "statuary.db"))
	defer storage.Close()

	snapshot, err := storage.Load()
	require.NoError(t, err)
	assert.Equal(t, content.Snapshot{}, snapshot)
}

func TestSnapshotSurvivesReopening(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "statuary.db")
	store, _, f := contenttest.NewStore()
	store.CreatePurchase(content.NewPurchase{TourId: f.Philosophy.TourId, UserId: f.Guide.UserId, Amount: f.Philosophy.Price})
	var saved = store.Snapshot()

	storage := open(t, path)
	require.NoError(t, storage.Save(saved))
	require.NoError(t, storage.Close())

	// the existing file passes the schema check
	storage = open(t, path)
	defer storage.Close()

	loaded, err := storage.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)

	restored := content.New(content.Config{})
	restored.Restore(loaded)
	liberty, found := restored.Statue(f.Liberty.StatueId)
	require.True(t, found)
	assert.Equal(t, 2, liberty.AnnotationCount)
	assert.Equal(t, 2, liberty.CommentCount)
	assert.True(t, restored.HasPurchased(f.Guide.UserId, f.Philosophy.TourId))
}

func TestSaveReplacesContents(t *testing.T) {
	storage := open(t, filepath.Join(t.TempDir(), "statuary.db"))
	defer storage.Close()

	store, _, f := contenttest.NewStore()
	require.NoError(t, storage.Save(store.Snapshot()))

	store.DeleteComment(f.Praise.CommentId)
	store.DeleteAnnotation(f.TorchNote.AnnotationId)
	require.NoError(t, storage.Save(store.Snapshot()))

	loaded, err := storage.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded.Comments)
	require.Len(t, loaded.Annotations, 1)
	assert.Equal(t, f.CrownStory.AnnotationId, loaded.Annotations[0].AnnotationId)
	assert.Len(t, loaded.Statues, 3)
}

func TestSchemaMismatch(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "foreign.db")
	foreign, err := sql.Open("sqlite3", getConnectionString(path))
	require.NoError(t, err)
	_, err = foreign.Exec(`CREATE TABLE artwork (id TEXT PRIMARY KEY, title TEXT NOT NULL)`)
	require.NoError(t, err)
	require.NoError(t, foreign.Close())

	logger, _ := test.NewNullLogger()
	_, err = New(logger, path)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestSameSchemaMap(t *testing.T) {
	var base = map[string]string{"users": "CREATE TABLE users (id TEXT)"}

	assert.True(t, sameSchemaMap(base, map[string]string{"users": "CREATE TABLE users (id TEXT)"}))
	assert.False(t, sameSchemaMap(base, map[string]string{"users": "CREATE TABLE users (id INTEGER)"}))
	assert.False(t, sameSchemaMap(base, map[string]string{"statues": "CREATE TABLE users (id TEXT)"}))
	assert.False(t, sameSchemaMap(base, map[string]string{"users": "CREATE TABLE users (id TEXT)", "extra": ""}))
}
