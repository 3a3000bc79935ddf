package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/moodjournal/internal"
	"github.com/yourname/moodjournal/internal/config"
)

type paths struct{ records, activities, profiles string }

func setupFileStorage(t *testing.T) (*FileStorage, paths) {
	t.Helper()
	dir := t.TempDir()
	p := paths{
		records:    filepath.Join(dir, "data", "records.json"),
		activities: filepath.Join(dir, "data", "activities.json"),
		profiles:   filepath.Join(dir, "data", "profiles.json"),
	}
	s, err := NewFileStorage(p.records, p.activities, p.profiles, internal.NewNopLogger())
	require.NoError(t, err)
	s.saveDelay = 10 * time.Millisecond
	t.Cleanup(func() { _ = s.Close() })
	return s, p
}

func record(id, user string, ts int64) *internal.EmotionRecord {
	return &internal.EmotionRecord{ID: id, UserID: user, EmotionID: internal.Bem, ActivityID: "lazer", Intensity: 3, Timestamp: ts}
}

func ids(recs []internal.EmotionRecord) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

func TestFileStorage_AppendKeepsNewestFirst(t *testing.T) {
	s, _ := setupFileStorage(t)
	ctx := context.Background()

	require.NoError(t, s.AppendRecord(ctx, record("b", "u1", 200)))
	require.NoError(t, s.AppendRecord(ctx, record("a", "u1", 100)))
	require.NoError(t, s.AppendRecord(ctx, record("c", "u1", 300)))
	require.NoError(t, s.AppendRecord(ctx, record("x", "u2", 250)))

	recs, err := s.ListRecords(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, ids(recs))

	empty, err := s.ListRecords(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestFileStorage_ListReturnsCopies(t *testing.T) {
	s, _ := setupFileStorage(t)
	ctx := context.Background()
	require.NoError(t, s.AppendRecord(ctx, record("a", "u1", 1)))

	recs, _ := s.ListRecords(ctx, "u1")
	recs[0].Note = "changed"

	again, _ := s.ListRecords(ctx, "u1")
	assert.Empty(t, again[0].Note)
}

func TestFileStorage_DeleteRecord(t *testing.T) {
	s, _ := setupFileStorage(t)
	ctx := context.Background()
	require.NoError(t, s.AppendRecord(ctx, record("a", "u1", 1)))
	require.NoError(t, s.AppendRecord(ctx, record("b", "u1", 2)))

	require.NoError(t, s.DeleteRecord(ctx, "u1", "a"))
	assert.ErrorIs(t, s.DeleteRecord(ctx, "u1", "a"), ErrNotFound)
	assert.ErrorIs(t, s.DeleteRecord(ctx, "u2", "b"), ErrNotFound)

	recs, _ := s.ListRecords(ctx, "u1")
	assert.Equal(t, []string{"b"}, ids(recs))
}

func TestFileStorage_ActivitiesAndProfiles(t *testing.T) {
	s, _ := setupFileStorage(t)
	ctx := context.Background()

	_, err := s.ListActivities(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetProfile(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.SaveActivities(ctx, "u1", []internal.Activity{{ID: "violao", Label: "Violão"}}))
	acts, err := s.ListActivities(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Violão", acts[0].Label)

	require.NoError(t, s.SaveActivities(ctx, "u1", []internal.Activity{}))
	acts, err = s.ListActivities(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, acts)

	age := 31
	require.NoError(t, s.SaveProfile(ctx, "u1", &internal.UserProfile{Name: "Ana", Age: &age}))
	p, err := s.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, 31, *p.Age)
}

func TestFileStorage_DebouncedSave(t *testing.T) {
	s, p := setupFileStorage(t)
	require.NoError(t, s.AppendRecord(context.Background(), record("a", "u1", 1)))

	require.Eventually(t, func() bool {
		info, err := os.Stat(p.records)
		return err == nil && info.Size() > 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestFileStorage_PersistsAcrossReopen(t *testing.T) {
	s, p := setupFileStorage(t)
	ctx := context.Background()

	require.NoError(t, s.AppendRecord(ctx, record("a", "u1", 1)))
	require.NoError(t, s.AppendRecord(ctx, record("b", "u1", 2)))
	require.NoError(t, s.SaveActivities(ctx, "u1", []internal.Activity{{ID: "lazer", Label: "Lazer"}}))
	require.NoError(t, s.SaveProfile(ctx, "u1", &internal.UserProfile{Name: "Ana"}))
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	reopened, err := NewFileStorage(p.records, p.activities, p.profiles, internal.NewNopLogger())
	require.NoError(t, err)
	defer reopened.Close()

	recs, err := reopened.ListRecords(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids(recs))
	acts, err := reopened.ListActivities(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, acts, 1)
	prof, err := reopened.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", prof.Name)
}

func TestFileStorage_ReplaceRecords(t *testing.T) {
	s, _ := setupFileStorage(t)
	ctx := context.Background()
	require.NoError(t, s.AppendRecord(ctx, record("old", "u1", 1)))

	require.NoError(t, s.ReplaceRecords(ctx, "u1", []internal.EmotionRecord{*record("n1", "", 5), *record("n2", "", 9)}))

	recs, _ := s.ListRecords(ctx, "u1")
	assert.Equal(t, []string{"n2", "n1"}, ids(recs))
	assert.Equal(t, "u1", recs[0].UserID)
}

func TestFileStorage_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	records := filepath.Join(dir, "records.json")
	require.NoError(t, os.WriteFile(records, []byte("{not json"), 0o644))

	_, err := NewFileStorage(records, filepath.Join(dir, "a.json"), filepath.Join(dir, "p.json"), internal.NewNopLogger())
	assert.Error(t, err)
}

func TestNew_ErrorsReturnNilStore(t *testing.T) {
	dir := t.TempDir()
	records := filepath.Join(dir, "records.json")
	require.NoError(t, os.WriteFile(records, []byte("{not json"), 0o644))

	cfg := &config.Config{
		StorageBackend: "file",
		RecordsFile:    records,
		ActivitiesFile: filepath.Join(dir, "a.json"),
		ProfilesFile:   filepath.Join(dir, "p.json"),
	}
	store, err := New(context.Background(), cfg, internal.NewNopLogger())
	assert.Error(t, err)
	assert.True(t, store == nil, "store must be an untyped nil")

	cfg.StorageBackend = "sqlite"
	store, err = New(context.Background(), cfg, internal.NewNopLogger())
	assert.ErrorContains(t, err, "unknown backend")
	assert.True(t, store == nil)
}
