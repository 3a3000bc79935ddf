package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/moodjournal/internal"
	"github.com/yourname/moodjournal/internal/catalog"
)

const bundleJSON = `{
  "emotitime_records": [
    {"id":"old","emotionId":"feliz","activityId":"lazer","intensity":4,"timestamp":1715000000000},
    {"id":"new","emotionId":"ansioso","activityId":"trabalho","intensity":3,"timestamp":1715300000000}
  ],
  "emotitime_user_profile": {"name":"Rui"}
}`

func writeBundle(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bundle.json")
	require.NoError(t, os.WriteFile(path, []byte(bundleJSON), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCommand(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestMentorCommand(t *testing.T) {
	var out bytes.Buffer
	root := newRootCommand(&out)
	root.SetArgs([]string{"mentor", "--file", writeBundle(t), "--seed", "7", "--tz", "America/Sao_Paulo"})
	require.NoError(t, root.Execute())

	var note internal.MentorNote
	require.NoError(t, json.Unmarshal(out.Bytes(), &note))
	assert.Equal(t, catalog.Default().Texts.Grounding, note.Content)
	assert.Contains(t, note.Greeting, "Rui")
}

func TestInsightsCommand(t *testing.T) {
	out, err := run(t, "insights", "--file", writeBundle(t), "--seed", "1")
	require.NoError(t, err)

	var res internal.Insights
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.NotNil(t, res.TopEmotion)
	// tie between feliz and ansioso goes to the newest record
	assert.Equal(t, internal.Ansioso, res.TopEmotion.ID)
	// feliz+lazer clamps at 100, then ansioso+trabalho drains 26
	assert.Equal(t, 74, res.EnergyLevel)
}

func TestInsightsCommandRequiresFile(t *testing.T) {
	_, err := run(t, "insights")
	assert.Error(t, err)

	_, err = run(t, "insights", "--file", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = run(t, "mentor", "--file", writeBundle(t), "--tz", "Nowhere/City")
	assert.Error(t, err)
}

func TestSnapshotSortsAndDefaults(t *testing.T) {
	c := &cli{file: writeBundle(t), now: func() time.Time { return time.Unix(0, 0) }}
	b, err := c.readBundle()
	require.NoError(t, err)

	snap := snapshot(b, catalog.Default())
	assert.Equal(t, "new", snap.Records[0].ID)
	assert.Len(t, snap.Activities, 8)
	assert.Equal(t, "old", b.Records[0].ID)
}
