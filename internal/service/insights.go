package service

import (
	"context"
	"time"

	"github.com/yourname/moodjournal/internal"
	"github.com/yourname/moodjournal/internal/catalog"
	"github.com/yourname/moodjournal/internal/insight"
	"github.com/yourname/moodjournal/internal/mentor"
	"github.com/yourname/moodjournal/internal/reflection"
	"github.com/yourname/moodjournal/internal/storage"
	"golang.org/x/sync/errgroup"
)

// Snapshot is the read-only view the engines work on. Records are newest-first.
type Snapshot struct {
	Records    []internal.EmotionRecord
	Activities []internal.Activity
	Profile    *internal.UserProfile
}

// LoadSnapshot reads the three repositories concurrently.
func LoadSnapshot(ctx context.Context, repos storage.Repositories, cat *catalog.Catalog, user *internal.User) (*Snapshot, error) {
	var snap Snapshot
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := repos.ListRecords(ctx, user.ID)
		snap.Records = records
		return err
	})
	g.Go(func() error {
		activities, err := ListActivities(ctx, repos, cat, user)
		snap.Activities = activities
		return err
	})
	g.Go(func() error {
		profile, err := GetProfile(ctx, repos, user)
		snap.Profile = profile
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

func BuildInsights(ctx context.Context, repos storage.Repositories, cat *catalog.Catalog, engine *insight.Engine, user *internal.User, now time.Time) (internal.Insights, error) {
	snap, err := LoadSnapshot(ctx, repos, cat, user)
	if err != nil {
		return internal.Insights{}, err
	}
	return engine.Compute(snap.Records, snap.Profile, snap.Activities, now), nil
}

func BuildMentorNote(ctx context.Context, repos storage.Repositories, engine *mentor.Engine, user *internal.User, now time.Time) (internal.MentorNote, error) {
	records, err := repos.ListRecords(ctx, user.ID)
	if err != nil {
		return internal.MentorNote{}, err
	}
	profile, err := GetProfile(ctx, repos, user)
	if err != nil {
		return internal.MentorNote{}, err
	}
	return engine.GenerateNote(records, profile, now), nil
}

// GenerateReflection only fails when the snapshot cannot be read; model
// failures come back as readable text.
func GenerateReflection(ctx context.Context, repos storage.Repositories, cat *catalog.Catalog, r *reflection.Reflector, user *internal.User) (string, error) {
	snap, err := LoadSnapshot(ctx, repos, cat, user)
	if err != nil {
		return "", err
	}
	return r.Reflect(ctx, snap.Records, snap.Profile, snap.Activities), nil
}
