package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/yourname/moodjournal/internal"
	"github.com/yourname/moodjournal/internal/catalog"
	"github.com/yourname/moodjournal/internal/storage"
)

// Bundle is the backup format. Keys match the browser app's storage keys so
// its exports load unchanged; any other key in the document is ignored.
// A nil slice means the key was absent from the document.
type Bundle struct {
	Records    []internal.EmotionRecord `json:"emotitime_records"`
	Activities []internal.Activity      `json:"emotitime_activities,omitempty"`
	Profile    *internal.UserProfile    `json:"emotitime_user_profile,omitempty"`
}

type ImportSummary struct {
	Records    int  `json:"records"`
	Activities int  `json:"activities"`
	Profile    bool `json:"profile"`

	// UnknownEmotions counts records kept despite an emotion id outside
	// the vocabulary.
	UnknownEmotions int `json:"unknownEmotions,omitempty"`
}

func ParseBundle(r io.Reader) (*Bundle, error) {
	var b Bundle
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("service: invalid bundle: %w", err)
	}
	return &b, nil
}

func Export(ctx context.Context, repos storage.Repositories, user *internal.User) (*Bundle, error) {
	records, err := repos.ListRecords(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].UserID = ""
	}

	b := &Bundle{Records: records}
	b.Activities, err = repos.ListActivities(ctx, user.ID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	b.Profile, err = GetProfile(ctx, repos, user)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Import overwrites only what the bundle carries: records, catalog and
// profile each stay untouched when their key is absent. Records without an
// id or date get one.
func Import(ctx context.Context, repos storage.Repositories, cat *catalog.Catalog, user *internal.User, b *Bundle) (*ImportSummary, error) {
	sum := &ImportSummary{}
	if b.Records != nil {
		if err := importRecords(ctx, repos, cat, user, b.Records, sum); err != nil {
			return nil, err
		}
	}
	if b.Activities != nil {
		if err := repos.SaveActivities(ctx, user.ID, b.Activities); err != nil {
			return nil, err
		}
		sum.Activities = len(b.Activities)
	}
	if b.Profile != nil && b.Profile.Name != "" {
		if err := repos.SaveProfile(ctx, user.ID, b.Profile); err != nil {
			return nil, err
		}
		sum.Profile = true
	}
	return sum, nil
}

func importRecords(ctx context.Context, repos storage.RecordRepository, cat *catalog.Catalog, user *internal.User, in []internal.EmotionRecord, sum *ImportSummary) error {
	records := make([]internal.EmotionRecord, 0, len(in))
	for _, r := range in {
		if !cat.IsEmotion(r.EmotionID) {
			sum.UnknownEmotions++
		}
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		if r.Date == "" {
			r.Date = r.Time().UTC().Format("2006-01-02")
		}
		r.UserID = user.ID
		records = append(records, r)
	}
	if err := repos.ReplaceRecords(ctx, user.ID, records); err != nil {
		return err
	}
	sum.Records = len(records)
	return nil
}
