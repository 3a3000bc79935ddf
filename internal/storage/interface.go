package storage

import (
	"context"
	"errors"

	"github.com/yourname/moodjournal/internal"
)

var ErrNotFound = errors.New("storage: not found")

// RecordRepository is the Record Store. ListRecords returns newest first.
type RecordRepository interface {
	AppendRecord(ctx context.Context, rec *internal.EmotionRecord) error
	ListRecords(ctx context.Context, userID string) ([]internal.EmotionRecord, error)
	DeleteRecord(ctx context.Context, userID, id string) error
	ReplaceRecords(ctx context.Context, userID string, records []internal.EmotionRecord) error
}

// ActivityRepository stores a user's activity catalog as a whole list.
// ListActivities returns ErrNotFound until the user saves a catalog.
type ActivityRepository interface {
	ListActivities(ctx context.Context, userID string) ([]internal.Activity, error)
	SaveActivities(ctx context.Context, userID string, activities []internal.Activity) error
}

type ProfileRepository interface {
	GetProfile(ctx context.Context, userID string) (*internal.UserProfile, error)
	SaveProfile(ctx context.Context, userID string, profile *internal.UserProfile) error
}

type Repositories interface {
	RecordRepository
	ActivityRepository
	ProfileRepository
}

// Store is a backend that provides every repository.
type Store interface {
	Repositories
	Close() error
}
