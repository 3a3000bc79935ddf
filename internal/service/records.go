package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/yourname/moodjournal/internal"
	"github.com/yourname/moodjournal/internal/storage"
)

var validate = validator.New()

type RecordRequest struct {
	EmotionID  internal.EmotionID `json:"emotionId" validate:"required,oneof=feliz bem neutro cansado ansioso triste irritado calmo entusiasmado solitario"`
	ActivityID string             `json:"activityId" validate:"required,max=64"`
	Intensity  int                `json:"intensity" validate:"required,gte=1,lte=5"`
	Note       string             `json:"note,omitempty" validate:"max=100"`
	Weather    string             `json:"weather,omitempty" validate:"omitempty,oneof=sunny cloudy rainy night"`
}

func ValidateRecordRequest(req *RecordRequest) error {
	req.Note = strings.TrimSpace(req.Note)
	return validate.Struct(req)
}

// CreateRecord stamps a new record with an id, the UTC calendar day and the
// creation instant, then appends it to the store.
func CreateRecord(ctx context.Context, repo storage.RecordRepository, user *internal.User, req *RecordRequest, now time.Time) (*internal.EmotionRecord, error) {
	rec := &internal.EmotionRecord{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		Date:       now.UTC().Format("2006-01-02"),
		EmotionID:  req.EmotionID,
		ActivityID: req.ActivityID,
		Intensity:  req.Intensity,
		Timestamp:  now.UnixMilli(),
		Note:       req.Note,
		Weather:    req.Weather,
	}
	if err := repo.AppendRecord(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func DeleteRecord(ctx context.Context, repo storage.RecordRepository, user *internal.User, id string) error {
	return repo.DeleteRecord(ctx, user.ID, id)
}
