package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/yourname/moodjournal/internal"
	"github.com/yourname/moodjournal/internal/catalog"
	"github.com/yourname/moodjournal/internal/storage"
)

// ErrLastActivity guards against emptying the catalog.
var ErrLastActivity = errors.New("service: cannot delete the last activity")

type ActivityRequest struct {
	Label    string `json:"label" validate:"required,max=40"`
	IconName string `json:"iconName" validate:"omitempty,max=40"`
	Color    string `json:"color" validate:"omitempty,max=40"`
}

func ValidateActivityRequest(req *ActivityRequest) error {
	req.Label = strings.TrimSpace(req.Label)
	return validate.Struct(req)
}

// ListActivities returns the user's catalog, or the defaults when the user
// never customised it.
func ListActivities(ctx context.Context, repo storage.ActivityRepository, cat *catalog.Catalog, user *internal.User) ([]internal.Activity, error) {
	acts, err := repo.ListActivities(ctx, user.ID)
	if errors.Is(err, storage.ErrNotFound) {
		return cat.DefaultActivityList(), nil
	}
	if err != nil {
		return nil, err
	}
	return acts, nil
}

func AddActivity(ctx context.Context, repo storage.ActivityRepository, cat *catalog.Catalog, user *internal.User, req *ActivityRequest) (*internal.Activity, error) {
	acts, err := ListActivities(ctx, repo, cat, user)
	if err != nil {
		return nil, err
	}
	a := internal.Activity{
		ID:       uuid.NewString(),
		Label:    req.Label,
		IconName: req.IconName,
		Color:    req.Color,
	}
	if a.IconName == "" {
		a.IconName = "Star"
	}
	if a.Color == "" {
		a.Color = "text-gray-400"
	}
	if err := repo.SaveActivities(ctx, user.ID, append(acts, a)); err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteActivity removes an activity from the catalog. Records that point at
// it are left alone.
func DeleteActivity(ctx context.Context, repo storage.ActivityRepository, cat *catalog.Catalog, user *internal.User, id string) error {
	acts, err := ListActivities(ctx, repo, cat, user)
	if err != nil {
		return err
	}
	kept := make([]internal.Activity, 0, len(acts))
	for _, a := range acts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(acts) {
		return storage.ErrNotFound
	}
	if len(kept) == 0 {
		return ErrLastActivity
	}
	return repo.SaveActivities(ctx, user.ID, kept)
}

func ResetActivities(ctx context.Context, repo storage.ActivityRepository, cat *catalog.Catalog, user *internal.User) ([]internal.Activity, error) {
	acts := cat.DefaultActivityList()
	if err := repo.SaveActivities(ctx, user.ID, acts); err != nil {
		return nil, err
	}
	return acts, nil
}
