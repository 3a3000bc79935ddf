package service

import (
	"context"
	"errors"
	"strings"

	"github.com/yourname/moodjournal/internal"
	"github.com/yourname/moodjournal/internal/storage"
)

type ProfileRequest struct {
	Name string `json:"name" validate:"required,max=60"`
	Age  *int   `json:"age,omitempty" validate:"omitempty,gte=0,lte=130"`
}

func ValidateProfileRequest(req *ProfileRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	return validate.Struct(req)
}

// GetProfile returns nil without error when the user has not onboarded yet.
func GetProfile(ctx context.Context, repo storage.ProfileRepository, user *internal.User) (*internal.UserProfile, error) {
	p, err := repo.GetProfile(ctx, user.ID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

func SaveProfile(ctx context.Context, repo storage.ProfileRepository, user *internal.User, req *ProfileRequest) (*internal.UserProfile, error) {
	p := &internal.UserProfile{Name: req.Name, Age: req.Age}
	if err := repo.SaveProfile(ctx, user.ID, p); err != nil {
		return nil, err
	}
	return p, nil
}
