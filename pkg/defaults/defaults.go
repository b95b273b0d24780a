// Package defaults holds the starter distillery list a new user can add to
// their account in one go.
package defaults

import (
	"context"
	_ "embed"
	"encoding/json"
	"strings"

	"go.openly.dev/pointy"

	"droscher.com/MyWhiskies/pkg/model"
)

//go:embed distilleries.json
var distilleriesJSON []byte

type distillery struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Region1     string `json:"region_1"`
	Region2     string `json:"region_2"`
	URL         string `json:"url"`
}

type DistilleryStore interface {
	GetDistilleriesForUser(ctx context.Context, userID uint) ([]*model.Distillery, error)
	AddDistilleries(ctx context.Context, distilleries []model.Distillery) error
}

// Distilleries returns the starter list owned by userID.
func Distilleries(userID uint) ([]model.Distillery, error) {
	var entries []distillery
	if err := json.Unmarshal(distilleriesJSON, &entries); err != nil {
		return nil, err
	}

	result := make([]model.Distillery, 0, len(entries))

	for _, entry := range entries {
		item := model.Distillery{
			UserID:      userID,
			Name:        entry.Name,
			Description: entry.Description,
			Region1:     entry.Region1,
			Region2:     entry.Region2,
		}
		if entry.URL != "" {
			item.URL = pointy.String(entry.URL)
		}

		item.Normalize()
		result = append(result, item)
	}

	return result, nil
}

// Seed adds the starter distilleries the user does not already have, matching
// names case-insensitively, and returns how many were added.
func Seed(ctx context.Context, store DistilleryStore, user *model.User) (int, error) {
	existing, err := store.GetDistilleriesForUser(ctx, user.ID)
	if err != nil {
		return 0, err
	}

	names := make(map[string]struct{}, len(existing))
	for _, distillery := range existing {
		names[strings.ToLower(distillery.Name)] = struct{}{}
	}

	starters, err := Distilleries(user.ID)
	if err != nil {
		return 0, err
	}

	var missing []model.Distillery

	for _, starter := range starters {
		if _, found := names[strings.ToLower(starter.Name)]; !found {
			missing = append(missing, starter)
		}
	}

	if len(missing) == 0 {
		return 0, nil
	}

	if err := store.AddDistilleries(ctx, missing); err != nil {
		return 0, err
	}

	return len(missing), nil
}
