package models

import (
	"context"
	"fmt"
)

type SettingsRepository struct {
	records records[Settings, *Settings]
}

func NewSettingsRepository(store Store, attempts int) *SettingsRepository {
	return &SettingsRepository{
		records: records[Settings, *Settings]{coll: store.Settings(), attempts: attempts, name: "settings"},
	}
}

func (r *SettingsRepository) CreateSettings(ctx context.Context, settings *Settings) error {
	return r.records.create(ctx, settings)
}

// GetSettings returns the first stored settings record, or nil when none
// exists yet.
func (r *SettingsRepository) GetSettings(ctx context.Context) (*Settings, error) {
	settings, err := r.records.coll.FindFirst(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

func (r *SettingsRepository) GetAllSettings(ctx context.Context) ([]Settings, error) {
	return r.records.all(ctx)
}

func (r *SettingsRepository) UpdateSettings(ctx context.Context, id int, settings *Settings) error {
	return r.records.replace(ctx, id, settings)
}

func (r *SettingsRepository) DeleteSettings(ctx context.Context, id int) error {
	return r.records.delete(ctx, id)
}
