package storage

import (
	"context"

	"clovable/pkg/domain"
)

// SettingsStorage defines persistence for global key-value settings.
type SettingsStorage interface {
	// SetSetting upserts a setting by key and returns the stored row.
	SetSetting(ctx context.Context, key, value string) (*domain.Setting, error)
	// SettingByKey fetches a setting. Returns nil when not found.
	SettingByKey(ctx context.Context, key string) (*domain.Setting, error)
	// Settings lists all settings ordered by key.
	Settings(ctx context.Context) ([]domain.Setting, error)
}
