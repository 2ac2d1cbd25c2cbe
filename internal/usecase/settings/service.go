// Package settings provides the site branding use cases.
package settings

import (
	"context"
	"fmt"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/repository"
)

// ErrEmptyPatch is returned when an update names no fields.
var ErrEmptyPatch = fmt.Errorf("no fields to update: %w", entity.ErrInvalidInput)

type Service struct {
	Repo repository.SettingsRepository
}

func NewService(repo repository.SettingsRepository) *Service {
	return &Service{Repo: repo}
}

// Get returns the current branding. The default record is created on first read.
func (s *Service) Get(ctx context.Context) (*entity.Settings, error) {
	st, err := s.Repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return st, nil
}

// Update validates and merges patch into the branding record.
func (s *Service) Update(ctx context.Context, patch entity.SettingsPatch) (*entity.Settings, error) {
	if patch == (entity.SettingsPatch{}) {
		return nil, ErrEmptyPatch
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	st, err := s.Repo.Update(ctx, patch)
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	return st, nil
}
