package memory

import (
	"context"
	"fmt"

	"cahaya-digital/internal/domain/entity"
)

type settingsRepo struct{ s *Store }

// ensure creates the default record on first use. Must be called with the write lock held.
func (r settingsRepo) ensure() *entity.Settings {
	if r.s.settings == nil {
		d := entity.DefaultSettings()
		d.ID = r.s.nextSettingsID
		r.s.nextSettingsID++
		r.s.settings = &d
	}
	return r.s.settings
}

func (r settingsRepo) Get(ctx context.Context) (*entity.Settings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *r.ensure()
	return &c, nil
}

func (r settingsRepo) Update(ctx context.Context, patch entity.SettingsPatch) (*entity.Settings, error) {
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur := r.ensure()
	patch.Apply(cur)
	c := *cur
	return &c, nil
}
