package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/infra/db"
)

const settingsColumns = `id, site_name, logo_text, primary_color, secondary_color, accent_color`

// SettingsRepo stores the settings singleton under db.SettingsID.
type SettingsRepo struct{ db *sql.DB }

func scanSettings(row scanner) (*entity.Settings, error) {
	var s entity.Settings
	if err := row.Scan(&s.ID, &s.SiteName, &s.LogoText, &s.PrimaryColor,
		&s.SecondaryColor, &s.AccentColor); err != nil {
		return nil, err
	}
	return &s, nil
}

func (repo *SettingsRepo) Get(ctx context.Context) (*entity.Settings, error) {
	d := entity.DefaultSettings()
	if _, err := repo.db.ExecContext(ctx, `
INSERT INTO settings (`+settingsColumns+`)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO NOTHING`, db.SettingsID,
		d.SiteName, d.LogoText, d.PrimaryColor, d.SecondaryColor, d.AccentColor); err != nil {
		return nil, wrapErr("Get", err)
	}
	s, err := scanSettings(repo.db.QueryRowContext(ctx,
		`SELECT `+settingsColumns+` FROM settings WHERE id = ?`, db.SettingsID))
	if err != nil {
		return nil, wrapErr("Get", err)
	}
	return s, nil
}

func (repo *SettingsRepo) Update(ctx context.Context, patch entity.SettingsPatch) (*entity.Settings, error) {
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	var sets []string
	for _, f := range []struct {
		col   string
		value *string
	}{
		{"site_name", patch.SiteName},
		{"logo_text", patch.LogoText},
		{"primary_color", patch.PrimaryColor},
		{"secondary_color", patch.SecondaryColor},
		{"accent_color", patch.AccentColor},
	} {
		if f.value != nil {
			sets = append(sets, f.col+" = excluded."+f.col)
		}
	}
	if len(sets) == 0 {
		return repo.Get(ctx)
	}

	merged := entity.DefaultSettings()
	patch.Apply(&merged)
	query := `
INSERT INTO settings (` + settingsColumns + `)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET ` + strings.Join(sets, ", ") + `
RETURNING ` + settingsColumns
	s, err := scanSettings(repo.db.QueryRowContext(ctx, query, db.SettingsID,
		merged.SiteName, merged.LogoText, merged.PrimaryColor, merged.SecondaryColor, merged.AccentColor))
	if err != nil {
		return nil, wrapErr("Update", err)
	}
	return s, nil
}
