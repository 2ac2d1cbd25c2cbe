package postgres

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

// Get inserts the defaults when the row is missing, then reads it back.
func (repo *SettingsRepo) Get(ctx context.Context) (*entity.Settings, error) {
	const insert = `
INSERT INTO settings (` + settingsColumns + `)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO NOTHING`
	d := entity.DefaultSettings()
	if _, err := repo.db.ExecContext(ctx, insert, db.SettingsID,
		d.SiteName, d.LogoText, d.PrimaryColor, d.SecondaryColor, d.AccentColor); err != nil {
		return nil, wrapErr("Get", err)
	}

	const query = `SELECT ` + settingsColumns + ` FROM settings WHERE id = $1`
	s, err := scanSettings(repo.db.QueryRowContext(ctx, query, db.SettingsID))
	if err != nil {
		return nil, wrapErr("Get", err)
	}
	return s, nil
}

// Update is a single upsert: the defaults merged with patch are inserted when
// the row is missing, otherwise only the patched columns are overwritten.
func (repo *SettingsRepo) Update(ctx context.Context, patch entity.SettingsPatch) (*entity.Settings, error) {
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	sets := settingsAssignments(patch)
	if len(sets) == 0 {
		return repo.Get(ctx)
	}

	merged := entity.DefaultSettings()
	patch.Apply(&merged)
	query := fmt.Sprintf(`
INSERT INTO settings (%s)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET %s
RETURNING %s`, settingsColumns, strings.Join(sets, ", "), settingsColumns)

	s, err := scanSettings(repo.db.QueryRowContext(ctx, query, db.SettingsID,
		merged.SiteName, merged.LogoText, merged.PrimaryColor, merged.SecondaryColor, merged.AccentColor))
	if err != nil {
		return nil, wrapErr("Update", err)
	}
	return s, nil
}

// settingsAssignments lists "col = EXCLUDED.col" for every patched column.
func settingsAssignments(patch entity.SettingsPatch) []string {
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
			sets = append(sets, f.col+" = EXCLUDED."+f.col)
		}
	}
	return sets
}
