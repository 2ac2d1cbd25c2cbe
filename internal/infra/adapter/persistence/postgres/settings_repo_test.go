package postgres_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cahaya-digital/internal/domain/entity"
	pg "cahaya-digital/internal/infra/adapter/persistence/postgres"
)

var settingsCols = []string{"id", "site_name", "logo_text", "primary_color", "secondary_color", "accent_color"}

func TestSettingsRepo_Get_CreatesDefaults(t *testing.T) {
	db, mock := newMock(t)
	d := entity.DefaultSettings()
	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (id) DO NOTHING")).
		WithArgs(1, d.SiteName, d.LogoText, d.PrimaryColor, d.SecondaryColor, d.AccentColor).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM settings WHERE id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(settingsCols).
			AddRow(int64(1), d.SiteName, d.LogoText, d.PrimaryColor, d.SecondaryColor, d.AccentColor))

	got, err := pg.NewStore(db).Settings().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "CahayaDigital25", got.SiteName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepo_Update_Upsert(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (id) DO UPDATE SET site_name = EXCLUDED.site_name, primary_color = EXCLUDED.primary_color")).
		WithArgs(1, "Cahaya News", "CD", "#1a202c", "#333333", "#f6ad55").
		WillReturnRows(sqlmock.NewRows(settingsCols).
			AddRow(int64(1), "Cahaya News", "XY", "#1a202c", "#333333", "#f6ad55"))

	got, err := pg.NewStore(db).Settings().Update(context.Background(), entity.SettingsPatch{
		SiteName:     ptr("Cahaya News"),
		PrimaryColor: ptr("#1a202c"),
	})
	require.NoError(t, err)
	// Columns outside the patch keep their stored value.
	assert.Equal(t, "XY", got.LogoText)
	assert.Equal(t, "#1a202c", got.PrimaryColor)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepo_Update_Invalid(t *testing.T) {
	db, mock := newMock(t)
	_, err := pg.NewStore(db).Settings().Update(context.Background(), entity.SettingsPatch{AccentColor: ptr("orange")})
	assert.ErrorIs(t, err, entity.ErrValidationFailed)
	require.NoError(t, mock.ExpectationsWereMet())
}
