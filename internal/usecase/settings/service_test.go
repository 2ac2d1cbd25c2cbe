package settings_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/infra/adapter/persistence/memory"
	settingsUC "cahaya-digital/internal/usecase/settings"
)

func ptr[T any](v T) *T { return &v }

func TestService_GetDefaults(t *testing.T) {
	svc := settingsUC.NewService(memory.New().Settings())

	st, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSiteName, st.SiteName)
	assert.Equal(t, entity.DefaultPrimaryColor, st.PrimaryColor)
}

func TestService_UpdateMerges(t *testing.T) {
	ctx := context.Background()
	svc := settingsUC.NewService(memory.New().Settings())

	st, err := svc.Update(ctx, entity.SettingsPatch{SiteName: ptr("Kabar Nusantara"), AccentColor: ptr("#123abc")})
	require.NoError(t, err)
	assert.Equal(t, "Kabar Nusantara", st.SiteName)
	assert.Equal(t, "#123abc", st.AccentColor)
	assert.Equal(t, entity.DefaultLogoText, st.LogoText)

	again, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, st, again)
}

func TestService_UpdateRejects(t *testing.T) {
	ctx := context.Background()
	svc := settingsUC.NewService(memory.New().Settings())

	_, err := svc.Update(ctx, entity.SettingsPatch{})
	assert.ErrorIs(t, err, settingsUC.ErrEmptyPatch)

	_, err = svc.Update(ctx, entity.SettingsPatch{PrimaryColor: ptr("red")})
	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "primaryColor", verr.Field)

	st, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultPrimaryColor, st.PrimaryColor)
}
