package service

import (
	"context"
	"testing"

	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/newgenpools/site-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsGetCreatesDefaultsLazily(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo)

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, settings)

	assert.Equal(t, entity.SettingsSingletonKey, settings.SingletonKey)
	assert.True(t, entity.DefaultSalesTaxRate.Equal(settings.SalesTaxRate))
	assert.Equal(t, enum.ThemePresetDefault, settings.ThemePreset)
	assert.NotNil(t, repo.settings, "row persisted on first access")

	again, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID, "second read returns the same row")
}

func TestSettingsGetRetriesAfterCreateRace(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo)

	// Simulate a concurrent boot winning the insert: our read misses, our
	// create fails on the unique key, and the row exists on re-read.
	existing := entity.DefaultSettings()
	existing.SiteName = "Existing Site"
	repo.settings = existing
	repo.missOnFirstGet = true
	repo.createErr = assert.AnError

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Existing Site", settings.SiteName)
}

func TestSettingsUpdatePresetOverwritesColors(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())

	settings, err := svc.Update(context.Background(), &UpdateSettingsInput{
		ThemePreset:  "ocean",
		PrimaryColor: "#ff0000", // ignored: the preset wins
	})
	require.NoError(t, err)

	assert.Equal(t, enum.ThemePresetOcean, settings.ThemePreset)
	assert.Equal(t, "#0066cc", settings.PrimaryColor)
	assert.Equal(t, "#4da6ff", settings.SecondaryColor)
	assert.Equal(t, "#003366", settings.NavbarColor)
	assert.Equal(t, "#004080", settings.FooterColor)
}

func TestSettingsUpdateCustomKeepsSubmittedColors(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())

	settings, err := svc.Update(context.Background(), &UpdateSettingsInput{
		ThemePreset:    "custom",
		PrimaryColor:   "#111111",
		SecondaryColor: "#222222",
	})
	require.NoError(t, err)

	assert.Equal(t, enum.ThemePresetCustom, settings.ThemePreset)
	assert.Equal(t, "#111111", settings.PrimaryColor)
	assert.Equal(t, "#222222", settings.SecondaryColor)
	// Untouched colors keep their stored values.
	assert.Equal(t, "#212529", settings.NavbarColor)
}

func TestSettingsUpdateColorsWithoutPresetBecomeCustom(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())

	settings, err := svc.Update(context.Background(), &UpdateSettingsInput{
		PrimaryColor: "#111111",
	})
	require.NoError(t, err)

	assert.Equal(t, enum.ThemePresetCustom, settings.ThemePreset)
	assert.Equal(t, "#111111", settings.PrimaryColor)
	// Colors not in the patch keep their stored values.
	assert.Equal(t, "#6c757d", settings.SecondaryColor)
	assert.Equal(t, "#212529", settings.NavbarColor)
}

func TestSettingsUpdateWithoutThemeFieldsKeepsPreset(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())

	settings, err := svc.Update(context.Background(), &UpdateSettingsInput{
		SiteName: "New Gen Pools",
	})
	require.NoError(t, err)

	assert.Equal(t, enum.ThemePresetDefault, settings.ThemePreset)
	assert.Equal(t, "#0d6efd", settings.PrimaryColor)
}

func TestSettingsUpdateUnknownPresetBecomesCustom(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())

	settings, err := svc.Update(context.Background(), &UpdateSettingsInput{
		ThemePreset: "sunset",
	})
	require.NoError(t, err)
	assert.Equal(t, enum.ThemePresetCustom, settings.ThemePreset)
}

func TestSettingsUpdatePatchSemantics(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())

	first, err := svc.Update(context.Background(), &UpdateSettingsInput{
		SiteName:     "New Generation Pools",
		ContactEmail: "info@example.com",
	})
	require.NoError(t, err)

	second, err := svc.Update(context.Background(), &UpdateSettingsInput{
		ContactPhone: "555-0100",
	})
	require.NoError(t, err)

	assert.Equal(t, first.SiteName, second.SiteName, "empty fields keep stored values")
	assert.Equal(t, "info@example.com", second.ContactEmail)
	assert.Equal(t, "555-0100", second.ContactPhone)
}

func TestSettingsUpdateNormalizesTaxRate(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())

	high := dec("2.5")
	settings, err := svc.Update(context.Background(), &UpdateSettingsInput{SalesTaxRate: &high})
	require.NoError(t, err)
	assert.True(t, dec("1").Equal(settings.SalesTaxRate), "rates above 1 clamp to 1")

	neg := dec("-0.5")
	settings, err = svc.Update(context.Background(), &UpdateSettingsInput{SalesTaxRate: &neg})
	require.NoError(t, err)
	assert.True(t, entity.DefaultSalesTaxRate.Equal(settings.SalesTaxRate), "negative rates fall back to the default")
}

func TestResolveTheme(t *testing.T) {
	settings := entity.DefaultSettings()
	settings.ThemePreset = enum.ThemePresetNavy
	settings.PrimaryColor = "#abcdef" // stale stored color

	theme := ResolveTheme(settings)
	assert.Equal(t, "#1e3a8a", theme.PrimaryColor, "named preset wins over stored colors")

	settings.ThemePreset = enum.ThemePresetCustom
	theme = ResolveTheme(settings)
	assert.Equal(t, "#abcdef", theme.PrimaryColor, "custom keeps stored colors")
}
