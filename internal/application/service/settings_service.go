package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/newgenpools/site-api/internal/domain/enum"
	"github.com/newgenpools/site-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ThemePalette is a fixed four-color palette for a named preset.
type ThemePalette struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	NavbarColor    string `json:"navbar_color"`
	FooterColor    string `json:"footer_color"`
}

// themePresets maps each named preset to its palette. The custom preset
// has no entry: it keeps whatever colors the user chose.
var themePresets = map[enum.ThemePreset]ThemePalette{
	enum.ThemePresetDefault: {
		PrimaryColor:   "#0d6efd",
		SecondaryColor: "#6c757d",
		NavbarColor:    "#212529",
		FooterColor:    "#2c3e50",
	},
	enum.ThemePresetOcean: {
		PrimaryColor:   "#0066cc",
		SecondaryColor: "#4da6ff",
		NavbarColor:    "#003366",
		FooterColor:    "#004080",
	},
	enum.ThemePresetSky: {
		PrimaryColor:   "#3399ff",
		SecondaryColor: "#66b3ff",
		NavbarColor:    "#1a5490",
		FooterColor:    "#2d6ba3",
	},
	enum.ThemePresetNavy: {
		PrimaryColor:   "#1e3a8a",
		SecondaryColor: "#3b82f6",
		NavbarColor:    "#0f172a",
		FooterColor:    "#1e293b",
	},
	enum.ThemePresetTeal: {
		PrimaryColor:   "#0d9488",
		SecondaryColor: "#14b8a6",
		NavbarColor:    "#0f172a",
		FooterColor:    "#134e4a",
	},
}

// PresetPalette looks up the palette for a named preset.
func PresetPalette(preset enum.ThemePreset) (ThemePalette, bool) {
	p, ok := themePresets[preset]
	return p, ok
}

// ResolvedTheme is the effective theme for rendering: the stored colors
// with any named preset's palette overlaid.
type ResolvedTheme struct {
	Preset enum.ThemePreset `json:"preset"`
	ThemePalette
	FontFamily string `json:"font_family"`
}

// ResolveTheme applies the preset table to the stored settings without
// mutating the record. A named preset wins over stored colors; custom (or
// an unknown preset) keeps them.
func ResolveTheme(settings *entity.Settings) ResolvedTheme {
	theme := ResolvedTheme{
		Preset: settings.ThemePreset,
		ThemePalette: ThemePalette{
			PrimaryColor:   settings.PrimaryColor,
			SecondaryColor: settings.SecondaryColor,
			NavbarColor:    settings.NavbarColor,
			FooterColor:    settings.FooterColor,
		},
		FontFamily: settings.FontFamily,
	}
	if palette, ok := themePresets[settings.ThemePreset]; ok {
		theme.ThemePalette = palette
	}
	return theme
}

// SettingsService exposes the site-wide settings singleton.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Get returns the settings row, creating the default document on first
// read. Two racing first reads may both attempt the create; the unique
// index on the singleton key rejects the loser, which then re-reads the
// winner's row.
func (s *SettingsService) Get(ctx context.Context) (*entity.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	settings = entity.DefaultSettings()
	if err := s.settingsRepo.Create(ctx, settings); err != nil {
		if existing, getErr := s.settingsRepo.Get(ctx); getErr == nil && existing != nil {
			return existing, nil
		}
		return nil, err
	}
	return settings, nil
}

// UpdateSettingsInput is a partial patch: empty strings and nil fields
// leave the stored value untouched.
type UpdateSettingsInput struct {
	SiteName                string
	DefaultMetaTitle        string
	DefaultMetaDescription  string
	DefaultOpenGraphImageID *uuid.UUID
	ContactEmail            string
	ContactPhone            string
	SalesTaxRate            *decimal.Decimal
	CompanyName             string
	CompanyStreet           string
	CompanyCity             string
	CompanyState            string
	CompanyZip              string
	CompanyCountry          string
	Facebook                string
	Instagram               string
	Twitter                 string
	LinkedIn                string
	ThemePreset             string
	PrimaryColor            string
	SecondaryColor          string
	NavbarColor             string
	FooterColor             string
	FontFamily              string
}

func patch(dst *string, src string) {
	if src = strings.TrimSpace(src); src != "" {
		*dst = src
	}
}

// Update merges the patch into the settings row. Selecting a named preset
// overwrites the four color fields from the preset table; custom keeps
// the submitted (or stored) colors. Submitting colors with no preset at
// all switches the row to the custom preset.
func (s *SettingsService) Update(ctx context.Context, input *UpdateSettingsInput) (*entity.Settings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	patch(&settings.SiteName, input.SiteName)
	patch(&settings.DefaultMetaTitle, input.DefaultMetaTitle)
	patch(&settings.DefaultMetaDescription, input.DefaultMetaDescription)
	patch(&settings.ContactEmail, input.ContactEmail)
	patch(&settings.ContactPhone, input.ContactPhone)
	patch(&settings.CompanyName, input.CompanyName)
	patch(&settings.CompanyStreet, input.CompanyStreet)
	patch(&settings.CompanyCity, input.CompanyCity)
	patch(&settings.CompanyState, input.CompanyState)
	patch(&settings.CompanyZip, input.CompanyZip)
	patch(&settings.CompanyCountry, input.CompanyCountry)
	patch(&settings.Facebook, input.Facebook)
	patch(&settings.Instagram, input.Instagram)
	patch(&settings.Twitter, input.Twitter)
	patch(&settings.LinkedIn, input.LinkedIn)
	patch(&settings.FontFamily, input.FontFamily)

	if input.DefaultOpenGraphImageID != nil {
		settings.DefaultOpenGraphImageID = input.DefaultOpenGraphImageID
	}

	if input.SalesTaxRate != nil {
		settings.SalesTaxRate = NormalizeTaxRate(input.SalesTaxRate, entity.DefaultSalesTaxRate)
	}

	colorSubmitted := strings.TrimSpace(input.PrimaryColor) != "" ||
		strings.TrimSpace(input.SecondaryColor) != "" ||
		strings.TrimSpace(input.NavbarColor) != "" ||
		strings.TrimSpace(input.FooterColor) != ""

	switch {
	case input.ThemePreset != "":
		preset := enum.ThemePreset(input.ThemePreset)
		if !preset.Valid() {
			preset = enum.ThemePresetCustom
		}
		settings.ThemePreset = preset

		if palette, ok := themePresets[preset]; ok {
			settings.PrimaryColor = palette.PrimaryColor
			settings.SecondaryColor = palette.SecondaryColor
			settings.NavbarColor = palette.NavbarColor
			settings.FooterColor = palette.FooterColor
		} else {
			patch(&settings.PrimaryColor, input.PrimaryColor)
			patch(&settings.SecondaryColor, input.SecondaryColor)
			patch(&settings.NavbarColor, input.NavbarColor)
			patch(&settings.FooterColor, input.FooterColor)
		}
	case colorSubmitted:
		// Colors sent without a preset mean the user is customizing.
		settings.ThemePreset = enum.ThemePresetCustom
		patch(&settings.PrimaryColor, input.PrimaryColor)
		patch(&settings.SecondaryColor, input.SecondaryColor)
		patch(&settings.NavbarColor, input.NavbarColor)
		patch(&settings.FooterColor, input.FooterColor)
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
