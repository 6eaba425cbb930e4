package enum

// ThemePreset names a fixed four-color palette applied to the site theme.
// The "custom" preset leaves user-chosen colors untouched.
type ThemePreset string

const (
	ThemePresetDefault ThemePreset = "default"
	ThemePresetOcean   ThemePreset = "ocean"
	ThemePresetSky     ThemePreset = "sky"
	ThemePresetNavy    ThemePreset = "navy"
	ThemePresetTeal    ThemePreset = "teal"
	ThemePresetCustom  ThemePreset = "custom"
)

func (p ThemePreset) Valid() bool {
	switch p {
	case ThemePresetDefault, ThemePresetOcean, ThemePresetSky,
		ThemePresetNavy, ThemePresetTeal, ThemePresetCustom:
		return true
	}
	return false
}
