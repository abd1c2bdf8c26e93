package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette used by the theme and by badges
var (
	colorPrimary   = color.NRGBA{R: 0, G: 105, B: 148, A: 255} // clinical teal-blue
	colorSuccess   = color.NRGBA{R: 46, G: 160, B: 67, A: 255}
	colorWarning   = color.NRGBA{R: 245, G: 166, B: 35, A: 255}
	colorError     = color.NRGBA{R: 183, G: 28, B: 28, A: 255}
	colorHigh      = color.NRGBA{R: 230, G: 81, B: 0, A: 255}
	colorLow       = color.NRGBA{R: 67, G: 160, B: 71, A: 255}
	colorInfo      = color.NRGBA{R: 30, G: 136, B: 229, A: 255}
	colorMuted     = color.NRGBA{R: 117, G: 117, B: 117, A: 255}
	colorNeutral   = color.NRGBA{R: 158, G: 158, B: 158, A: 255}
	colorBadgeText = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// BadgeColor returns the background colour for a badge style
func BadgeColor(style BadgeStyle) color.Color {
	switch style {
	case BadgeEmergency:
		return colorError
	case BadgeHigh:
		return colorHigh
	case BadgeMedium:
		return colorWarning
	case BadgeLow:
		return colorLow
	case BadgeInfo:
		return colorInfo
	case BadgeSuccess:
		return colorSuccess
	case BadgeMuted:
		return colorMuted
	default:
		return colorNeutral
	}
}

// HospitalTheme is a compact theme with the hospital palette
type HospitalTheme struct{}

// NewHospitalTheme creates the application theme
func NewHospitalTheme() fyne.Theme {
	return &HospitalTheme{}
}

// Color returns theme colors
func (t *HospitalTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return colorSuccess
	case theme.ColorNameError:
		return colorError
	case theme.ColorNameWarning:
		return colorWarning
	case theme.ColorNamePrimary:
		return colorPrimary
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 20, G: 24, B: 28, A: 255}
		}
		return color.NRGBA{R: 247, G: 250, B: 252, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 240, G: 240, B: 240, A: 255}
		}
		return color.NRGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *HospitalTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *HospitalTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes, slightly tighter than the default
func (t *HospitalTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 3
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
