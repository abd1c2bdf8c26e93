package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconLogout   = "⏏"
	IconRefresh  = "⟳"
	IconDoctor   = "🩺"
	IconCalendar = "📅"
	IconCheck    = "✔"
	IconLanguage = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Input layouts for the booking form
const (
	BookingDateLayout  = "2006-01-02"
	BookingTimeLayout  = "15:04"
	DefaultBookingTime = "09:00"
)

// Layout sizing
const (
	RowMinWidth  float32 = 420
	RowMinHeight float32 = 96

	BadgeMinWidth     float32 = 72
	BadgeCornerRadius float32 = 4

	SymptomEntryRows = 5
	PreviewLength    = 140

	LandingWidth  float32 = 360
	DialogWidth   float32 = 460
	DialogHeight  float32 = 380
	SettingsWidth float32 = 500
)

// Cards per row in the doctor directory
const (
	DesktopCardColumns = 2
	MobileCardColumns  = 1
)
