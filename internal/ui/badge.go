package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/carepoint/hospital-desk/internal/model"
)

// BadgeStyle selects the colour of a badge
type BadgeStyle string

const (
	BadgeEmergency BadgeStyle = "emergency"
	BadgeHigh      BadgeStyle = "high"
	BadgeMedium    BadgeStyle = "medium"
	BadgeLow       BadgeStyle = "low"
	BadgeUnknown   BadgeStyle = "unknown"

	BadgeInfo    BadgeStyle = "info"
	BadgeSuccess BadgeStyle = "success"
	BadgeMuted   BadgeStyle = "muted"
)

// UrgencyStyle maps an urgency level to its badge style. Levels outside the
// documented four get BadgeUnknown.
func UrgencyStyle(level model.UrgencyLevel) BadgeStyle {
	switch level {
	case model.UrgencyEmergency:
		return BadgeEmergency
	case model.UrgencyHigh:
		return BadgeHigh
	case model.UrgencyMedium:
		return BadgeMedium
	case model.UrgencyLow:
		return BadgeLow
	default:
		return BadgeUnknown
	}
}

// StatusStyle maps an appointment status to its badge style
func StatusStyle(status model.AppointmentStatus) BadgeStyle {
	switch status {
	case model.AppointmentStatusScheduled:
		return BadgeInfo
	case model.AppointmentStatusRescheduled:
		return BadgeMedium
	case model.AppointmentStatusCompleted:
		return BadgeSuccess
	case model.AppointmentStatusCancelled:
		return BadgeMuted
	default:
		return BadgeUnknown
	}
}

// Badge is a small coloured pill with a short caption
type Badge struct {
	widget.BaseWidget

	style BadgeStyle
	text  string

	background *canvas.Rectangle
	caption    *canvas.Text
}

// NewBadge creates a badge with the given caption and style
func NewBadge(text string, style BadgeStyle) *Badge {
	b := &Badge{
		background: canvas.NewRectangle(BadgeColor(style)),
		caption:    canvas.NewText(text, colorBadgeText),
	}
	b.background.CornerRadius = BadgeCornerRadius
	b.background.SetMinSize(fyne.NewSize(BadgeMinWidth, 0))
	b.caption.TextStyle = fyne.TextStyle{Bold: true}
	b.caption.Alignment = fyne.TextAlignCenter
	b.ExtendBaseWidget(b)
	b.Set(text, style)
	return b
}

// NewUrgencyBadge creates a badge for an analysis urgency level
func NewUrgencyBadge(level model.UrgencyLevel) *Badge {
	b := NewBadge("", BadgeUnknown)
	b.SetUrgency(level)
	return b
}

// NewStatusBadge creates a badge for an appointment status
func NewStatusBadge(status model.AppointmentStatus) *Badge {
	b := NewBadge("", BadgeUnknown)
	b.SetStatus(status)
	return b
}

// Set replaces caption and style
func (b *Badge) Set(text string, style BadgeStyle) {
	b.text = text
	b.style = style
	b.caption.Text = text
	b.background.FillColor = BadgeColor(style)
	b.Refresh()
}

// SetUrgency shows level in its urgency style
func (b *Badge) SetUrgency(level model.UrgencyLevel) {
	text := strings.TrimSpace(level.String())
	if text == "" {
		text = "Unknown"
	}
	b.Set(strings.ToUpper(text), UrgencyStyle(level))
}

// SetStatus shows status in its status style
func (b *Badge) SetStatus(status model.AppointmentStatus) {
	text := status.String()
	if text == "" {
		text = DashPlaceholder
	}
	b.Set(strings.ToUpper(text), StatusStyle(status))
}

// Style returns the current style
func (b *Badge) Style() BadgeStyle {
	return b.style
}

// Text returns the current caption
func (b *Badge) Text() string {
	return b.text
}

// Color returns the current background colour
func (b *Badge) Color() color.Color {
	return b.background.FillColor
}

// CreateRenderer creates the widget renderer
func (b *Badge) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(b.background, container.NewPadded(b.caption)))
}
