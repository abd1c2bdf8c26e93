package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/carepoint/hospital-desk/internal/model"
)

func TestUrgencyStyle(t *testing.T) {
	tests := []struct {
		level model.UrgencyLevel
		want  BadgeStyle
	}{
		{model.UrgencyEmergency, BadgeEmergency},
		{model.UrgencyHigh, BadgeHigh},
		{model.UrgencyMedium, BadgeMedium},
		{model.UrgencyLow, BadgeLow},
		{model.UrgencyLevel("Critical"), BadgeUnknown},
		{model.UrgencyLevel(""), BadgeUnknown},
	}

	for _, tt := range tests {
		if got := UrgencyStyle(tt.level); got != tt.want {
			t.Errorf("UrgencyStyle(%q) = %s, want %s", tt.level, got, tt.want)
		}
	}
}

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		status model.AppointmentStatus
		want   BadgeStyle
	}{
		{model.AppointmentStatusScheduled, BadgeInfo},
		{model.AppointmentStatusRescheduled, BadgeMedium},
		{model.AppointmentStatusCompleted, BadgeSuccess},
		{model.AppointmentStatusCancelled, BadgeMuted},
		{model.AppointmentStatus("lost"), BadgeUnknown},
	}

	for _, tt := range tests {
		if got := StatusStyle(tt.status); got != tt.want {
			t.Errorf("StatusStyle(%q) = %s, want %s", tt.status, got, tt.want)
		}
	}
}

func TestBadgeUpdates(t *testing.T) {
	test.NewApp()

	b := NewUrgencyBadge(model.UrgencyEmergency)
	if b.Style() != BadgeEmergency {
		t.Errorf("Expected emergency style, got %s", b.Style())
	}
	if b.Text() != "EMERGENCY" {
		t.Errorf("Expected upper-case caption, got %q", b.Text())
	}
	if b.Color() != BadgeColor(BadgeEmergency) {
		t.Error("Badge colour should follow its style")
	}

	b.SetStatus(model.AppointmentStatusCompleted)
	if b.Style() != BadgeSuccess {
		t.Errorf("Expected success style after SetStatus, got %s", b.Style())
	}

	// Unknown levels still render, with the neutral style
	b.SetUrgency("Whatever")
	if b.Style() != BadgeUnknown {
		t.Errorf("Expected unknown style, got %s", b.Style())
	}
	if b.Text() == "" {
		t.Error("Unknown urgency should keep a caption")
	}
}
