package model

import (
	"strings"
)

// DateTimeDisplayLayout is used when rendering appointment dates
const DateTimeDisplayLayout = "Mon, 02 Jan 2006 15:04"

// Appointment is a read-through copy of a backend appointment
type Appointment struct {
	ID              string            `json:"id"`
	PatientName     string            `json:"patient_name,omitempty"`
	DoctorName      string            `json:"doctor_name"`
	AppointmentDate Timestamp         `json:"appointment_date"`
	Symptoms        string            `json:"symptoms"`
	Notes           *string           `json:"notes,omitempty"`
	Status          AppointmentStatus `json:"status"`
}

// GetDisplayDate returns the appointment date formatted for display, or "—" if unknown
func (a *Appointment) GetDisplayDate() string {
	if a.AppointmentDate.IsZero() {
		return "—"
	}
	return a.AppointmentDate.Format(DateTimeDisplayLayout)
}

// GetNotes returns the notes text, empty when the backend sent none
func (a *Appointment) GetNotes() string {
	if a.Notes == nil {
		return ""
	}
	return strings.TrimSpace(*a.Notes)
}

// GetSymptomsPreview returns the symptoms on one line, cut to max runes
func (a *Appointment) GetSymptomsPreview(max int) string {
	s := strings.Join(strings.Fields(a.Symptoms), " ")
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
