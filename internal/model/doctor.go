package model

import (
	"fmt"
	"strings"
)

// Doctor is a read-only directory entry
type Doctor struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Specializations []string            `json:"specializations"`
	ExperienceYears int                 `json:"experience_years"`
	Qualifications  string              `json:"qualifications"`
	ConsultationFee float64             `json:"consultation_fee"`
	AvailableDays   []string            `json:"available_days"`
	AvailableHours  map[string][]string `json:"available_hours,omitempty"`
	IsAvailable     bool                `json:"is_available"`
}

// GetSpecializations joins specializations for display
func (d *Doctor) GetSpecializations() string {
	if len(d.Specializations) == 0 {
		return "—"
	}
	return strings.Join(d.Specializations, ", ")
}

// GetAvailableDays joins available days for display
func (d *Doctor) GetAvailableDays() string {
	if len(d.AvailableDays) == 0 {
		return "—"
	}
	return strings.Join(d.AvailableDays, ", ")
}

// GetFee formats the consultation fee
func (d *Doctor) GetFee() string {
	return fmt.Sprintf("$%.2f", d.ConsultationFee)
}

// GetExperience formats years of experience
func (d *Doctor) GetExperience() string {
	if d.ExperienceYears == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", d.ExperienceYears)
}

// HasSpecialization reports whether the doctor lists specialty (case-insensitive)
func (d *Doctor) HasSpecialization(specialty string) bool {
	for _, s := range d.Specializations {
		if strings.EqualFold(s, specialty) {
			return true
		}
	}
	return false
}
