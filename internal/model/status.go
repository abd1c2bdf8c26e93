package model

// AppointmentStatus represents the lifecycle state of an appointment as reported by the backend
type AppointmentStatus string

const (
	// AppointmentStatusScheduled is the initial state of a booked appointment
	AppointmentStatusScheduled AppointmentStatus = "scheduled"

	// AppointmentStatusCompleted means the consultation took place
	AppointmentStatusCompleted AppointmentStatus = "completed"

	// AppointmentStatusCancelled means the appointment was called off
	AppointmentStatusCancelled AppointmentStatus = "cancelled"

	// AppointmentStatusRescheduled means the appointment was moved to a new date
	AppointmentStatusRescheduled AppointmentStatus = "rescheduled"
)

// String returns the string representation of AppointmentStatus
func (s AppointmentStatus) String() string {
	return string(s)
}

// Valid reports whether s is one of the statuses the backend accepts
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted,
		AppointmentStatusCancelled, AppointmentStatusRescheduled:
		return true
	}
	return false
}

// IsOpen returns true if the appointment can still be completed or cancelled
func (s AppointmentStatus) IsOpen() bool {
	return s == AppointmentStatusScheduled || s == AppointmentStatusRescheduled
}

// AppointmentStatuses lists every known status in display order
func AppointmentStatuses() []AppointmentStatus {
	return []AppointmentStatus{
		AppointmentStatusScheduled,
		AppointmentStatusRescheduled,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
	}
}

// UrgencyLevel is the backend-assigned severity of a symptom submission
type UrgencyLevel string

const (
	UrgencyLow       UrgencyLevel = "Low"
	UrgencyMedium    UrgencyLevel = "Medium"
	UrgencyHigh      UrgencyLevel = "High"
	UrgencyEmergency UrgencyLevel = "Emergency"
)

// String returns the string representation of UrgencyLevel
func (u UrgencyLevel) String() string {
	return string(u)
}

// Known reports whether u is one of the four documented levels
func (u UrgencyLevel) Known() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyEmergency:
		return true
	}
	return false
}

// Rank orders levels from 1 (Low) to 4 (Emergency); unknown levels rank 0
func (u UrgencyLevel) Rank() int {
	switch u {
	case UrgencyLow:
		return 1
	case UrgencyMedium:
		return 2
	case UrgencyHigh:
		return 3
	case UrgencyEmergency:
		return 4
	}
	return 0
}
