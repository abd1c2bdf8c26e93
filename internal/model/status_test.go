package model

import "testing"

func TestAppointmentStatus_IsOpen(t *testing.T) {
	tests := []struct {
		status   AppointmentStatus
		expected bool
	}{
		{AppointmentStatusScheduled, true},
		{AppointmentStatusRescheduled, true},
		{AppointmentStatusCompleted, false},
		{AppointmentStatusCancelled, false},
		{AppointmentStatus("pending"), false},
	}

	for _, test := range tests {
		result := test.status.IsOpen()
		if result != test.expected {
			t.Errorf("AppointmentStatus(%s).IsOpen() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestAppointmentStatus_Valid(t *testing.T) {
	for _, status := range AppointmentStatuses() {
		if !status.Valid() {
			t.Errorf("AppointmentStatus(%s).Valid() = false, expected true", status)
		}
	}

	if AppointmentStatus("archived").Valid() {
		t.Error("Unknown status should not be valid")
	}
}

func TestUrgencyLevel_Rank(t *testing.T) {
	tests := []struct {
		level UrgencyLevel
		rank  int
		known bool
	}{
		{UrgencyLow, 1, true},
		{UrgencyMedium, 2, true},
		{UrgencyHigh, 3, true},
		{UrgencyEmergency, 4, true},
		{UrgencyLevel("emergency"), 0, false},
		{UrgencyLevel(""), 0, false},
	}

	for _, test := range tests {
		if got := test.level.Rank(); got != test.rank {
			t.Errorf("UrgencyLevel(%q).Rank() = %d, expected %d", test.level, got, test.rank)
		}
		if got := test.level.Known(); got != test.known {
			t.Errorf("UrgencyLevel(%q).Known() = %v, expected %v", test.level, got, test.known)
		}
	}
}

func TestUserType(t *testing.T) {
	admin := &User{ID: "1", UserType: UserTypeAdmin}
	patient := &User{ID: "2", UserType: UserTypePatient, Email: "p@example.com"}
	var nobody *User

	if !admin.IsAdmin() || patient.IsAdmin() || nobody.IsAdmin() {
		t.Error("IsAdmin should only be true for admin accounts")
	}
	if !patient.IsPatient() {
		t.Error("IsPatient should be true for patient accounts")
	}
	if patient.DisplayName() != "p@example.com" {
		t.Errorf("DisplayName should fall back to email, got %q", patient.DisplayName())
	}
	if UserType("nurse").Valid() {
		t.Error("Unknown user type should not be valid")
	}
	if UserTypeDoctor.Label() != "Doctor" {
		t.Errorf("Expected label 'Doctor', got %q", UserTypeDoctor.Label())
	}
}
