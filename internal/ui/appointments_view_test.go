package ui

import (
	"context"
	"testing"
	"time"

	"github.com/carepoint/hospital-desk/internal/model"
	"github.com/carepoint/hospital-desk/internal/stubapi"
)

// bookSmith registers a patient and books Dr. John Smith, returning the appointment id
func bookSmith(t *testing.T, env *stubEnv, email string) string {
	t.Helper()
	env.register(t, email, model.UserTypePatient)

	doctors, err := env.client.ListDoctors(context.Background())
	if err != nil || len(doctors) == 0 {
		t.Fatalf("ListDoctors() = %d doctors, error %v", len(doctors), err)
	}
	slot := time.Date(2031, time.March, 3, 10, 30, 0, 0, time.UTC)
	res, err := env.client.BookAppointment(context.Background(), model.BookingRequest{
		DoctorID:        doctors[0].ID,
		AppointmentDate: model.NewTimestamp(slot),
		Symptoms:        "back pain",
	})
	if err != nil {
		t.Fatalf("BookAppointment() error = %v", err)
	}
	return res.AppointmentID
}

func TestDoctorCompletesAppointment(t *testing.T) {
	env := newStubEnv(t)
	id := bookSmith(t, env, "patient@example.com")

	env.login(t, "dr.smith@hospital.com", stubapi.SampleDoctorPassword)
	v := NewAppointmentsView(env.client, env.session, newTestLocalization(), inline)
	v.Load()

	rows := v.Rows()
	if len(rows) != 1 {
		t.Fatalf("Expected one appointment for the doctor, got %d", len(rows))
	}
	if !rows[0].CanComplete() {
		t.Fatal("Doctor should be offered Mark completed")
	}

	rows[0].Complete()

	list := v.Appointments()
	if len(list) != 1 || list[0].ID != id {
		t.Fatalf("Expected the list to be fetched again, got %+v", list)
	}
	if list[0].Status != model.AppointmentStatusCompleted {
		t.Errorf("Expected completed status from the backend, got %s", list[0].Status)
	}
	if got := v.Rows()[0].StatusBadge().Style(); got != BadgeSuccess {
		t.Errorf("Expected success badge, got %s", got)
	}
	if v.Rows()[0].CanComplete() || v.Rows()[0].CanCancel() {
		t.Error("Closed appointments should offer no actions")
	}
}

func TestPatientActions(t *testing.T) {
	env := newStubEnv(t)
	bookSmith(t, env, "patient@example.com")

	v := NewAppointmentsView(env.client, env.session, newTestLocalization(), inline)
	v.Load()

	rows := v.Rows()
	if len(rows) != 1 {
		t.Fatalf("Expected one appointment for the patient, got %d", len(rows))
	}
	if rows[0].CanComplete() {
		t.Error("Patients should not be offered Mark completed")
	}
	if !rows[0].CanCancel() {
		t.Fatal("Patients should be able to cancel their own appointment")
	}

	rows[0].Cancel()
	if got := v.Appointments()[0].Status; got != model.AppointmentStatusCancelled {
		t.Errorf("Expected cancelled status, got %s", got)
	}
}

func TestAppointmentsLoadFailure(t *testing.T) {
	env := newStubEnv(t)

	// Nobody is signed in, so the backend answers 401
	v := NewAppointmentsView(env.client, env.session, newTestLocalization(), inline)
	v.Load()

	if got := v.status.text(); got != "Not authenticated" {
		t.Errorf("Expected backend detail, got %q", got)
	}
	if v.refreshBtn.Disabled() {
		t.Error("Refresh should be enabled after a failed load")
	}
}

func TestEmptyAppointmentList(t *testing.T) {
	env := newStubEnv(t)
	env.register(t, "new@example.com", model.UserTypePatient)

	v := NewAppointmentsView(env.client, env.session, newTestLocalization(), inline)
	v.Load()

	if len(v.Rows()) != 0 {
		t.Errorf("Expected no rows, got %d", len(v.Rows()))
	}
	if got := v.status.text(); got != v.localization.GetText(KeyNoAppointments) {
		t.Errorf("Expected empty-list hint, got %q", got)
	}
}
