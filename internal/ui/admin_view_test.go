package ui

import (
	"errors"
	"reflect"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/carepoint/hospital-desk/internal/model"
)

func TestSplitList(t *testing.T) {
	got := splitList(" Cardiology, ,Internal Medicine ,")
	want := []string{"Cardiology", "Internal Medicine"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitList() = %v, want %v", got, want)
	}
	if splitList("  ") != nil {
		t.Error("Blank input should yield no items")
	}
}

func TestAdminProfileValidation(t *testing.T) {
	test.NewApp()
	backend := newFakeBackend()
	v := NewAdminView(backend, newTestLocalization(), inline)

	v.CreateDoctor()
	if backend.count("CreateDoctor") != 0 {
		t.Fatal("Empty profile must not be submitted")
	}
	if got := v.createStatus.text(); got != v.localization.GetText(KeyFieldsRequired) {
		t.Errorf("Expected required-fields prompt, got %q", got)
	}

	test.Type(v.userIDEntry, "u-42")
	test.Type(v.specialtiesEntry, "Neurology")
	test.Type(v.experienceEntry, "ten")
	v.CreateDoctor()
	if backend.count("CreateDoctor") != 0 {
		t.Fatal("Profile with a bad number must not be submitted")
	}
	if _, err := v.Profile(); !errors.Is(err, ErrInvalidNumber) {
		t.Errorf("Expected ErrInvalidNumber, got %v", err)
	}

	v.experienceEntry.SetText("10")
	test.Type(v.feeEntry, "180.5")
	test.Type(v.daysEntry, "Monday, Friday")
	profile, err := v.Profile()
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if profile.ExperienceYears != 10 || profile.ConsultationFee != 180.5 || len(profile.AvailableDays) != 2 {
		t.Errorf("Unexpected profile %+v", profile)
	}

	v.CreateDoctor()
	if backend.count("CreateDoctor") != 1 {
		t.Fatalf("Expected one CreateDoctor call, got %d", backend.count("CreateDoctor"))
	}
	if v.userIDEntry.Text != "" {
		t.Error("Form should be cleared after success")
	}
}

func TestSampleDataReportsBackendMessage(t *testing.T) {
	env := newStubEnv(t)
	env.login(t, "admin@hospital.com", "admin123")
	v := NewAdminView(env.client, newTestLocalization(), inline)

	v.CreateSampleData()
	if got := v.sampleStatus.text(); got != "Sample data created successfully" {
		t.Errorf("Expected success message, got %q", got)
	}

	// Seeding again is harmless
	v.CreateSampleData()
	if got := v.sampleStatus.text(); got != "Sample data created successfully" {
		t.Errorf("Expected success on repeat, got %q", got)
	}
	if n := len(env.server.Store().Doctors()); n != 3 {
		t.Errorf("Expected 3 doctors after reseeding, got %d", n)
	}
}

func TestCreateDoctorRejectedForNonAdmins(t *testing.T) {
	env := newStubEnv(t)
	env.login(t, "dr.jones@hospital.com", "doctor123")
	v := NewAdminView(env.client, newTestLocalization(), inline)

	test.Type(v.userIDEntry, "someone")
	test.Type(v.specialtiesEntry, "Neurology")
	v.CreateDoctor()
	if got := v.createStatus.text(); got != "Admin access required" {
		t.Errorf("Expected backend rejection, got %q", got)
	}
}

func TestDoctorsViewBookButtons(t *testing.T) {
	test.NewApp()
	backend := newFakeBackend()
	backend.doctors = []model.Doctor{
		{ID: "d1", Name: "Dr. John Smith", IsAvailable: true},
		{ID: "d2", Name: "Dr. Away", IsAvailable: false},
	}
	patient := &model.User{ID: "p1", UserType: model.UserTypePatient}
	v := NewDoctorsView(backend, fixedUser{user: patient}, newTestLocalization(), inline)

	var booked []string
	v.SetBookCallback(func(d model.Doctor, symptoms string) { booked = append(booked, d.ID) })
	v.Load()

	if len(v.Doctors()) != 2 {
		t.Fatalf("Expected 2 doctors, got %d", len(v.Doctors()))
	}
	buttons := buttonsIn(v.grid)
	if len(buttons) != 1 {
		t.Fatalf("Expected a Book button only for the available doctor, got %d", len(buttons))
	}
	test.Tap(buttons[0])
	if !reflect.DeepEqual(booked, []string{"d1"}) {
		t.Errorf("Expected booking for d1, got %v", booked)
	}

	admin := &model.User{ID: "a1", UserType: model.UserTypeAdmin}
	v2 := NewDoctorsView(backend, fixedUser{user: admin}, newTestLocalization(), inline)
	v2.Load()
	if n := len(buttonsIn(v2.grid)); n != 0 {
		t.Errorf("Admins should not see Book buttons, got %d", n)
	}
}
