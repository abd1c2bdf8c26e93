package api

import (
	"context"

	"github.com/carepoint/hospital-desk/internal/model"
)

// Backend defines the operations the UI performs against the hospital backend.
type Backend interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error)

	// AnalyzeSymptoms submits free-text symptoms for server-side analysis
	AnalyzeSymptoms(ctx context.Context, req model.SymptomRequest) (*model.SymptomAnalysis, error)

	BookAppointment(ctx context.Context, req model.BookingRequest) (*model.ActionResult, error)
	ListAppointments(ctx context.Context) ([]model.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, update model.AppointmentUpdate) (*model.ActionResult, error)

	ListDoctors(ctx context.Context) ([]model.Doctor, error)

	// Admin operations
	CreateDoctor(ctx context.Context, profile model.DoctorProfile) (*model.ActionResult, error)
	CreateSampleData(ctx context.Context) (*model.ActionResult, error)
}

// TokenSource supplies the access token for the next request; "" means anonymous.
// *session.Store satisfies it.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to TokenSource
type TokenFunc func() string

// Token returns f()
func (f TokenFunc) Token() string { return f() }
