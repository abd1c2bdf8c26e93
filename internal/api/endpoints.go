package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/carepoint/hospital-desk/internal/model"
)

var _ Backend = (*Client)(nil)

// Login exchanges credentials for an access token
func (c *Client) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	var out model.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and returns its access token
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	var out model.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzeSymptoms submits symptoms for analysis
func (c *Client) AnalyzeSymptoms(ctx context.Context, req model.SymptomRequest) (*model.SymptomAnalysis, error) {
	var out model.SymptomAnalysis
	if err := c.do(ctx, http.MethodPost, "/analyze-symptoms", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BookAppointment books an appointment with a doctor
func (c *Client) BookAppointment(ctx context.Context, req model.BookingRequest) (*model.ActionResult, error) {
	var out model.ActionResult
	if err := c.do(ctx, http.MethodPost, "/appointments", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAppointments returns the appointments visible to the caller
func (c *Client) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	out := []model.Appointment{}
	if err := c.do(ctx, http.MethodGet, "/appointments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateAppointment changes the status, notes or date of an appointment
func (c *Client) UpdateAppointment(ctx context.Context, id string, update model.AppointmentUpdate) (*model.ActionResult, error) {
	var out model.ActionResult
	if err := c.do(ctx, http.MethodPut, "/appointments/"+url.PathEscape(id), update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListDoctors returns the doctor directory
func (c *Client) ListDoctors(ctx context.Context) ([]model.Doctor, error) {
	out := []model.Doctor{}
	if err := c.do(ctx, http.MethodGet, "/doctors", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateDoctor attaches a doctor profile to an existing doctor account
func (c *Client) CreateDoctor(ctx context.Context, profile model.DoctorProfile) (*model.ActionResult, error) {
	var out model.ActionResult
	if err := c.do(ctx, http.MethodPost, "/doctors", profile, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSampleData seeds the backend with demo accounts and doctors
func (c *Client) CreateSampleData(ctx context.Context) (*model.ActionResult, error) {
	var out model.ActionResult
	if err := c.do(ctx, http.MethodPost, "/create-sample-data", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
