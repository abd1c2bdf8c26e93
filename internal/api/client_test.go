package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/carepoint/hospital-desk/internal/model"
	"github.com/carepoint/hospital-desk/internal/stubapi"
)

func TestAuthHeaders(t *testing.T) {
	anon := AuthHeaders("")
	if got := anon.Get("Authorization"); got != "" {
		t.Errorf("Expected no Authorization header, got %q", got)
	}
	if got := anon.Get("Content-Type"); got != "application/json" {
		t.Errorf("Expected JSON content type, got %q", got)
	}

	authed := AuthHeaders("abc")
	if got := authed.Get("Authorization"); got != "Bearer abc" {
		t.Errorf("Expected bearer header, got %q", got)
	}

	authed.Set("Authorization", "tampered")
	if got := AuthHeaders("").Get("Authorization"); got != "" {
		t.Errorf("Expected fresh headers per call, got %q", got)
	}
}

func TestClientReadsTokenPerRequest(t *testing.T) {
	var seen []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/doctors" {
			t.Errorf("Expected /api/doctors, got %s", r.URL.Path)
		}
		seen = append(seen, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("[]"))
	}))
	defer ts.Close()

	token := ""
	c := NewClient(ts.URL+"/", TokenFunc(func() string { return token }))

	if _, err := c.ListDoctors(context.Background()); err != nil {
		t.Fatalf("ListDoctors() error = %v", err)
	}
	token = "t1"
	if _, err := c.ListDoctors(context.Background()); err != nil {
		t.Fatalf("ListDoctors() error = %v", err)
	}

	want := []string{"", "Bearer t1"}
	if len(seen) != len(want) {
		t.Fatalf("Expected %d requests, got %d", len(want), len(seen))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("request %d: expected %q, got %q", i, want[i], seen[i])
		}
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"detail string", 400, `{"detail":"Time slot already booked"}`, "Time slot already booked"},
		{"validation list", 422, `{"detail":[{"loc":["body","email"],"msg":"Field required"}]}`, "Field required"},
		{"error field", 500, `{"error":"boom"}`, "boom"},
		{"message field", 503, `{"message":"maintenance"}`, "maintenance"},
		{"empty detail", 404, `{"detail":""}`, "Request failed (HTTP 404)"},
		{"not json", 502, `<html>bad gateway</html>`, "Request failed (HTTP 502)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			_, err := NewClient(ts.URL, nil).ListAppointments(context.Background())
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("Expected *Error, got %T (%v)", err, err)
			}
			if apiErr.Status != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, apiErr.Status)
			}
			if got := Message(err, "fallback"); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestUnreachableServer(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c := NewClient(url, nil, WithHTTPClient(&http.Client{Timeout: time.Second}))
	_, err := c.Login(context.Background(), model.LoginRequest{Email: "a", Password: "b"})
	if err == nil {
		t.Fatal("Expected an error")
	}
	if got := Message(err, ""); got != MessageUnreachable {
		t.Errorf("Expected %q, got %q", MessageUnreachable, got)
	}
}

func TestMessageFallback(t *testing.T) {
	if got := Message(errors.New("plain"), "Could not load"); got != "Could not load" {
		t.Errorf("Expected fallback, got %q", got)
	}
	if got := Message(errors.New("plain"), ""); got != "plain" {
		t.Errorf("Expected error text, got %q", got)
	}
}

// newStub starts a seeded in-memory backend
func newStub(t *testing.T) *httptest.Server {
	t.Helper()
	s, err := stubapi.New(stubapi.Config{Secret: "client-test", Seed: true, HashCost: bcrypt.MinCost})
	if err != nil {
		t.Fatalf("stubapi.New() error = %v", err)
	}
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)
	return ts
}

func TestCompletedStatusVisibleOnNextFetch(t *testing.T) {
	ts := newStub(t)
	ctx := context.Background()

	var token string
	c := NewClient(ts.URL, TokenFunc(func() string { return token }))

	auth, err := c.Register(ctx, model.RegisterRequest{
		Name: "Ann Patient", Email: "ann@example.com", Phone: "1", Password: "pw", UserType: model.UserTypePatient,
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	token = auth.AccessToken

	doctors, err := c.ListDoctors(ctx)
	if err != nil || len(doctors) == 0 {
		t.Fatalf("ListDoctors() = %d, %v", len(doctors), err)
	}

	slot, _ := model.ParseTimestamp("2025-01-10T09:00")
	res, err := c.BookAppointment(ctx, model.BookingRequest{DoctorID: doctors[0].ID, AppointmentDate: slot, Symptoms: "palpitations"})
	if err != nil {
		t.Fatalf("BookAppointment() error = %v", err)
	}

	doctorAuth, err := c.Login(ctx, model.LoginRequest{Email: "dr.smith@hospital.com", Password: stubapi.SampleDoctorPassword})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	token = doctorAuth.AccessToken

	if _, err := c.UpdateAppointment(ctx, res.AppointmentID, model.StatusUpdate(model.AppointmentStatusCompleted)); err != nil {
		t.Fatalf("UpdateAppointment() error = %v", err)
	}

	list, err := c.ListAppointments(ctx)
	if err != nil {
		t.Fatalf("ListAppointments() error = %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("Expected 1 appointment, got %d", len(list))
	}
	if list[0].Status != model.AppointmentStatusCompleted {
		t.Errorf("Expected completed, got %s", list[0].Status)
	}
	if list[0].PatientName != "Ann Patient" {
		t.Errorf("Expected patient name, got %q", list[0].PatientName)
	}
}

func TestBackendRejectionsCarryDetail(t *testing.T) {
	ts := newStub(t)
	ctx := context.Background()
	c := NewClient(ts.URL, nil)

	_, err := c.Login(ctx, model.LoginRequest{Email: "ghost@example.com", Password: "x"})
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("Expected 401 *Error, got %v", err)
	}
	if apiErr.Message != "Invalid credentials" {
		t.Errorf("Expected backend detail, got %q", apiErr.Message)
	}

	_, err = c.ListAppointments(ctx)
	if got := Message(err, ""); got != "Not authenticated" {
		t.Errorf("Expected auth failure detail, got %q", got)
	}

	admin, err := c.Login(ctx, model.LoginRequest{Email: stubapi.SampleAdminEmail, Password: stubapi.SampleAdminPassword})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	adminClient := NewClient(ts.URL, TokenFunc(func() string { return admin.AccessToken }))
	res, err := adminClient.CreateSampleData(ctx)
	if err != nil {
		t.Fatalf("CreateSampleData() error = %v", err)
	}
	if res.Message == "" {
		t.Error("Expected acknowledgement message")
	}
	analysis, err := adminClient.AnalyzeSymptoms(ctx, model.SymptomRequest{Symptoms: "knee hurts after running", PatientID: admin.User.ID})
	if err != nil {
		t.Fatalf("AnalyzeSymptoms() error = %v", err)
	}
	if analysis.UrgencyLevel != model.UrgencyMedium {
		t.Errorf("Expected Medium urgency, got %s", analysis.UrgencyLevel)
	}
	if len(analysis.RecommendedDoctors) == 0 || analysis.RecommendedDoctors[0].Doctor.Name != "Dr. Michael Brown" {
		t.Errorf("Expected Dr. Michael Brown first, got %+v", analysis.RecommendedDoctors)
	}
}
