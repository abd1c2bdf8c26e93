package ui

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"golang.org/x/crypto/bcrypt"

	"github.com/carepoint/hospital-desk/internal/api"
	"github.com/carepoint/hospital-desk/internal/model"
	"github.com/carepoint/hospital-desk/internal/session"
	"github.com/carepoint/hospital-desk/internal/stubapi"
)

// inline runs tasks on the calling goroutine so tests see results immediately
func inline(task func()) { task() }

// fixedUser is a SessionSource for a single user, or nobody
type fixedUser struct {
	user *model.User
}

func (f fixedUser) CurrentUser() *model.User { return f.user }

// fakeBackend records calls and returns canned results
type fakeBackend struct {
	mu       sync.Mutex
	calls    map[string]int
	analysis *model.SymptomAnalysis
	doctors  []model.Doctor
	err      error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{calls: make(map[string]int)}
}

func (f *fakeBackend) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeBackend) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeBackend) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeBackend) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	f.record("Login")
	return nil, f.err
}

func (f *fakeBackend) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	f.record("Register")
	return nil, f.err
}

func (f *fakeBackend) AnalyzeSymptoms(ctx context.Context, req model.SymptomRequest) (*model.SymptomAnalysis, error) {
	f.record("AnalyzeSymptoms")
	if f.err != nil {
		return nil, f.err
	}
	return f.analysis, nil
}

func (f *fakeBackend) BookAppointment(ctx context.Context, req model.BookingRequest) (*model.ActionResult, error) {
	f.record("BookAppointment")
	if f.err != nil {
		return nil, f.err
	}
	return &model.ActionResult{Message: "Appointment booked successfully", AppointmentID: "a1"}, nil
}

func (f *fakeBackend) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	f.record("ListAppointments")
	return nil, f.err
}

func (f *fakeBackend) UpdateAppointment(ctx context.Context, id string, update model.AppointmentUpdate) (*model.ActionResult, error) {
	f.record("UpdateAppointment")
	return nil, f.err
}

func (f *fakeBackend) ListDoctors(ctx context.Context) ([]model.Doctor, error) {
	f.record("ListDoctors")
	return f.doctors, f.err
}

func (f *fakeBackend) CreateDoctor(ctx context.Context, profile model.DoctorProfile) (*model.ActionResult, error) {
	f.record("CreateDoctor")
	if f.err != nil {
		return nil, f.err
	}
	return &model.ActionResult{Message: "Doctor profile created successfully", DoctorID: "d1"}, nil
}

func (f *fakeBackend) CreateSampleData(ctx context.Context) (*model.ActionResult, error) {
	f.record("CreateSampleData")
	if f.err != nil {
		return nil, f.err
	}
	return &model.ActionResult{Message: "Sample data created successfully"}, nil
}

// stubEnv is a seeded stub backend reached through the real HTTP client
type stubEnv struct {
	app     fyne.App
	server  *stubapi.Server
	session *session.Store
	client  *api.Client
}

func newStubEnv(t *testing.T, opts ...session.Option) *stubEnv {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	s, err := stubapi.New(stubapi.Config{Secret: "ui-test", Seed: true, HashCost: bcrypt.MinCost})
	if err != nil {
		t.Fatalf("stubapi.New() error = %v", err)
	}
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)

	store := session.NewStore(a.Preferences(), opts...)
	return &stubEnv{
		app:     a,
		server:  s,
		session: store,
		client:  api.NewClient(ts.URL, store),
	}
}

// login signs in directly against the backend and stores the session
func (e *stubEnv) login(t *testing.T, email, password string) model.User {
	t.Helper()
	resp, err := e.client.Login(context.Background(), model.LoginRequest{Email: email, Password: password})
	if err != nil {
		t.Fatalf("Login(%s) error = %v", email, err)
	}
	if err := e.session.Login(resp.AccessToken, resp.User); err != nil {
		t.Fatalf("session Login error = %v", err)
	}
	return resp.User
}

// register creates an account and signs it in
func (e *stubEnv) register(t *testing.T, email string, userType model.UserType) model.User {
	t.Helper()
	resp, err := e.client.Register(context.Background(), model.RegisterRequest{
		Name:     "Test " + string(userType),
		Email:    email,
		Phone:    "555-0100",
		Password: "secret",
		UserType: userType,
	})
	if err != nil {
		t.Fatalf("Register(%s) error = %v", email, err)
	}
	if err := e.session.Login(resp.AccessToken, resp.User); err != nil {
		t.Fatalf("session Login error = %v", err)
	}
	return resp.User
}

func newTestLocalization() *Localization {
	loc := NewLocalization()
	loc.SetLanguage("en")
	return loc
}

// sessionClock lets a test move the session store's clock
func sessionClock(now *time.Time) session.Option {
	return session.WithClock(func() time.Time { return *now })
}
