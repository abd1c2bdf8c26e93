package stubapi

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/carepoint/hospital-desk/internal/model"
)

// maxBody bounds request bodies
const maxBody = 1 << 20

// Config configures a Server
type Config struct {
	// Secret signs access tokens
	Secret string
	// Seed loads the sample accounts at start-up
	Seed bool
	// HashCost is the bcrypt cost; zero uses the library default
	HashCost int
	// Limiter throttles login and register per client IP; nil disables it
	Limiter *RateLimiter
}

// Server serves the hospital API from an in-memory Store
type Server struct {
	store   *Store
	tokens  *Tokens
	limiter *RateLimiter
	router  *mux.Router
}

// New creates a server. It fails only when seeding fails.
func New(cfg Config) (*Server, error) {
	s := &Server{
		store:   NewStore(cfg.HashCost),
		tokens:  NewTokens(cfg.Secret),
		limiter: cfg.Limiter,
	}
	if cfg.Seed {
		if err := Seed(s.store); err != nil {
			return nil, err
		}
	}
	s.routes()
	return s, nil
}

// Store exposes the backing store
func (s *Server) Store() *Store {
	return s.store
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/register", limit(s.limiter, s.handleRegister)).Methods(http.MethodPost)
	api.HandleFunc("/login", limit(s.limiter, s.handleLogin)).Methods(http.MethodPost)
	api.HandleFunc("/analyze-symptoms", s.requireAuth(s.handleAnalyze)).Methods(http.MethodPost)
	api.HandleFunc("/doctors", s.handleListDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors", s.requireAuth(s.handleCreateDoctor)).Methods(http.MethodPost)
	api.HandleFunc("/appointments", s.requireAuth(s.handleBook)).Methods(http.MethodPost)
	api.HandleFunc("/appointments", s.requireAuth(s.handleListAppointments)).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", s.requireAuth(s.handleUpdateAppointment)).Methods(http.MethodPut)
	api.HandleFunc("/create-sample-data", s.handleSampleData).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})
	s.router = r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

type fieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// writeValidation answers 422 with a validation list naming field
func writeValidation(w http.ResponseWriter, field, msg string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string][]fieldError{
		"detail": {{Loc: []string{"body", field}, Msg: msg, Type: "value_error"}},
	})
}

// decode reads a JSON body into v, answering 422 on failure
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(v)
	if err != nil {
		writeValidation(w, "body", "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func (s *Server) authResponse(w http.ResponseWriter, user model.User) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		log.Printf("issue token: %v", err)
		writeDetail(w, http.StatusInternalServerError, "Could not issue token")
		return
	}
	writeJSON(w, http.StatusOK, model.AuthResponse{AccessToken: token, TokenType: "bearer", User: user})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decode(w, r, &req) {
		return
	}
	switch {
	case strings.TrimSpace(req.Email) == "":
		writeValidation(w, "email", "Field required")
		return
	case req.Password == "":
		writeValidation(w, "password", "Field required")
		return
	case !req.UserType.Valid():
		writeDetail(w, http.StatusBadRequest, "Invalid user type")
		return
	}

	user, err := s.store.CreateUser(req)
	if errors.Is(err, ErrEmailTaken) {
		writeDetail(w, http.StatusBadRequest, "Email already registered")
		return
	}
	if err != nil {
		log.Printf("register: %v", err)
		writeDetail(w, http.StatusInternalServerError, "Registration failed")
		return
	}
	log.Printf("registered %s account %s", user.UserType, user.ID)
	s.authResponse(w, user)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decode(w, r, &req) {
		return
	}
	user, err := s.store.Authenticate(req.Email, req.Password)
	if err != nil {
		writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	s.authResponse(w, user)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	if !user.IsPatient() && !user.IsAdmin() {
		writeDetail(w, http.StatusForbidden, "Access denied")
		return
	}
	var req model.SymptomRequest
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Symptoms) == "" {
		writeValidation(w, "symptoms", "Field required")
		return
	}
	writeJSON(w, http.StatusOK, Analyze(s.store, req.Symptoms))
}

func (s *Server) handleListDoctors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Doctors())
}

func (s *Server) handleCreateDoctor(w http.ResponseWriter, r *http.Request) {
	if user := userFrom(r.Context()); !user.IsAdmin() {
		writeDetail(w, http.StatusForbidden, "Admin access required")
		return
	}
	var profile model.DoctorProfile
	if !decode(w, r, &profile) {
		return
	}
	if profile.UserID == "" {
		writeValidation(w, "user_id", "Field required")
		return
	}
	id, err := s.store.CreateDoctor(profile)
	if errors.Is(err, ErrUserNotFound) {
		writeDetail(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Could not create doctor")
		return
	}
	writeJSON(w, http.StatusOK, model.ActionResult{Message: "Doctor created successfully", DoctorID: id})
}

func (s *Server) handleBook(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	if !user.IsPatient() {
		writeDetail(w, http.StatusForbidden, "Only patients can book appointments")
		return
	}
	var req model.BookingRequest
	if !decode(w, r, &req) {
		return
	}
	if req.AppointmentDate.IsZero() {
		writeValidation(w, "appointment_date", "Field required")
		return
	}

	id, err := s.store.Book(user.ID, req)
	switch {
	case errors.Is(err, ErrDoctorNotFound):
		writeDetail(w, http.StatusNotFound, "Doctor not found or unavailable")
	case errors.Is(err, ErrSlotBooked):
		writeDetail(w, http.StatusBadRequest, "Time slot already booked")
	case err != nil:
		writeDetail(w, http.StatusInternalServerError, "Booking failed")
	default:
		log.Printf("appointment %s booked", id)
		writeJSON(w, http.StatusOK, model.ActionResult{Message: "Appointment booked successfully", AppointmentID: id})
	}
}

func (s *Server) handleListAppointments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Appointments(userFrom(r.Context())))
}

func (s *Server) handleUpdateAppointment(w http.ResponseWriter, r *http.Request) {
	var update model.AppointmentUpdate
	if !decode(w, r, &update) {
		return
	}
	err := s.store.UpdateAppointment(userFrom(r.Context()), mux.Vars(r)["id"], update)
	switch {
	case errors.Is(err, ErrAppointmentGone):
		writeDetail(w, http.StatusNotFound, "Appointment not found")
	case errors.Is(err, ErrForbidden):
		writeDetail(w, http.StatusForbidden, "Access denied")
	case errors.Is(err, ErrInvalidStatus):
		writeDetail(w, http.StatusBadRequest, "Invalid status")
	case err != nil:
		writeDetail(w, http.StatusInternalServerError, "Update failed")
	default:
		writeJSON(w, http.StatusOK, model.ActionResult{Message: "Appointment updated successfully"})
	}
}

func (s *Server) handleSampleData(w http.ResponseWriter, r *http.Request) {
	if err := Seed(s.store); err != nil {
		log.Printf("sample data: %v", err)
		writeDetail(w, http.StatusInternalServerError, "Could not create sample data")
		return
	}
	writeJSON(w, http.StatusOK, model.ActionResult{Message: "Sample data created successfully"})
}
