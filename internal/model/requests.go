package model

// LoginRequest is the body of POST /login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /register
type RegisterRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Password string   `json:"password"`
	UserType UserType `json:"user_type"`
}

// AuthResponse is returned by login and register
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	User        User   `json:"user"`
}

// SymptomRequest is the body of POST /analyze-symptoms
type SymptomRequest struct {
	Symptoms  string `json:"symptoms"`
	PatientID string `json:"patient_id"`
}

// BookingRequest is the body of POST /appointments
type BookingRequest struct {
	DoctorID        string    `json:"doctor_id"`
	AppointmentDate Timestamp `json:"appointment_date"`
	Symptoms        string    `json:"symptoms"`
}

// AppointmentUpdate is the body of PUT /appointments/{id}; nil fields are left unchanged
type AppointmentUpdate struct {
	Status          *AppointmentStatus `json:"status,omitempty"`
	Notes           *string            `json:"notes,omitempty"`
	AppointmentDate *Timestamp         `json:"appointment_date,omitempty"`
}

// StatusUpdate builds an update that only changes the status
func StatusUpdate(status AppointmentStatus) AppointmentUpdate {
	return AppointmentUpdate{Status: &status}
}

// DoctorProfile is the body of POST /doctors (admin only)
type DoctorProfile struct {
	UserID          string              `json:"user_id"`
	Specializations []string            `json:"specializations"`
	ExperienceYears int                 `json:"experience_years"`
	Qualifications  string              `json:"qualifications"`
	ConsultationFee float64             `json:"consultation_fee"`
	AvailableDays   []string            `json:"available_days"`
	AvailableHours  map[string][]string `json:"available_hours"`
}

// ActionResult is the acknowledgement body of mutating endpoints
type ActionResult struct {
	Message       string `json:"message"`
	AppointmentID string `json:"appointment_id,omitempty"`
	DoctorID      string `json:"doctor_id,omitempty"`
}
