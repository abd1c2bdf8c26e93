package stubapi

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/carepoint/hospital-desk/internal/model"
)

var (
	// ErrEmailTaken is returned when registering an email that already has an account
	ErrEmailTaken = errors.New("email already registered")
	// ErrBadCredentials is returned for an unknown email or a wrong password
	ErrBadCredentials = errors.New("invalid credentials")
	// ErrUserNotFound is returned for an unknown user id
	ErrUserNotFound = errors.New("user not found")
	// ErrDoctorNotFound is returned for an unknown or unavailable doctor
	ErrDoctorNotFound = errors.New("doctor not found or unavailable")
	// ErrSlotBooked is returned when the doctor already has a live appointment at that time
	ErrSlotBooked = errors.New("time slot already booked")
	// ErrAppointmentGone is returned for an unknown appointment id
	ErrAppointmentGone = errors.New("appointment not found")
	// ErrForbidden is returned when the user may not touch the appointment
	ErrForbidden = errors.New("access denied")
	// ErrInvalidStatus is returned for a status outside the known set
	ErrInvalidStatus = errors.New("invalid status")
)

type userRecord struct {
	model.User
	passwordHash []byte
	createdAt    time.Time
}

type doctorRecord struct {
	model.DoctorProfile
	id          string
	isAvailable bool
}

type appointmentRecord struct {
	id        string
	patientID string
	doctorID  string
	date      time.Time
	symptoms  string
	status    model.AppointmentStatus
	notes     *string
	createdAt time.Time
}

// Store holds users, doctor profiles and appointments in memory
type Store struct {
	mu           sync.RWMutex
	users        map[string]*userRecord
	emails       map[string]string
	doctors      map[string]*doctorRecord
	appointments map[string]*appointmentRecord
	hashCost     int
	now          func() time.Time
}

// NewStore creates an empty store. hashCost is the bcrypt cost; values
// below bcrypt.MinCost use bcrypt.DefaultCost.
func NewStore(hashCost int) *Store {
	if hashCost < bcrypt.MinCost {
		hashCost = bcrypt.DefaultCost
	}
	return &Store{
		users:        make(map[string]*userRecord),
		emails:       make(map[string]string),
		doctors:      make(map[string]*doctorRecord),
		appointments: make(map[string]*appointmentRecord),
		hashCost:     hashCost,
		now:          time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser registers a new account
func (s *Store) CreateUser(req model.RegisterRequest) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return model.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := normalizeEmail(req.Email)
	if _, ok := s.emails[key]; ok {
		return model.User{}, ErrEmailTaken
	}
	u := &userRecord{
		User: model.User{
			ID:       uuid.NewString(),
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			UserType: req.UserType,
		},
		passwordHash: hash,
		createdAt:    s.now(),
	}
	s.users[u.ID] = u
	s.emails[key] = u.ID
	return u.User, nil
}

// Authenticate checks an email/password pair
func (s *Store) Authenticate(email, password string) (model.User, error) {
	s.mu.RLock()
	id, ok := s.emails[normalizeEmail(email)]
	var u *userRecord
	if ok {
		u = s.users[id]
	}
	s.mu.RUnlock()

	if u == nil {
		return model.User{}, ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		return model.User{}, ErrBadCredentials
	}
	return u.User, nil
}

// UserByID looks up an account
func (s *Store) UserByID(id string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return u.User, nil
}

// UserByEmail looks up an account by email
func (s *Store) UserByEmail(email string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emails[normalizeEmail(email)]
	if !ok {
		return model.User{}, false
	}
	return s.users[id].User, true
}

// CreateDoctor attaches a doctor profile to an account
func (s *Store) CreateDoctor(profile model.DoctorProfile) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[profile.UserID]; !ok {
		return "", ErrUserNotFound
	}
	d := &doctorRecord{DoctorProfile: profile, id: uuid.NewString(), isAvailable: true}
	s.doctors[d.id] = d
	return d.id, nil
}

// doctorView renders a profile joined with its account name. Callers hold mu.
func (s *Store) doctorView(d *doctorRecord) (model.Doctor, bool) {
	u, ok := s.users[d.UserID]
	if !ok {
		return model.Doctor{}, false
	}
	return model.Doctor{
		ID:              d.id,
		Name:            u.Name,
		Specializations: append([]string(nil), d.Specializations...),
		ExperienceYears: d.ExperienceYears,
		Qualifications:  d.Qualifications,
		ConsultationFee: d.ConsultationFee,
		AvailableDays:   append([]string(nil), d.AvailableDays...),
		AvailableHours:  d.AvailableHours,
		IsAvailable:     d.isAvailable,
	}, true
}

// sortedDoctors returns the profiles ordered by account name. Callers hold mu.
func (s *Store) sortedDoctors() []model.Doctor {
	out := make([]model.Doctor, 0, len(s.doctors))
	for _, d := range s.doctors {
		if !d.isAvailable {
			continue
		}
		if v, ok := s.doctorView(d); ok {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Doctors lists available doctors
func (s *Store) Doctors() []model.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedDoctors()
}

// DoctorsWithSpecialty returns up to limit available doctors listing specialty
func (s *Store) DoctorsWithSpecialty(specialty string, limit int) []model.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Doctor
	for _, d := range s.sortedDoctors() {
		if len(out) == limit {
			break
		}
		if d.HasSpecialization(specialty) {
			out = append(out, d)
		}
	}
	return out
}

// doctorIDForUser finds the profile owned by a doctor account. Callers hold mu.
func (s *Store) doctorIDForUser(userID string) (string, bool) {
	for id, d := range s.doctors {
		if d.UserID == userID {
			return id, true
		}
	}
	return "", false
}

// Book creates a scheduled appointment for patientID
func (s *Store) Book(patientID string, req model.BookingRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.doctors[req.DoctorID]
	if !ok || !d.isAvailable {
		return "", ErrDoctorNotFound
	}
	for _, a := range s.appointments {
		if a.doctorID == req.DoctorID && a.date.Equal(req.AppointmentDate.Time) &&
			a.status != model.AppointmentStatusCancelled {
			return "", ErrSlotBooked
		}
	}
	a := &appointmentRecord{
		id:        uuid.NewString(),
		patientID: patientID,
		doctorID:  req.DoctorID,
		date:      req.AppointmentDate.UTC(),
		symptoms:  req.Symptoms,
		status:    model.AppointmentStatusScheduled,
		createdAt: s.now(),
	}
	s.appointments[a.id] = a
	return a.id, nil
}

// Appointments lists what user may see: patients their own, doctors those
// booked with them, admins everything
func (s *Store) Appointments(user model.User) []model.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var doctorID string
	if user.IsDoctor() {
		id, ok := s.doctorIDForUser(user.ID)
		if !ok {
			return []model.Appointment{}
		}
		doctorID = id
	}

	records := make([]*appointmentRecord, 0, len(s.appointments))
	for _, a := range s.appointments {
		switch {
		case user.IsPatient() && a.patientID != user.ID:
			continue
		case user.IsDoctor() && a.doctorID != doctorID:
			continue
		}
		records = append(records, a)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].date.Equal(records[j].date) {
			return records[i].createdAt.Before(records[j].createdAt)
		}
		return records[i].date.Before(records[j].date)
	})

	out := make([]model.Appointment, 0, len(records))
	for _, a := range records {
		patient, ok := s.users[a.patientID]
		if !ok {
			continue
		}
		d, ok := s.doctors[a.doctorID]
		if !ok {
			continue
		}
		doctor, ok := s.users[d.UserID]
		if !ok {
			continue
		}
		out = append(out, model.Appointment{
			ID:              a.id,
			PatientName:     patient.Name,
			DoctorName:      doctor.Name,
			AppointmentDate: model.NewTimestamp(a.date),
			Symptoms:        a.symptoms,
			Notes:           a.notes,
			Status:          a.status,
		})
	}
	return out
}

// UpdateAppointment applies the non-nil fields of update on behalf of user
func (s *Store) UpdateAppointment(user model.User, id string, update model.AppointmentUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.appointments[id]
	if !ok {
		return ErrAppointmentGone
	}
	switch {
	case user.IsPatient():
		if a.patientID != user.ID {
			return ErrForbidden
		}
	case user.IsDoctor():
		doctorID, ok := s.doctorIDForUser(user.ID)
		if !ok || a.doctorID != doctorID {
			return ErrForbidden
		}
	}

	if update.Status != nil && !update.Status.Valid() {
		return ErrInvalidStatus
	}
	if update.Status != nil {
		a.status = *update.Status
	}
	if update.Notes != nil {
		notes := *update.Notes
		a.notes = &notes
	}
	if update.AppointmentDate != nil && !update.AppointmentDate.IsZero() {
		a.date = update.AppointmentDate.UTC()
	}
	return nil
}
