package stubapi

import (
	"errors"
	"fmt"

	"github.com/carepoint/hospital-desk/internal/model"
)

// Sample account credentials
const (
	SampleAdminEmail     = "admin@hospital.com"
	SampleAdminPassword  = "admin123"
	SampleDoctorPassword = "doctor123"
)

type sampleDoctor struct {
	account model.RegisterRequest
	profile model.DoctorProfile
}

func weekHours(days []string, hours ...string) map[string][]string {
	out := make(map[string][]string, len(days))
	for _, d := range days {
		out[d] = append([]string(nil), hours...)
	}
	return out
}

func sampleDoctors() []sampleDoctor {
	jonesHours := weekHours([]string{"Tuesday", "Thursday"}, "10:00", "11:00", "14:00", "15:00", "16:00")
	jonesHours["Saturday"] = []string{"09:00", "10:00", "11:00"}

	return []sampleDoctor{
		{
			account: model.RegisterRequest{Name: "Dr. John Smith", Email: "dr.smith@hospital.com", Phone: "1234567891"},
			profile: model.DoctorProfile{
				Specializations: []string{"Cardiology", "Internal Medicine"},
				ExperienceYears: 15,
				Qualifications:  "MD, FACC",
				ConsultationFee: 200,
				AvailableDays:   []string{"Monday", "Wednesday", "Friday"},
				AvailableHours:  weekHours([]string{"Monday", "Wednesday", "Friday"}, "09:00", "10:00", "11:00", "14:00", "15:00"),
			},
		},
		{
			account: model.RegisterRequest{Name: "Dr. Sarah Jones", Email: "dr.jones@hospital.com", Phone: "1234567892"},
			profile: model.DoctorProfile{
				Specializations: []string{"Dermatology", "Cosmetic Surgery"},
				ExperienceYears: 12,
				Qualifications:  "MD, Board Certified Dermatologist",
				ConsultationFee: 150,
				AvailableDays:   []string{"Tuesday", "Thursday", "Saturday"},
				AvailableHours:  jonesHours,
			},
		},
		{
			account: model.RegisterRequest{Name: "Dr. Michael Brown", Email: "dr.brown@hospital.com", Phone: "1234567893"},
			profile: model.DoctorProfile{
				Specializations: []string{"Orthopedics", "Sports Medicine"},
				ExperienceYears: 18,
				Qualifications:  "MD, Orthopedic Surgeon",
				ConsultationFee: 250,
				AvailableDays:   []string{"Monday", "Tuesday", "Thursday"},
				AvailableHours:  weekHours([]string{"Monday", "Tuesday", "Thursday"}, "08:00", "09:00", "13:00", "14:00"),
			},
		},
	}
}

// Seed creates the sample admin and doctors. Accounts that already exist
// are left alone, so repeated calls do not duplicate anything.
func Seed(store *Store) error {
	admin := model.RegisterRequest{
		Name:     "Hospital Admin",
		Email:    SampleAdminEmail,
		Phone:    "1234567890",
		Password: SampleAdminPassword,
		UserType: model.UserTypeAdmin,
	}
	if _, ok := store.UserByEmail(admin.Email); !ok {
		if _, err := store.CreateUser(admin); err != nil && !errors.Is(err, ErrEmailTaken) {
			return fmt.Errorf("seed admin: %w", err)
		}
	}

	for _, sd := range sampleDoctors() {
		if _, ok := store.UserByEmail(sd.account.Email); ok {
			continue
		}
		req := sd.account
		req.Password = SampleDoctorPassword
		req.UserType = model.UserTypeDoctor
		user, err := store.CreateUser(req)
		if errors.Is(err, ErrEmailTaken) {
			continue
		}
		if err != nil {
			return fmt.Errorf("seed %s: %w", req.Email, err)
		}
		profile := sd.profile
		profile.UserID = user.ID
		if _, err := store.CreateDoctor(profile); err != nil {
			return fmt.Errorf("seed profile %s: %w", req.Email, err)
		}
	}
	return nil
}
