package model

// UserType is the role a backend account was registered with
type UserType string

const (
	UserTypePatient UserType = "patient"
	UserTypeDoctor  UserType = "doctor"
	UserTypeAdmin   UserType = "admin"
)

// Valid reports whether t is a role the backend knows
func (t UserType) Valid() bool {
	return t == UserTypePatient || t == UserTypeDoctor || t == UserTypeAdmin
}

// Label returns a capitalised role name for display
func (t UserType) Label() string {
	switch t {
	case UserTypePatient:
		return "Patient"
	case UserTypeDoctor:
		return "Doctor"
	case UserTypeAdmin:
		return "Admin"
	default:
		return "Unknown"
	}
}

// User is the profile returned by login and register
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone,omitempty"`
	UserType UserType `json:"user_type"`
}

// IsAdmin returns true for administrator accounts
func (u *User) IsAdmin() bool {
	return u != nil && u.UserType == UserTypeAdmin
}

// IsPatient returns true for patient accounts
func (u *User) IsPatient() bool {
	return u != nil && u.UserType == UserTypePatient
}

// IsDoctor returns true for doctor accounts
func (u *User) IsDoctor() bool {
	return u != nil && u.UserType == UserTypeDoctor
}

// DisplayName returns the name, falling back to the email
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
