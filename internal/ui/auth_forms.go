package ui

import (
	"errors"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/carepoint/hospital-desk/internal/model"
)

// ErrMissingFields is returned when a required form field is empty
var ErrMissingFields = errors.New("required field is empty")

// LoginForm collects credentials and hands them to OnSubmit
type LoginForm struct {
	localization *Localization

	emailEntry    *widget.Entry
	passwordEntry *widget.Entry
	submitBtn     *widget.Button
	status        *notice
	content       fyne.CanvasObject

	// OnSubmit receives validated credentials
	OnSubmit func(model.LoginRequest)
}

// NewLoginForm creates an empty login form
func NewLoginForm(localization *Localization) *LoginForm {
	f := &LoginForm{
		localization:  localization,
		emailEntry:    widget.NewEntry(),
		passwordEntry: widget.NewPasswordEntry(),
		status:        newNotice(),
	}
	f.emailEntry.SetPlaceHolder("name@example.com")
	f.passwordEntry.OnSubmitted = func(string) { f.Submit() }
	f.submitBtn = widget.NewButton(localization.GetText(KeyLogin), func() { f.Submit() })
	f.submitBtn.Importance = widget.HighImportance

	f.content = container.NewVBox(
		widget.NewLabel(localization.GetText(KeyEmail)),
		f.emailEntry,
		widget.NewLabel(localization.GetText(KeyPassword)),
		f.passwordEntry,
		f.submitBtn,
		f.status.object(),
	)
	return f
}

// Request returns the typed request built from the current input
func (f *LoginForm) Request() (model.LoginRequest, error) {
	req := model.LoginRequest{
		Email:    strings.TrimSpace(f.emailEntry.Text),
		Password: f.passwordEntry.Text,
	}
	if req.Email == "" || req.Password == "" {
		return req, ErrMissingFields
	}
	return req, nil
}

// Submit validates the input and passes it to OnSubmit. Empty fields are
// reported inline and nothing is submitted. It does nothing while busy.
func (f *LoginForm) Submit() {
	if f.submitBtn.Disabled() {
		return
	}
	req, err := f.Request()
	if err != nil {
		f.status.fail(f.localization.GetText(KeyFieldsRequired))
		return
	}
	if f.OnSubmit != nil {
		f.OnSubmit(req)
	}
}

// SetBusy disables the form while a request is outstanding
func (f *LoginForm) SetBusy(busy bool) {
	setBusy(f.submitBtn, f.status, busy, f.localization.GetText(KeySigningIn))
}

// ShowError reports a failed attempt
func (f *LoginForm) ShowError(msg string) {
	f.SetBusy(false)
	f.status.fail(msg)
}

// Content returns the form's canvas object
func (f *LoginForm) Content() fyne.CanvasObject {
	return f.content
}

// RegisterForm collects a new account and hands it to OnSubmit
type RegisterForm struct {
	localization *Localization

	nameEntry     *widget.Entry
	emailEntry    *widget.Entry
	phoneEntry    *widget.Entry
	passwordEntry *widget.Entry
	typeSelect    *widget.Select
	typeByLabel   map[string]model.UserType
	submitBtn     *widget.Button
	status        *notice
	content       fyne.CanvasObject

	// OnSubmit receives the validated registration
	OnSubmit func(model.RegisterRequest)
}

// registrableTypes are the account types offered at sign-up; admins are
// provisioned by the backend
var registrableTypes = []model.UserType{model.UserTypePatient, model.UserTypeDoctor}

// NewRegisterForm creates an empty registration form
func NewRegisterForm(localization *Localization) *RegisterForm {
	f := &RegisterForm{
		localization:  localization,
		nameEntry:     widget.NewEntry(),
		emailEntry:    widget.NewEntry(),
		phoneEntry:    widget.NewEntry(),
		passwordEntry: widget.NewPasswordEntry(),
		typeByLabel:   make(map[string]model.UserType),
		status:        newNotice(),
	}

	labels := make([]string, 0, len(registrableTypes))
	for _, t := range registrableTypes {
		labels = append(labels, t.Label())
		f.typeByLabel[t.Label()] = t
	}
	f.typeSelect = widget.NewSelect(labels, nil)
	f.typeSelect.SetSelected(model.UserTypePatient.Label())

	f.submitBtn = widget.NewButton(localization.GetText(KeyRegister), func() { f.Submit() })
	f.submitBtn.Importance = widget.HighImportance

	f.content = container.NewVBox(
		widget.NewLabel(localization.GetText(KeyName)),
		f.nameEntry,
		widget.NewLabel(localization.GetText(KeyEmail)),
		f.emailEntry,
		widget.NewLabel(localization.GetText(KeyPhone)),
		f.phoneEntry,
		widget.NewLabel(localization.GetText(KeyPassword)),
		f.passwordEntry,
		widget.NewLabel(localization.GetText(KeyUserType)),
		f.typeSelect,
		f.submitBtn,
		f.status.object(),
	)
	return f
}

// Request returns the typed request built from the current input
func (f *RegisterForm) Request() (model.RegisterRequest, error) {
	req := model.RegisterRequest{
		Name:     strings.TrimSpace(f.nameEntry.Text),
		Email:    strings.TrimSpace(f.emailEntry.Text),
		Phone:    strings.TrimSpace(f.phoneEntry.Text),
		Password: f.passwordEntry.Text,
		UserType: f.typeByLabel[f.typeSelect.Selected],
	}
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Password == "" || !req.UserType.Valid() {
		return req, ErrMissingFields
	}
	return req, nil
}

// Submit validates the input and passes it to OnSubmit
func (f *RegisterForm) Submit() {
	if f.submitBtn.Disabled() {
		return
	}
	req, err := f.Request()
	if err != nil {
		f.status.fail(f.localization.GetText(KeyFieldsRequired))
		return
	}
	if f.OnSubmit != nil {
		f.OnSubmit(req)
	}
}

// SetBusy disables the form while a request is outstanding
func (f *RegisterForm) SetBusy(busy bool) {
	setBusy(f.submitBtn, f.status, busy, f.localization.GetText(KeySigningIn))
}

// ShowError reports a failed attempt
func (f *RegisterForm) ShowError(msg string) {
	f.SetBusy(false)
	f.status.fail(msg)
}

// Content returns the form's canvas object
func (f *RegisterForm) Content() fyne.CanvasObject {
	return f.content
}

// setBusy toggles btn and the spinner together
func setBusy(btn *widget.Button, status *notice, busy bool, msg string) {
	if busy {
		btn.Disable()
		status.busy(msg)
		return
	}
	btn.Enable()
	status.clear()
}
