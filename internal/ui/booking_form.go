package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/carepoint/hospital-desk/internal/model"
)

var (
	ErrMissingDate = errors.New("appointment date is required")
	ErrInvalidDate = errors.New("appointment date is malformed")
	ErrInvalidTime = errors.New("appointment time is malformed")
)

// ParseSlot combines a YYYY-MM-DD date and an HH:MM time in loc. An empty
// time means DefaultBookingTime.
func ParseSlot(date, clock string, loc *time.Location) (time.Time, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if date == "" {
		return time.Time{}, ErrMissingDate
	}
	if _, err := time.Parse(BookingDateLayout, date); err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	if clock == "" {
		clock = DefaultBookingTime
	}
	if _, err := time.Parse(BookingTimeLayout, clock); err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, clock)
	}
	return time.ParseInLocation(BookingDateLayout+" "+BookingTimeLayout, date+" "+clock, loc)
}

// BookingForm collects the slot and symptoms for booking a doctor
type BookingForm struct {
	doctor       model.Doctor
	localization *Localization
	location     *time.Location

	dateEntry     *widget.Entry
	timeEntry     *widget.Entry
	symptomsEntry *widget.Entry
	submitBtn     *widget.Button
	cancelBtn     *widget.Button
	status        *notice
	content       fyne.CanvasObject

	// OnSubmit receives the validated booking
	OnSubmit func(model.BookingRequest)
	// OnCancel runs when the user abandons the form
	OnCancel func()
}

// NewBookingForm creates a form for doctor, prefilled with symptoms
func NewBookingForm(doctor model.Doctor, symptoms string, localization *Localization) *BookingForm {
	f := &BookingForm{
		doctor:        doctor,
		localization:  localization,
		location:      time.Local,
		dateEntry:     widget.NewEntry(),
		timeEntry:     widget.NewEntry(),
		symptomsEntry: widget.NewMultiLineEntry(),
		status:        newNotice(),
	}
	f.dateEntry.SetPlaceHolder(BookingDateLayout)
	f.timeEntry.SetText(DefaultBookingTime)
	f.symptomsEntry.SetText(symptoms)
	f.symptomsEntry.Wrapping = fyne.TextWrapWord
	f.symptomsEntry.SetMinRowsVisible(3)

	f.submitBtn = widget.NewButton(localization.GetText(KeyBook), func() { f.Submit() })
	f.submitBtn.Importance = widget.HighImportance
	f.cancelBtn = widget.NewButton(localization.GetText(KeyCancel), func() {
		if f.OnCancel != nil {
			f.OnCancel()
		}
	})

	header := widget.NewLabelWithStyle(IconDoctor+" "+doctor.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	details := widget.NewLabel(doctor.GetSpecializations() + MiddleDotSeparator + doctor.GetAvailableDays())
	details.Wrapping = fyne.TextWrapWord

	f.content = container.NewVBox(
		header,
		details,
		widget.NewSeparator(),
		widget.NewLabel(localization.GetText(KeyAppointmentDate)),
		f.dateEntry,
		widget.NewLabel(localization.GetText(KeyAppointmentTime)),
		f.timeEntry,
		widget.NewLabel(localization.GetText(KeySymptoms)),
		f.symptomsEntry,
		container.NewHBox(f.cancelBtn, f.submitBtn),
		f.status.object(),
	)
	return f
}

// Request returns the typed booking built from the current input
func (f *BookingForm) Request() (model.BookingRequest, error) {
	slot, err := ParseSlot(f.dateEntry.Text, f.timeEntry.Text, f.location)
	if err != nil {
		return model.BookingRequest{}, err
	}
	return model.BookingRequest{
		DoctorID:        f.doctor.ID,
		AppointmentDate: model.NewTimestamp(slot.UTC()),
		Symptoms:        strings.TrimSpace(f.symptomsEntry.Text),
	}, nil
}

// Submit validates the input and passes it to OnSubmit. Invalid input is
// reported inline and nothing is submitted.
func (f *BookingForm) Submit() {
	if f.submitBtn.Disabled() {
		return
	}
	req, err := f.Request()
	switch {
	case errors.Is(err, ErrMissingDate):
		f.status.fail(f.localization.GetText(KeyDateRequired))
		return
	case errors.Is(err, ErrInvalidDate):
		f.status.fail(f.localization.GetText(KeyInvalidDate))
		return
	case err != nil:
		f.status.fail(f.localization.GetText(KeyInvalidTime))
		return
	}
	if f.OnSubmit != nil {
		f.OnSubmit(req)
	}
}

// SetBusy disables the form while the booking is outstanding
func (f *BookingForm) SetBusy(busy bool) {
	setBusy(f.submitBtn, f.status, busy, f.localization.GetText(KeyBooking))
}

// ShowError reports a failed booking
func (f *BookingForm) ShowError(msg string) {
	f.SetBusy(false)
	f.status.fail(msg)
}

// Doctor returns the doctor being booked
func (f *BookingForm) Doctor() model.Doctor {
	return f.doctor
}

// Content returns the form's canvas object
func (f *BookingForm) Content() fyne.CanvasObject {
	return f.content
}
