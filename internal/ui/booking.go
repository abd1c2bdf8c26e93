package ui

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/carepoint/hospital-desk/internal/api"
	"github.com/carepoint/hospital-desk/internal/model"
)

// bookingFlow shows a BookingForm in a dialog and submits it to the backend
type bookingFlow struct {
	backend      api.Backend
	localization *Localization
	window       fyne.Window
	run          Runner

	// onBooked runs after the backend accepted a booking
	onBooked func(model.ActionResult)
}

// open shows the booking dialog for doctor and returns its form
func (b *bookingFlow) open(doctor model.Doctor, symptoms string) *BookingForm {
	form := NewBookingForm(doctor, symptoms, b.localization)
	d := dialog.NewCustomWithoutButtons(b.localization.GetText(KeyBookAppointment), form.Content(), b.window)
	form.OnCancel = d.Hide
	form.OnSubmit = func(req model.BookingRequest) {
		form.SetBusy(true)
		async(b.run, func() (*model.ActionResult, error) {
			return b.backend.BookAppointment(context.Background(), req)
		}, func(res *model.ActionResult, err error) {
			if err != nil {
				form.ShowError(api.Message(err, b.localization.GetText(KeyBookingFailed)))
				return
			}
			form.SetBusy(false)
			d.Hide()
			log.Printf("Booked appointment %s with doctor %s", res.AppointmentID, req.DoctorID)
			if b.onBooked != nil {
				b.onBooked(*res)
			}
		})
	}
	d.Resize(fyne.NewSize(DialogWidth, DialogHeight))
	d.Show()
	return form
}
