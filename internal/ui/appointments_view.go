package ui

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/carepoint/hospital-desk/internal/api"
	"github.com/carepoint/hospital-desk/internal/model"
	"github.com/carepoint/hospital-desk/internal/navigation"
)

// AppointmentsView lists the caller's appointments and changes their status
type AppointmentsView struct {
	backend      api.Backend
	users        navigation.SessionSource
	localization *Localization
	run          Runner

	refreshBtn *widget.Button
	status     *notice
	list       *fyne.Container
	content    fyne.CanvasObject

	appointments []model.Appointment
	rows         []*AppointmentRow
}

// NewAppointmentsView creates the appointments tab
func NewAppointmentsView(backend api.Backend, users navigation.SessionSource, localization *Localization, run Runner) *AppointmentsView {
	v := &AppointmentsView{
		backend:      backend,
		users:        users,
		localization: localization,
		run:          run,
		status:       newNotice(),
		list:         container.NewVBox(),
	}
	v.refreshBtn = widget.NewButton(IconRefresh+" "+localization.GetText(KeyRefresh), v.Load)

	top := container.NewVBox(
		container.NewBorder(nil, nil,
			widget.NewLabelWithStyle(localization.GetText(KeyTabAppointments), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			v.refreshBtn),
		v.status.object(),
	)
	v.content = container.NewBorder(top, nil, nil, nil, container.NewVScroll(v.list))
	return v
}

// Content returns the tab body
func (v *AppointmentsView) Content() fyne.CanvasObject {
	return v.content
}

// Load fetches the appointment list
func (v *AppointmentsView) Load() {
	v.refreshBtn.Disable()
	v.status.busy(v.localization.GetText(KeyLoading))
	async(v.run, func() ([]model.Appointment, error) {
		return v.backend.ListAppointments(context.Background())
	}, func(list []model.Appointment, err error) {
		v.refreshBtn.Enable()
		if err != nil {
			v.status.fail(api.Message(err, v.localization.GetText(KeyLoadFailed)))
			return
		}
		v.status.clear()
		v.render(list)
	})
}

// Appointments returns the last fetched list
func (v *AppointmentsView) Appointments() []model.Appointment {
	return v.appointments
}

// Rows returns the rendered rows, in list order
func (v *AppointmentsView) Rows() []*AppointmentRow {
	return v.rows
}

// SetStatus asks the backend to move appointment id to status, then fetches
// the list again so the rows show what the backend stored
func (v *AppointmentsView) SetStatus(id string, status model.AppointmentStatus) {
	for _, row := range v.rows {
		row.SetActionsEnabled(false)
	}
	v.status.busy(v.localization.GetText(KeyUpdatingStatus))
	async(v.run, func() (*model.ActionResult, error) {
		return v.backend.UpdateAppointment(context.Background(), id, model.StatusUpdate(status))
	}, func(_ *model.ActionResult, err error) {
		if err != nil {
			for _, row := range v.rows {
				row.SetActionsEnabled(true)
			}
			v.status.fail(api.Message(err, v.localization.GetText(KeyUpdateFailed)))
			return
		}
		log.Printf("Appointment %s set to %s", id, status)
		v.Load()
	})
}

func (v *AppointmentsView) render(list []model.Appointment) {
	v.appointments = list
	v.rows = nil
	viewer := v.users.CurrentUser()

	objects := make([]fyne.CanvasObject, 0, len(list))
	for _, a := range list {
		row := NewAppointmentRow(a, viewer, v.localization)
		row.SetCallbacks(
			func(id string) { v.SetStatus(id, model.AppointmentStatusCompleted) },
			func(id string) { v.SetStatus(id, model.AppointmentStatusCancelled) },
		)
		v.rows = append(v.rows, row)
		objects = append(objects, row)
	}
	if len(list) == 0 {
		v.status.hint(v.localization.GetText(KeyNoAppointments))
	}
	v.list.Objects = objects
	v.list.Refresh()
}
