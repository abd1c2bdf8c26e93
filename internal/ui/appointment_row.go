package ui

import (
	"image/color"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/carepoint/hospital-desk/internal/model"
)

// AppointmentRow renders one appointment with its status and actions
type AppointmentRow struct {
	widget.BaseWidget

	appointment  model.Appointment
	viewer       *model.User
	localization *Localization

	// UI components
	titleLabel    *widget.Label
	dateLabel     *widget.Label
	symptomsLabel *widget.Label
	notesLabel    *widget.Label
	statusBadge   *Badge

	// Action buttons
	completeBtn *widget.Button
	cancelBtn   *widget.Button

	// Callbacks
	onComplete func(appointmentID string)
	onCancel   func(appointmentID string)
}

// NewAppointmentRow creates a row for appointment as seen by viewer
func NewAppointmentRow(appointment model.Appointment, viewer *model.User, localization *Localization) *AppointmentRow {
	r := &AppointmentRow{
		appointment:  appointment,
		viewer:       viewer,
		localization: localization,
	}
	r.ExtendBaseWidget(r)
	r.createUI()
	r.updateFromAppointment()
	return r
}

// SetCallbacks sets the action callbacks
func (r *AppointmentRow) SetCallbacks(onComplete, onCancel func(appointmentID string)) {
	r.onComplete = onComplete
	r.onCancel = onCancel
}

// UpdateAppointment replaces the displayed appointment
func (r *AppointmentRow) UpdateAppointment(appointment model.Appointment) {
	r.appointment = appointment
	r.updateFromAppointment()
	r.Refresh()
}

// Appointment returns the displayed appointment
func (r *AppointmentRow) Appointment() model.Appointment {
	return r.appointment
}

// CanComplete reports whether the Mark completed action is offered
func (r *AppointmentRow) CanComplete() bool {
	return r.appointment.Status.IsOpen() && (r.viewer.IsDoctor() || r.viewer.IsAdmin())
}

// CanCancel reports whether the Cancel action is offered
func (r *AppointmentRow) CanCancel() bool {
	return r.appointment.Status.IsOpen() && r.viewer != nil
}

// StatusBadge returns the status badge
func (r *AppointmentRow) StatusBadge() *Badge {
	return r.statusBadge
}

// Complete triggers the Mark completed action
func (r *AppointmentRow) Complete() {
	if r.CanComplete() && r.onComplete != nil {
		r.onComplete(r.appointment.ID)
	}
}

// Cancel triggers the Cancel action
func (r *AppointmentRow) Cancel() {
	if r.CanCancel() && r.onCancel != nil {
		r.onCancel(r.appointment.ID)
	}
}

// SetActionsEnabled enables or disables both action buttons
func (r *AppointmentRow) SetActionsEnabled(enabled bool) {
	for _, btn := range []*widget.Button{r.completeBtn, r.cancelBtn} {
		if enabled {
			btn.Enable()
		} else {
			btn.Disable()
		}
	}
}

func (r *AppointmentRow) createUI() {
	r.titleLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	r.titleLabel.Truncation = fyne.TextTruncateEllipsis

	r.dateLabel = widget.NewLabel("")
	r.symptomsLabel = widget.NewLabel("")
	r.symptomsLabel.Wrapping = fyne.TextWrapWord
	r.notesLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Italic: true})
	r.notesLabel.Wrapping = fyne.TextWrapWord

	r.statusBadge = NewStatusBadge(r.appointment.Status)

	r.completeBtn = widget.NewButton(IconCheck+" "+r.localization.GetText(KeyMarkCompleted), r.Complete)
	r.completeBtn.Importance = widget.SuccessImportance
	r.cancelBtn = widget.NewButton(r.localization.GetText(KeyCancelAppt), r.Cancel)
	r.cancelBtn.Importance = widget.DangerImportance
}

func (r *AppointmentRow) updateFromAppointment() {
	a := &r.appointment
	loc := r.localization

	title := IconDoctor + " " + a.DoctorName
	// the patient is only worth naming to staff
	if !r.viewer.IsPatient() && a.PatientName != "" {
		title += MiddleDotSeparator + loc.GetText(KeyPatient) + ": " + a.PatientName
	}
	r.titleLabel.SetText(title)
	r.dateLabel.SetText(IconCalendar + " " + a.GetDisplayDate())
	r.symptomsLabel.SetText(loc.GetText(KeySymptoms) + ": " + a.GetSymptomsPreview(PreviewLength))

	if notes := strings.TrimSpace(a.GetNotes()); notes != "" {
		r.notesLabel.SetText(loc.GetText(KeyNotes) + ": " + notes)
		r.notesLabel.Show()
	} else {
		r.notesLabel.Hide()
	}

	r.statusBadge.SetStatus(a.Status)

	if r.CanComplete() {
		r.completeBtn.Show()
	} else {
		r.completeBtn.Hide()
	}
	if r.CanCancel() {
		r.cancelBtn.Show()
	} else {
		r.cancelBtn.Hide()
	}
	log.Printf("AppointmentRow update: id=%s status=%s", a.ID, a.Status)
}

// CreateRenderer creates the widget renderer
func (r *AppointmentRow) CreateRenderer() fyne.WidgetRenderer {
	return &appointmentRowRenderer{row: r}
}

// appointmentRowRenderer renders the appointment row widget
type appointmentRowRenderer struct {
	row    *AppointmentRow
	layout *fyne.Container
}

// Layout arranges the components
func (r *appointmentRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *appointmentRowRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	size := r.layout.MinSize()
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	return size
}

// Refresh refreshes the renderer
func (r *appointmentRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *appointmentRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *appointmentRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *appointmentRowRenderer) createLayout() {
	row := r.row

	// keep the badge column steady so titles line up across rows
	badgeSpacer := canvas.NewRectangle(color.Transparent)
	badgeSpacer.SetMinSize(fyne.NewSize(BadgeMinWidth+16, 0))
	badge := container.NewStack(badgeSpacer, container.NewCenter(row.statusBadge))

	header := container.NewBorder(nil, nil, nil, badge, row.titleLabel)
	actions := container.NewHBox(row.completeBtn, row.cancelBtn)
	footer := container.NewBorder(nil, nil, row.dateLabel, actions)

	r.layout = container.NewVBox(
		header,
		row.symptomsLabel,
		row.notesLabel,
		footer,
		widget.NewSeparator(),
	)
}
