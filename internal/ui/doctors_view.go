package ui

import (
	"context"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/carepoint/hospital-desk/internal/api"
	"github.com/carepoint/hospital-desk/internal/model"
	"github.com/carepoint/hospital-desk/internal/navigation"
)

// DoctorsView shows the doctor directory
type DoctorsView struct {
	backend      api.Backend
	users        navigation.SessionSource
	localization *Localization
	run          Runner

	refreshBtn *widget.Button
	status     *notice
	grid       *fyne.Container
	content    fyne.CanvasObject

	doctors []model.Doctor
	onBook  func(doctor model.Doctor, symptoms string)
}

// NewDoctorsView creates the doctors tab
func NewDoctorsView(backend api.Backend, users navigation.SessionSource, localization *Localization, run Runner) *DoctorsView {
	v := &DoctorsView{
		backend:      backend,
		users:        users,
		localization: localization,
		run:          run,
		status:       newNotice(),
		grid:         newCardGrid(),
	}
	v.refreshBtn = widget.NewButton(IconRefresh+" "+localization.GetText(KeyRefresh), v.Load)

	top := container.NewVBox(
		container.NewBorder(nil, nil,
			widget.NewLabelWithStyle(localization.GetText(KeyTabDoctors), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			v.refreshBtn),
		v.status.object(),
	)
	v.content = container.NewBorder(top, nil, nil, nil, container.NewVScroll(v.grid))
	return v
}

// SetBookCallback sets the handler for the Book buttons
func (v *DoctorsView) SetBookCallback(fn func(doctor model.Doctor, symptoms string)) {
	v.onBook = fn
}

// Content returns the tab body
func (v *DoctorsView) Content() fyne.CanvasObject {
	return v.content
}

// Doctors returns the last fetched directory
func (v *DoctorsView) Doctors() []model.Doctor {
	return v.doctors
}

// Load fetches the doctor directory
func (v *DoctorsView) Load() {
	v.refreshBtn.Disable()
	v.status.busy(v.localization.GetText(KeyLoading))
	async(v.run, func() ([]model.Doctor, error) {
		return v.backend.ListDoctors(context.Background())
	}, func(doctors []model.Doctor, err error) {
		v.refreshBtn.Enable()
		if err != nil {
			v.status.fail(api.Message(err, v.localization.GetText(KeyLoadFailed)))
			return
		}
		v.status.clear()
		v.render(doctors)
	})
}

func (v *DoctorsView) render(doctors []model.Doctor) {
	v.doctors = doctors
	canBook := v.users.CurrentUser().IsPatient()

	cards := make([]fyne.CanvasObject, 0, len(doctors))
	for _, d := range doctors {
		cards = append(cards, v.card(d, canBook))
	}
	if len(doctors) == 0 {
		v.status.hint(v.localization.GetText(KeyNoDoctors))
	}
	v.grid.Objects = cards
	v.grid.Refresh()
}

func (v *DoctorsView) card(d model.Doctor, canBook bool) fyne.CanvasObject {
	loc := v.localization
	lines := []string{
		loc.GetText(KeySpecializations) + ": " + d.GetSpecializations(),
		loc.GetText(KeyExperience) + ": " + d.GetExperience(),
		loc.GetText(KeyQualifications) + ": " + orDash(d.Qualifications),
		loc.GetText(KeyFee) + ": " + d.GetFee(),
		loc.GetText(KeyAvailableDays) + ": " + d.GetAvailableDays(),
	}
	details := widget.NewLabel(strings.Join(lines, "\n"))
	details.Wrapping = fyne.TextWrapWord

	body := []fyne.CanvasObject{details}
	switch {
	case !d.IsAvailable:
		body = append(body, widget.NewLabelWithStyle(loc.GetText(KeyUnavailable), fyne.TextAlignLeading, fyne.TextStyle{Italic: true}))
	case canBook:
		doctor := d
		body = append(body, container.NewHBox(widget.NewButton(loc.GetText(KeyBook), func() {
			if v.onBook != nil {
				v.onBook(doctor, "")
			}
		})))
	}
	return widget.NewCard(IconDoctor+" "+d.Name, "", container.NewVBox(body...))
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return DashPlaceholder
	}
	return s
}
