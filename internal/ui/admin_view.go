package ui

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/carepoint/hospital-desk/internal/api"
	"github.com/carepoint/hospital-desk/internal/model"
)

// ErrInvalidNumber is returned when a numeric profile field does not parse
var ErrInvalidNumber = errors.New("invalid number")

// AdminView holds the administrator actions
type AdminView struct {
	backend      api.Backend
	localization *Localization
	run          Runner

	sampleBtn    *widget.Button
	sampleStatus *notice

	userIDEntry         *widget.Entry
	specialtiesEntry    *widget.Entry
	experienceEntry     *widget.Entry
	qualificationsEntry *widget.Entry
	feeEntry            *widget.Entry
	daysEntry           *widget.Entry
	createBtn           *widget.Button
	createStatus        *notice

	content fyne.CanvasObject
}

// NewAdminView creates the admin tab
func NewAdminView(backend api.Backend, localization *Localization, run Runner) *AdminView {
	v := &AdminView{
		backend:             backend,
		localization:        localization,
		run:                 run,
		sampleStatus:        newNotice(),
		userIDEntry:         widget.NewEntry(),
		specialtiesEntry:    widget.NewEntry(),
		experienceEntry:     widget.NewEntry(),
		qualificationsEntry: widget.NewEntry(),
		feeEntry:            widget.NewEntry(),
		daysEntry:           widget.NewEntry(),
		createStatus:        newNotice(),
	}
	loc := localization

	v.sampleBtn = widget.NewButton(loc.GetText(KeyCreateSampleData), v.CreateSampleData)
	v.sampleBtn.Importance = widget.HighImportance
	hint := widget.NewLabel(loc.GetText(KeySampleDataHint))
	hint.Wrapping = fyne.TextWrapWord
	sampleCard := widget.NewCard(loc.GetText(KeyCreateSampleData), "",
		container.NewVBox(hint, container.NewHBox(v.sampleBtn), v.sampleStatus.object()))

	v.specialtiesEntry.SetPlaceHolder("Cardiology, Internal Medicine")
	v.experienceEntry.SetPlaceHolder("10")
	v.feeEntry.SetPlaceHolder("150.00")
	v.daysEntry.SetPlaceHolder("Monday, Wednesday, Friday")

	v.createBtn = widget.NewButton(loc.GetText(KeyCreateDoctor), v.CreateDoctor)
	form := widget.NewForm(
		widget.NewFormItem(loc.GetText(KeyDoctorUserID), v.userIDEntry),
		widget.NewFormItem(loc.GetText(KeySpecializations), v.specialtiesEntry),
		widget.NewFormItem(loc.GetText(KeyExperience), v.experienceEntry),
		widget.NewFormItem(loc.GetText(KeyQualifications), v.qualificationsEntry),
		widget.NewFormItem(loc.GetText(KeyFee), v.feeEntry),
		widget.NewFormItem(loc.GetText(KeyAvailableDays), v.daysEntry),
	)
	doctorCard := widget.NewCard(loc.GetText(KeyCreateDoctor), "",
		container.NewVBox(form, container.NewHBox(v.createBtn), v.createStatus.object()))

	v.content = container.NewVScroll(container.NewVBox(sampleCard, doctorCard))
	return v
}

// Content returns the tab body
func (v *AdminView) Content() fyne.CanvasObject {
	return v.content
}

// Load has nothing to fetch
func (v *AdminView) Load() {}

// CreateSampleData asks the backend to seed its demo accounts
func (v *AdminView) CreateSampleData() {
	setBusy(v.sampleBtn, v.sampleStatus, true, v.localization.GetText(KeyWorking))
	async(v.run, func() (*model.ActionResult, error) {
		return v.backend.CreateSampleData(context.Background())
	}, func(res *model.ActionResult, err error) {
		setBusy(v.sampleBtn, v.sampleStatus, false, "")
		if err != nil {
			v.sampleStatus.fail(api.Message(err, v.localization.GetText(KeyRequestFailed)))
			return
		}
		log.Printf("Sample data: %s", res.Message)
		v.sampleStatus.info(res.Message)
	})
}

// splitList splits a comma-separated field, dropping empty items
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Profile builds the doctor profile from the form
func (v *AdminView) Profile() (model.DoctorProfile, error) {
	p := model.DoctorProfile{
		UserID:          strings.TrimSpace(v.userIDEntry.Text),
		Specializations: splitList(v.specialtiesEntry.Text),
		Qualifications:  strings.TrimSpace(v.qualificationsEntry.Text),
		AvailableDays:   splitList(v.daysEntry.Text),
		AvailableHours:  map[string][]string{},
	}
	if p.UserID == "" || len(p.Specializations) == 0 {
		return p, ErrMissingFields
	}

	if s := strings.TrimSpace(v.experienceEntry.Text); s != "" {
		years, err := strconv.Atoi(s)
		if err != nil || years < 0 {
			return p, ErrInvalidNumber
		}
		p.ExperienceYears = years
	}
	if s := strings.TrimSpace(v.feeEntry.Text); s != "" {
		fee, err := strconv.ParseFloat(s, 64)
		if err != nil || fee < 0 {
			return p, ErrInvalidNumber
		}
		p.ConsultationFee = fee
	}
	return p, nil
}

// CreateDoctor submits the doctor profile form
func (v *AdminView) CreateDoctor() {
	profile, err := v.Profile()
	switch {
	case errors.Is(err, ErrMissingFields):
		v.createStatus.fail(v.localization.GetText(KeyFieldsRequired))
		return
	case err != nil:
		v.createStatus.fail(v.localization.GetText(KeyInvalidNumber))
		return
	}

	setBusy(v.createBtn, v.createStatus, true, v.localization.GetText(KeyWorking))
	async(v.run, func() (*model.ActionResult, error) {
		return v.backend.CreateDoctor(context.Background(), profile)
	}, func(res *model.ActionResult, err error) {
		setBusy(v.createBtn, v.createStatus, false, "")
		if err != nil {
			v.createStatus.fail(api.Message(err, v.localization.GetText(KeyRequestFailed)))
			return
		}
		log.Printf("Created doctor profile %s", res.DoctorID)
		v.createStatus.info(res.Message)
		for _, e := range []*widget.Entry{v.userIDEntry, v.specialtiesEntry, v.experienceEntry, v.qualificationsEntry, v.feeEntry, v.daysEntry} {
			e.SetText("")
		}
	})
}
