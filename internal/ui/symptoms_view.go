package ui

import (
	"context"
	"errors"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/carepoint/hospital-desk/internal/api"
	"github.com/carepoint/hospital-desk/internal/model"
	"github.com/carepoint/hospital-desk/internal/navigation"
)

// ErrBlankSymptoms is returned for an empty or whitespace-only description
var ErrBlankSymptoms = errors.New("symptoms are blank")

// ValidateSymptoms trims text and rejects blank input
func ValidateSymptoms(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrBlankSymptoms
	}
	return text, nil
}

// SymptomView submits free-text symptoms for analysis and renders the recommendation
type SymptomView struct {
	backend      api.Backend
	users        navigation.SessionSource
	localization *Localization
	run          Runner

	entry      *widget.Entry
	analyzeBtn *widget.Button
	status     *notice
	results    *fyne.Container
	badge      *Badge
	content    fyne.CanvasObject

	analysis *model.SymptomAnalysis
	onBook   func(doctor model.Doctor, symptoms string)
}

// NewSymptomView creates the symptom tab
func NewSymptomView(backend api.Backend, users navigation.SessionSource, localization *Localization, run Runner) *SymptomView {
	v := &SymptomView{
		backend:      backend,
		users:        users,
		localization: localization,
		run:          run,
		entry:        widget.NewMultiLineEntry(),
		status:       newNotice(),
		results:      container.NewVBox(),
	}
	v.entry.SetPlaceHolder(localization.GetText(KeySymptomsHint))
	v.entry.Wrapping = fyne.TextWrapWord
	v.entry.SetMinRowsVisible(SymptomEntryRows)

	v.analyzeBtn = widget.NewButton(localization.GetText(KeyAnalyze), v.Analyze)
	v.analyzeBtn.Importance = widget.HighImportance

	form := container.NewVBox(
		widget.NewLabelWithStyle(localization.GetText(KeyDescribeSymptoms), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		v.entry,
		container.NewHBox(v.analyzeBtn),
		v.status.object(),
	)
	v.content = container.NewBorder(form, nil, nil, nil, container.NewVScroll(v.results))
	return v
}

// SetBookCallback sets the handler for the Book buttons of recommended doctors
func (v *SymptomView) SetBookCallback(fn func(doctor model.Doctor, symptoms string)) {
	v.onBook = fn
}

// Content returns the tab body
func (v *SymptomView) Content() fyne.CanvasObject {
	return v.content
}

// Load has nothing to fetch; it clears stale messages
func (v *SymptomView) Load() {
	if !v.status.isBusy() {
		v.status.clear()
	}
}

// Analyze submits the entered symptoms. Blank input is rejected locally
// without contacting the backend.
func (v *SymptomView) Analyze() {
	symptoms, err := ValidateSymptoms(v.entry.Text)
	if err != nil {
		v.status.fail(v.localization.GetText(KeyEnterSymptoms))
		return
	}

	req := model.SymptomRequest{Symptoms: symptoms}
	if user := v.users.CurrentUser(); user != nil {
		req.PatientID = user.ID
	}

	v.analyzeBtn.Disable()
	v.status.busy(v.localization.GetText(KeyAnalyzing))
	async(v.run, func() (*model.SymptomAnalysis, error) {
		return v.backend.AnalyzeSymptoms(context.Background(), req)
	}, func(res *model.SymptomAnalysis, err error) {
		v.analyzeBtn.Enable()
		if err != nil {
			v.status.fail(api.Message(err, v.localization.GetText(KeyAnalysisFailed)))
			return
		}
		v.status.clear()
		v.render(res)
	})
}

// Analysis returns the last rendered analysis, or nil
func (v *SymptomView) Analysis() *model.SymptomAnalysis {
	return v.analysis
}

// UrgencyBadge returns the badge of the last rendered analysis, or nil
func (v *SymptomView) UrgencyBadge() *Badge {
	return v.badge
}

func (v *SymptomView) render(res *model.SymptomAnalysis) {
	v.analysis = res
	v.badge = NewUrgencyBadge(res.UrgencyLevel)
	loc := v.localization

	analysis := widget.NewLabel(res.Analysis)
	analysis.Wrapping = fyne.TextWrapWord

	objects := []fyne.CanvasObject{
		widget.NewSeparator(),
		container.NewHBox(
			widget.NewLabelWithStyle(loc.GetText(KeyAnalysis), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			widget.NewLabel(loc.GetText(KeyUrgency)+":"),
			v.badge,
		),
		analysis,
	}

	if len(res.RecommendedSpecialties) > 0 {
		specialties := widget.NewLabel(strings.Join(res.RecommendedSpecialties, ", "))
		specialties.Wrapping = fyne.TextWrapWord
		objects = append(objects,
			widget.NewLabelWithStyle(loc.GetText(KeySpecialties), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			specialties,
		)
	}

	objects = append(objects,
		widget.NewLabelWithStyle(loc.GetText(KeyRecommendedDoctors), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	if len(res.RecommendedDoctors) == 0 {
		objects = append(objects, widget.NewLabel(loc.GetText(KeyNoDoctorsMatched)))
	}
	canBook := v.users.CurrentUser().IsPatient()
	for _, rec := range res.RecommendedDoctors {
		objects = append(objects, v.recommendationCard(rec, canBook))
	}

	if res.AdditionalNotes != "" {
		notes := widget.NewLabelWithStyle(res.AdditionalNotes, fyne.TextAlignLeading, fyne.TextStyle{Italic: true})
		notes.Wrapping = fyne.TextWrapWord
		objects = append(objects,
			widget.NewLabelWithStyle(loc.GetText(KeyNotes), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			notes,
		)
	}

	v.results.Objects = objects
	v.results.Refresh()
}

func (v *SymptomView) recommendationCard(rec model.DoctorRecommendation, canBook bool) fyne.CanvasObject {
	doctor := rec.Doctor
	details := widget.NewLabel(strings.Join([]string{
		rec.MatchReason,
		doctor.GetSpecializations(),
		doctor.GetExperience(),
		doctor.GetFee(),
	}, MiddleDotSeparator))
	details.Wrapping = fyne.TextWrapWord

	body := []fyne.CanvasObject{details}
	if canBook {
		symptoms := strings.TrimSpace(v.entry.Text)
		bookBtn := widget.NewButton(v.localization.GetText(KeyBook), func() {
			if v.onBook != nil {
				v.onBook(doctor, symptoms)
			}
		})
		body = append(body, container.NewHBox(bookBtn))
	}
	return widget.NewCard(IconDoctor+" "+doctor.Name, doctor.Qualifications, container.NewVBox(body...))
}
