package ui

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/carepoint/hospital-desk/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	backendEntry   *widget.Entry
	timeoutEntry   *widget.Entry
	languageSelect *widget.Select
	languageCodes  map[string]string

	// onSaved receives whether the language and the backend URL changed
	onSaved func(languageChanged, backendChanged bool)
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// SetSavedCallback sets the function called after settings are stored
func (sd *SettingsDialog) SetSavedCallback(fn func(languageChanged, backendChanged bool)) {
	sd.onSaved = fn
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	loc := sd.localization

	sd.backendEntry = widget.NewEntry()
	sd.backendEntry.SetPlaceHolder(config.DefaultBackendURL)
	sd.backendEntry.Validator = func(s string) error {
		if strings.TrimSpace(s) != "" && config.NormalizeBackendURL(s) == "" {
			return errInvalidBackendURL
		}
		return nil
	}

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinRequestTimeoutSeconds) + "-" + strconv.Itoa(config.MaxRequestTimeoutSeconds))

	// Language selection, ordered by code with "system" first
	options := sd.settings.GetLanguageOptions()
	codes := make([]string, 0, len(options))
	for code := range options {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		if codes[i] == config.DefaultLanguage || codes[j] == config.DefaultLanguage {
			return codes[i] == config.DefaultLanguage
		}
		return codes[i] < codes[j]
	})
	labels := make([]string, 0, len(codes))
	for _, code := range codes {
		labels = append(labels, options[code])
		sd.languageCodes[options[code]] = code
	}
	sd.languageSelect = widget.NewSelect(labels, nil)

	form := container.NewVBox(
		widget.NewLabel(loc.GetText(KeyBackendURL)+":"),
		sd.backendEntry,
		widget.NewLabel(loc.GetText(KeyRequestTimeout)+":"),
		sd.timeoutEntry,
		widget.NewSeparator(),
		widget.NewLabel(IconLanguage+" "+loc.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		loc.GetText(KeySettings),
		loc.GetText(KeySave),
		loc.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsWidth, DialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.backendEntry.SetText(sd.settings.GetBackendURL())
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetRequestTimeout() / time.Second)))
	current := sd.settings.GetLanguage()
	for label, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(label)
		}
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	backendChanged := false
	if u := config.NormalizeBackendURL(sd.backendEntry.Text); u != "" && u != sd.settings.GetBackendURL() {
		sd.settings.SetBackendURL(u)
		backendChanged = true
	}

	if secs, err := strconv.Atoi(strings.TrimSpace(sd.timeoutEntry.Text)); err == nil {
		sd.settings.SetRequestTimeout(time.Duration(secs) * time.Second)
	}

	languageChanged := false
	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok && code != sd.settings.GetLanguage() {
		sd.settings.SetLanguage(code)
		languageChanged = true
	}

	msg := sd.localization.GetText(KeySettingsSaved)
	if backendChanged {
		msg += "\n" + sd.localization.GetText(KeyRestartRequired)
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), msg, sd.window)

	if sd.onSaved != nil {
		sd.onSaved(languageChanged, backendChanged)
	}
}

var errInvalidBackendURL = errors.New("backend URL must be an http(s) address")
