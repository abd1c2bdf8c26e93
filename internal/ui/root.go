package ui

import (
	"context"
	"image/color"
	"log"
	"sort"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/carepoint/hospital-desk/internal/api"
	"github.com/carepoint/hospital-desk/internal/config"
	"github.com/carepoint/hospital-desk/internal/model"
	"github.com/carepoint/hospital-desk/internal/navigation"
	"github.com/carepoint/hospital-desk/internal/session"
)

// RootUI represents the main UI structure. It shows the landing screen or
// the dashboard depending on the session, and rebuilds the dashboard when
// a different user signs in.
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	session      *session.Store
	backend      api.Backend
	router       *navigation.Router
	run          Runner

	screen       navigation.Screen
	renderedUser string

	// loggingOut is set while Logout runs; the store callback may read it
	// from a request goroutine
	loggingOut atomic.Bool

	// Auth dialogs
	authDialog   dialog.Dialog
	loginForm    *LoginForm
	registerForm *RegisterForm

	dash *dashboard
}

// NewRootUI creates and initializes the main UI. run executes backend calls;
// nil means one goroutine per call.
func NewRootUI(window fyne.Window, settings *config.Settings, store *session.Store, backend api.Backend, run Runner) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		session:      store,
		backend:      backend,
		router:       navigation.NewRouter(store),
		run:          run.orDefault(),
		screen:       -1,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.router.SetChangeCallback(ui.onStateChange)
	store.SetChangeCallback(ui.onSessionChange)

	ui.createMenu()
	ui.router.Sync()

	log.Printf("RootUI initialized, backend client: %v", backend != nil)
	return ui
}

// State returns the current view state
func (ui *RootUI) State() navigation.State {
	return ui.router.State()
}

// SelectTab switches the dashboard to tab
func (ui *RootUI) SelectTab(tab navigation.Tab) error {
	return ui.router.Select(tab)
}

// WatchSession re-checks the session every interval so an expiring token
// returns the window to the landing screen. Call the returned func to stop.
func (ui *RootUI) WatchSession(interval time.Duration) (stop func()) {
	ctx, cancel := context.WithCancel(context.Background())
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fyne.Do(func() {
					ui.router.Sync()
				})
			}
		}
	}()
	return cancel
}

// onSessionChange runs after login, logout and forced expiry. Expiry can be
// detected on a request goroutine, so the UI work is handed to fyne.Do.
func (ui *RootUI) onSessionChange(s *session.Session) {
	expired := s == nil && !ui.loggingOut.Load()
	fyne.Do(func() {
		wasDashboard := ui.screen == navigation.ScreenDashboard
		ui.router.Sync()
		if expired && wasDashboard {
			dialog.ShowInformation(ui.localization.GetText(KeyLogin), ui.localization.GetText(KeySessionExpired), ui.window)
		}
	})
}

// onStateChange renders the screen for state
func (ui *RootUI) onStateChange(state navigation.State) {
	switch state.Screen {
	case navigation.ScreenLanding:
		if ui.screen != navigation.ScreenLanding {
			ui.showLanding()
		}
	case navigation.ScreenDashboard:
		if ui.screen != navigation.ScreenDashboard || ui.renderedUser != state.User.ID {
			ui.showDashboard(state)
			return
		}
		ui.dash.show(state.Tab)
	}
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	logoutItem := fyne.NewMenuItem(ui.localization.GetText(KeyLogout), ui.Logout)

	languages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(languages[code], func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyAppTitle), settingsItem, logoutItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts rebuilds the visible screen with the current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.createMenu()
	ui.screen = -1
	ui.renderedUser = ""
	ui.onStateChange(ui.router.State())
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	sd := NewSettingsDialog(ui.settings, ui.localization, ui.window)
	sd.SetSavedCallback(func(languageChanged, backendChanged bool) {
		if languageChanged {
			ui.localization.SetLanguage(ui.settings.GetLanguage())
			ui.refreshUITexts()
		}
		if backendChanged {
			log.Printf("Backend URL changed to %s", ui.settings.GetBackendURL())
		}
	})
	sd.Show()
}

// showLanding renders the unauthenticated screen
func (ui *RootUI) showLanding() {
	ui.screen = navigation.ScreenLanding
	ui.renderedUser = ""
	ui.dash = nil
	loc := ui.localization

	title := widget.NewLabelWithStyle(loc.GetText(KeyWelcome), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	body := widget.NewLabel(loc.GetText(KeyWelcomeBody))
	body.Wrapping = fyne.TextWrapWord
	body.Alignment = fyne.TextAlignCenter

	loginBtn := widget.NewButton(loc.GetText(KeyLogin), func() { ui.OpenLogin() })
	loginBtn.Importance = widget.HighImportance
	registerBtn := widget.NewButton(loc.GetText(KeyRegister), func() { ui.OpenRegister() })
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	items := []fyne.CanvasObject{}
	if logo, err := LoadLogoResource(); err == nil {
		img := canvas.NewImageFromResource(logo)
		img.SetMinSize(fyne.NewSize(64, 64))
		img.FillMode = canvas.ImageFillContain
		items = append(items, img)
	}
	items = append(items, title, body, container.NewGridWithColumns(2, loginBtn, registerBtn))

	// fixed-width column keeps the wrapped welcome text readable
	column := canvas.NewRectangle(color.Transparent)
	column.SetMinSize(fyne.NewSize(LandingWidth, 0))
	panel := container.NewStack(column, container.NewVBox(items...))

	ui.window.SetContent(container.NewBorder(
		container.NewHBox(layout.NewSpacer(), settingsBtn),
		nil, nil, nil,
		container.NewCenter(panel),
	))
	log.Printf("Showing landing screen")
}

// showDashboard renders the authenticated screen for state
func (ui *RootUI) showDashboard(state navigation.State) {
	ui.closeAuthDialog()
	ui.screen = navigation.ScreenDashboard
	ui.renderedUser = state.User.ID

	ui.dash = newDashboard(ui, state)
	ui.window.SetContent(ui.dash.content)
	ui.dash.show(state.Tab)
	log.Printf("Showing dashboard for %s (%s)", state.User.ID, state.User.UserType)
}

// OpenLogin shows the login dialog and returns its form
func (ui *RootUI) OpenLogin() *LoginForm {
	form := NewLoginForm(ui.localization)
	form.OnSubmit = func(req model.LoginRequest) {
		form.SetBusy(true)
		async(ui.run, func() (*model.AuthResponse, error) {
			return ui.backend.Login(context.Background(), req)
		}, func(resp *model.AuthResponse, err error) {
			if err == nil {
				err = ui.startSession(resp)
			}
			if err != nil {
				form.ShowError(api.Message(err, ui.localization.GetText(KeyRequestFailed)))
			}
		})
	}
	ui.loginForm = form
	ui.showAuthDialog(ui.localization.GetText(KeyLogin), form.Content())
	return form
}

// OpenRegister shows the registration dialog and returns its form
func (ui *RootUI) OpenRegister() *RegisterForm {
	form := NewRegisterForm(ui.localization)
	form.OnSubmit = func(req model.RegisterRequest) {
		form.SetBusy(true)
		async(ui.run, func() (*model.AuthResponse, error) {
			return ui.backend.Register(context.Background(), req)
		}, func(resp *model.AuthResponse, err error) {
			if err == nil {
				err = ui.startSession(resp)
			}
			if err != nil {
				form.ShowError(api.Message(err, ui.localization.GetText(KeyRequestFailed)))
			}
		})
	}
	ui.registerForm = form
	ui.showAuthDialog(ui.localization.GetText(KeyRegister), form.Content())
	return form
}

// startSession stores the credentials; the session callback moves the window to the dashboard
func (ui *RootUI) startSession(resp *model.AuthResponse) error {
	return ui.session.Login(resp.AccessToken, resp.User)
}

func (ui *RootUI) showAuthDialog(title string, content fyne.CanvasObject) {
	ui.closeAuthDialog()
	d := dialog.NewCustom(title, ui.localization.GetText(KeyCancel), content, ui.window)
	d.Resize(fyne.NewSize(DialogWidth, 0))
	ui.authDialog = d
	d.Show()
}

func (ui *RootUI) closeAuthDialog() {
	if ui.authDialog != nil {
		ui.authDialog.Hide()
		ui.authDialog = nil
	}
}

// Logout ends the session and returns to the landing screen
func (ui *RootUI) Logout() {
	ui.loggingOut.Store(true)
	defer ui.loggingOut.Store(false)
	ui.session.Logout()
}

// bookingFlow returns a booking flow that jumps to the appointments tab on success
func (ui *RootUI) bookingFlow() *bookingFlow {
	return &bookingFlow{
		backend:      ui.backend,
		localization: ui.localization,
		window:       ui.window,
		run:          ui.run,
		onBooked: func(res model.ActionResult) {
			dialog.ShowInformation(ui.localization.GetText(KeyBookAppointment), ui.localization.GetText(KeyBooked), ui.window)
			if err := ui.SelectTab(navigation.TabAppointments); err != nil {
				log.Printf("Cannot show appointments after booking: %v", err)
			}
		},
	}
}
