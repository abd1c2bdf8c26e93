package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/carepoint/hospital-desk/internal/api"
	"github.com/carepoint/hospital-desk/internal/config"
	"github.com/carepoint/hospital-desk/internal/session"
	"github.com/carepoint/hospital-desk/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.carepoint.hospital-desk"
	AppName = "Hospital Desk"

	WindowWidth  = 900
	WindowHeight = 640

	// SessionCheckInterval is how often an idle window re-checks token expiry
	SessionCheckInterval = time.Minute
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	if err := config.LoadEnv(); err != nil {
		log.Printf("failed to load .env: %v", err)
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewHospitalTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	store := session.NewStore(myApp.Preferences())
	if s := store.Restore(); s != nil {
		log.Printf("Resuming session for %s", s.User.DisplayName())
	}

	backendURL := settings.ResolveBackendURL()
	log.Printf("Using backend %s", backendURL)
	client := api.NewClient(backendURL, store,
		api.WithHTTPClient(&http.Client{Timeout: settings.GetRequestTimeout()}))

	// Create and setup UI
	root := ui.NewRootUI(myWindow, settings, store, client, ui.GoRunner)
	stop := root.WatchSession(SessionCheckInterval)
	defer stop()

	// Show and run
	myWindow.ShowAndRun()
}
