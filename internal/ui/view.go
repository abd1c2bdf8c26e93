package ui

import (
	"fyne.io/fyne/v2"
)

// View is one dashboard tab
type View interface {
	// Content returns the tab body
	Content() fyne.CanvasObject
	// Load refreshes the view's data from the backend. It runs every
	// time the tab becomes visible.
	Load()
}
