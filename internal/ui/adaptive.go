package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// isMobile reports whether the app runs on a phone or tablet
func isMobile() bool {
	return fyne.CurrentDevice().IsMobile()
}

// cardColumns returns how many cards fit side by side on this device
func cardColumns() int {
	if isMobile() {
		return MobileCardColumns
	}
	return DesktopCardColumns
}

// newCardGrid returns a grid for cards. On mobile it follows the device
// orientation.
func newCardGrid() *fyne.Container {
	return container.NewAdaptiveGrid(cardColumns())
}
