package ui

// Package ui contains the Fyne-based desktop user interface for the hospital client.
// RootUI switches between the landing screen and the dashboard as the session
// changes; each dashboard tab is a view that talks to the backend through
// api.Backend. All UI strings are localized via Localization.
