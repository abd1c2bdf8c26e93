package api

// Package api is a thin client for the hospital backend's JSON HTTP API.
// Every request carries the bearer token of the current session when one is
// active. Failures are reported as *Error values holding the message the
// backend sent, or a generic one, for direct display.
