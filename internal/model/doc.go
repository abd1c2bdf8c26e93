package model

// Package model defines the data structures exchanged with the hospital backend:
// users, appointments, doctors, symptom analysis results and the request bodies
// the client sends. Values are rendered as the backend returns them; the client
// never derives appointment state on its own.
