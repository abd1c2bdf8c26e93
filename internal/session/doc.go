package session

// Package session holds the locally persisted proof of authentication: the
// backend access token together with the user profile it was issued for.
// Both values live in the application's Preferences store so a session
// survives restarts, and both are dropped as soon as the token expires.
