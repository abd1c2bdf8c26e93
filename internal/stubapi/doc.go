// Package stubapi is an in-memory stand-in for the hospital backend.
//
// It serves the same JSON contract under /api as the production service:
// registration and login with HS256 tokens, rule-based symptom analysis,
// appointment booking and updates, the doctor directory and sample data.
// State lives in memory and is lost when the process exits.
package stubapi
