// Package navigation holds the view state of the client: which top-level
// screen is showing and which dashboard tab is active. It has no UI
// dependencies so the rules can be tested on their own.
package navigation
