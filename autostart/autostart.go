// Package autostart toggles launching the overlay when the user logs in.
package autostart

const appName = "KeyVisualizer"
