// Package env keeps names of environment variables with special significance to
// repoman.
package env

// Environment variables with special significance to repoman.
const (
	HOME            = "HOME"
	XDG_CONFIG_HOME = "XDG_CONFIG_HOME"
)
