// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// It utilizes the afero library so that configuration, logs and remembered queries
// can be redirected to an in-memory backend during tests.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// Use replaces the active backend.
func Use(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	Use(afero.NewOsFs())
}

// SetMemMapFs switches to a volatile in-memory backend for unit tests.
func SetMemMapFs() {
	Use(afero.NewMemMapFs())
}
