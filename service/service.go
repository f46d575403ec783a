// Package service runs long-lived process resources (audio device, terminal) through a common
// Init/Start/Stop lifecycle, ordered by declared dependencies.
package service

// Service is a process-lifetime subsystem
//
// Lifecycle:
//  1. Construction
//  2. Init(args...) - configuration from parsed flags/config
//  3. Start() - acquire devices, launch goroutines
//  4. Stop() - release everything, idempotent
type Service interface {
	// Name is the unique key in the hub
	Name() string

	// Dependencies names services that must start before this one
	Dependencies() []string

	Init(args ...any) error
	Start() error
	Stop() error
}
