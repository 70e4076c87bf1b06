package logger

import "dao_networks/internal/app/port"

// slogAdapter satisfies port.Logger by forwarding to the package level helpers,
// so services log through whatever Init installed.
type slogAdapter struct{}

// NewSlogAdapter returns a port.Logger backed by the global logger.
func NewSlogAdapter() port.Logger {
	return &slogAdapter{}
}

// Info forwards to the package Info with the same key/value pairs.
func (a *slogAdapter) Info(msg string, args ...any) {
	Info(msg, args...)
}

// Debug forwards to the package Debug. It is dropped unless the level is debug.
func (a *slogAdapter) Debug(msg string, args ...any) {
	Debug(msg, args...)
}

// Warn forwards to the package Warn.
func (a *slogAdapter) Warn(msg string, args ...any) {
	Warn(msg, args...)
}

// Error forwards to the package Error. Unlike Fatal it does not exit.
func (a *slogAdapter) Error(msg string, args ...any) {
	Error(msg, args...)
}
