package logger

import "github.com/baditaflorin/go_fuzzy_ratio/internal/ports"

type nopLogger struct{}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() ports.Logger { return nopLogger{} }

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Close() error                 { return nil }
