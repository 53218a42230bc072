// Package logging holds the logger hook shared by the non-UI packages.
package logging

import (
	log "github.com/sirupsen/logrus"
)

// LoggerFunc defines a function signature for logging messages.
// This allows the ui package to route messages to its status log.
type LoggerFunc func(message string)

// Default returns a LoggerFunc writing info messages through logrus, tagged
// with component.
func Default(component string) LoggerFunc {
	entry := log.WithField("component", component)
	return func(message string) {
		entry.Info(message)
	}
}

// Tee returns a LoggerFunc that sends every message to each non-nil logger.
func Tee(loggers ...LoggerFunc) LoggerFunc {
	return func(message string) {
		for _, l := range loggers {
			if l != nil {
				l(message)
			}
		}
	}
}
