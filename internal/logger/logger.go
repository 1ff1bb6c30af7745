package logger

import (
	"go.uber.org/zap"
)

// NewNamed creates a named zap logger configured for the given environment.
// Development gets console output with stack traces; everything else gets
// production JSON.
func NewNamed(appEnv, name string) (*zap.Logger, error) {
	var log *zap.Logger
	var err error

	if appEnv == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	return log.Named(name), nil
}
