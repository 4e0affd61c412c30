package logger

import (
	"os"

	"go.uber.org/zap"
)

var log *zap.Logger

// Init builds the process-wide logger. Production encoding when ENV=production,
// human-readable otherwise. Calling it twice replaces the logger, which only
// happens in tests.
func Init() {
	var err error
	if os.Getenv("ENV") == "production" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
}

// L returns the global logger, initializing a default one if needed.
func L() *zap.Logger {
	if log == nil {
		Init()
	}
	return log
}

// Sync flushes buffered entries; call it on shutdown.
func Sync() {
	_ = L().Sync()
}
