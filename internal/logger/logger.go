// Package logger holds the process-wide structured logger.  Init is
// called once from main; everything else obtains the logger through L,
// which falls back to a development logger so tests and tools work
// without explicit initialization.
package logger

import (
	"log"

	"go.uber.org/zap"
)

var global *zap.SugaredLogger

// Init builds the global logger.  Production gets JSON output at info
// level, anything else a human-readable development logger at debug.
func Init(env string) {
	var (
		l   *zap.Logger
		err error
	)
	if env == "prod" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	global = l.Sugar()
}

// L returns the global sugared logger.
func L() *zap.SugaredLogger {
	if global == nil {
		l, _ := zap.NewDevelopment()
		global = l.Sugar()
	}
	return global
}

// Sync flushes buffered log entries; call on shutdown.
func Sync() {
	if global != nil {
		_ = global.Sync()
	}
}
