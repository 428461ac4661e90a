// Package log is the process-wide zap logger and its package-level helpers.
package log

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	mu         sync.RWMutex
	sugared    *zap.SugaredLogger
	baseLogger *zap.Logger
)

// Init builds the package logger. debug selects zap's development config
// (console output, debug level) over the production JSON config.
func Init(debug bool) error {
	var (
		zapLogger *zap.Logger
		err       error
	)
	if debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		zapLogger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}
	set(zapLogger)
	return nil
}

// UseNop silences all logging. Tests call it to keep output quiet.
func UseNop() {
	set(zap.NewNop())
}

func set(l *zap.Logger) {
	mu.Lock()
	baseLogger = l
	sugared = l.Sugar()
	mu.Unlock()
}

func logger() *zap.SugaredLogger {
	mu.RLock()
	l := sugared
	mu.RUnlock()
	if l != nil {
		return l
	}
	// Fallback logger if not initialized
	fallback, err := zap.NewProduction(zap.AddCallerSkip(1))
	if err != nil {
		fallback = zap.NewNop()
	}
	set(fallback)
	return logger()
}

// GetSugaredLogger returns the logger for components that take one injected.
func GetSugaredLogger() *zap.SugaredLogger {
	return logger()
}

// GetZapLogger returns the structured logger behind the sugared one.
func GetZapLogger() *zap.Logger {
	logger()
	mu.RLock()
	defer mu.RUnlock()
	return baseLogger
}

// Sync flushes any buffered log entries
func Sync() {
	_ = logger().Sync()
}

func Debugf(template string, args ...interface{}) {
	logger().Debugf(template, args...)
}

func Debugw(msg string, keysAndValues ...interface{}) {
	logger().Debugw(msg, keysAndValues...)
}

func Info(args ...interface{}) {
	logger().Info(args...)
}

func Infof(template string, args ...interface{}) {
	logger().Infof(template, args...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	logger().Infow(msg, keysAndValues...)
}

func Warnf(template string, args ...interface{}) {
	logger().Warnf(template, args...)
}

func Warnw(msg string, keysAndValues ...interface{}) {
	logger().Warnw(msg, keysAndValues...)
}

func Error(args ...interface{}) {
	logger().Error(args...)
}

func Errorf(template string, args ...interface{}) {
	logger().Errorf(template, args...)
}

func Errorw(msg string, keysAndValues ...interface{}) {
	logger().Errorw(msg, keysAndValues...)
}

// Fatalf logs and exits the process.
func Fatalf(template string, args ...interface{}) {
	logger().Fatalf(template, args...)
}
