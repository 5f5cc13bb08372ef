package logging

import (
	"sync"
)

var (
	instance *Logger
	mu       sync.RWMutex
)

// InitLogger initializes the global logger with the given configuration.
// Safe to call more than once; the last configuration wins.
func InitLogger(config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	instance = logger
	return nil
}

// GetGlobalLogger returns the singleton logger instance.
// Falls back to a stderr-less default so tests don't need InitLogger.
func GetGlobalLogger() *Logger {
	mu.RLock()
	if instance != nil {
		defer mu.RUnlock()
		return instance
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		logger, err := NewLogger(&Config{
			File:       "./logs/api.log",
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     7,
		})
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
		instance = logger
	}
	return instance
}
