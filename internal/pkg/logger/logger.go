package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/piresc/salesboard/internal/pkg/models"
	"github.com/sirupsen/logrus"
)

// AppLogger is our custom logger that supports multiple outputs
type AppLogger struct {
	log      *logrus.Logger
	filePath string
	file     *os.File
}

// NewAppLogger creates a new application logger
func NewAppLogger(config models.LoggerConfig) (*AppLogger, error) {
	log := logrus.New()

	// Set log level
	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	// Set JSON formatter for structured logging
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	appLogger := &AppLogger{
		log: log,
	}

	// Setup file output if requested
	if config.Type == "file" && config.FilePath != "" {
		if err := appLogger.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
	}

	return appLogger, nil
}

// setupFileOutput configures file output for the logger
func (al *AppLogger) setupFileOutput(filePath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	// Open log file
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	al.filePath = filePath
	al.file = file

	// Set output to both stdout and file
	al.log.SetOutput(io.MultiWriter(os.Stdout, file))

	return nil
}

// Close closes the log file
func (al *AppLogger) Close() error {
	if al.file != nil {
		return al.file.Close()
	}
	return nil
}

func (al *AppLogger) withFields(fields []Field) *logrus.Entry {
	logrusFields := make(logrus.Fields, len(fields))
	for _, f := range fields {
		logrusFields[f.Key] = f.Value
	}
	return al.log.WithFields(logrusFields)
}

// Debug logs a debug message
func (al *AppLogger) Debug(msg string, fields ...Field) {
	al.withFields(fields).Debug(msg)
}

// Info logs an info message
func (al *AppLogger) Info(msg string, fields ...Field) {
	al.withFields(fields).Info(msg)
}

// Warn logs a warning message
func (al *AppLogger) Warn(msg string, fields ...Field) {
	al.withFields(fields).Warn(msg)
}

// Error logs an error message
func (al *AppLogger) Error(msg string, fields ...Field) {
	al.withFields(fields).Error(msg)
}

// Fatal logs a fatal message and exits
func (al *AppLogger) Fatal(msg string, fields ...Field) {
	al.withFields(fields).Fatal(msg)
}
