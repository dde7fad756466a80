// Package logging provides structured JSON logging for the polynomial
// root-finding service.
package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"
)

// LogLevel represents the severity of a log entry.
type LogLevel string

const (
	// DebugLevel entries are voluminous and usually disabled in
	// production.
	DebugLevel LogLevel = "DEBUG"
	// InfoLevel is the default priority.
	InfoLevel LogLevel = "INFO"
	// WarnLevel entries are notable but need no individual review.
	WarnLevel LogLevel = "WARN"
	// ErrorLevel entries indicate a failed operation.
	ErrorLevel LogLevel = "ERROR"
	// FatalLevel logs the entry and then exits the process.
	FatalLevel LogLevel = "FATAL"
)

var levelRank = map[LogLevel]int{
	DebugLevel: 0,
	InfoLevel:  1,
	WarnLevel:  2,
	ErrorLevel: 3,
	FatalLevel: 4,
}

// Logger writes leveled JSON entries with accumulated fields.
type Logger struct {
	level  LogLevel
	output io.Writer
	fields map[string]interface{}
}

// New creates a Logger with the given minimum level and output.
func New(level LogLevel, output io.Writer) *Logger {
	return &Logger{
		level:  level,
		output: output,
		fields: make(map[string]interface{}),
	}
}

// WithFields returns a derived Logger carrying the extra fields.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Logger{level: l.level, output: l.output, fields: merged}
}

// WithField returns a derived Logger with one extra field.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(map[string]interface{}{key: value})
}

// WithError returns a derived Logger with the error field set.
func (l *Logger) WithError(err error) *Logger {
	return l.WithField("error", err.Error())
}

func (l *Logger) log(level LogLevel, msg string, fields map[string]interface{}) {
	if !l.shouldLog(level) {
		return
	}

	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file, line = "???", 0
	} else if parts := strings.Split(file, "/"); len(parts) > 2 {
		file = strings.Join(parts[len(parts)-2:], "/")
	}

	entry := map[string]interface{}{
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"level":     level,
		"message":   msg,
		"caller":    fmt.Sprintf("%s:%d", file, line),
	}
	for k, v := range l.fields {
		entry[k] = v
	}
	for k, v := range fields {
		entry[k] = v
	}

	data, err := json.Marshal(entry)
	if err != nil {
		// Fall back to plain text if a field resists JSON encoding.
		fmt.Fprintf(l.output, "%s [%s] %s: %+v\n",
			time.Now().Format(time.RFC3339), level, msg, fields)
		return
	}
	data = append(data, '\n')
	_, _ = l.output.Write(data)

	if level == FatalLevel {
		os.Exit(1)
	}
}

func (l *Logger) shouldLog(level LogLevel) bool {
	rank, ok := levelRank[level]
	if !ok {
		return false
	}
	current, ok := levelRank[l.level]
	if !ok {
		return false
	}
	return rank >= current
}

// Debug logs a message at DebugLevel.
func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	l.log(DebugLevel, msg, firstOf(fields))
}

// Info logs a message at InfoLevel.
func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	l.log(InfoLevel, msg, firstOf(fields))
}

// Warn logs a message at WarnLevel.
func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	l.log(WarnLevel, msg, firstOf(fields))
}

// Error logs a message at ErrorLevel.
func (l *Logger) Error(msg string, fields ...map[string]interface{}) {
	l.log(ErrorLevel, msg, firstOf(fields))
}

// Fatal logs a message at FatalLevel and exits.
func (l *Logger) Fatal(msg string, fields ...map[string]interface{}) {
	l.log(FatalLevel, msg, firstOf(fields))
}

func firstOf(fields []map[string]interface{}) map[string]interface{} {
	if len(fields) > 0 {
		return fields[0]
	}
	return nil
}

// CtxLogger carries a Logger through a context.
type CtxLogger struct {
	*Logger
}

type ctxLoggerKey struct{}

// FromContext returns the logger stored in ctx, or a default stderr
// logger when none is present.
func FromContext(ctx context.Context) *CtxLogger {
	if logger, ok := ctx.Value(ctxLoggerKey{}).(*CtxLogger); ok {
		return logger
	}
	return &CtxLogger{New(InfoLevel, os.Stderr)}
}

// WithContext returns a context holding this logger.
func (l *CtxLogger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, l)
}
