package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapAdapter implements zapcore.Core on top of Logger so callers that
// expect a *zap.Logger can route their entries through this package.
type ZapAdapter struct {
	logger *Logger
}

// NewZapAdapter wraps the given Logger as a zapcore.Core.
func NewZapAdapter(logger *Logger) *ZapAdapter {
	return &ZapAdapter{logger: logger}
}

func fromZapLevel(level zapcore.Level) LogLevel {
	switch level {
	case zapcore.DebugLevel:
		return DebugLevel
	case zapcore.InfoLevel:
		return InfoLevel
	case zapcore.WarnLevel:
		return WarnLevel
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Enabled implements zapcore.Core.
func (a *ZapAdapter) Enabled(level zapcore.Level) bool {
	return a.logger.shouldLog(fromZapLevel(level))
}

func zapFieldValue(field zapcore.Field) interface{} {
	switch field.Type {
	case zapcore.StringType:
		return field.String
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type:
		return field.Integer
	case zapcore.BoolType:
		return field.Integer == 1
	default:
		return field.Interface
	}
}

// With implements zapcore.Core.
func (a *ZapAdapter) With(fields []zapcore.Field) zapcore.Core {
	f := make(map[string]interface{}, len(fields))
	for _, field := range fields {
		f[field.Key] = zapFieldValue(field)
	}
	return &ZapAdapter{logger: a.logger.WithFields(f)}
}

// Check implements zapcore.Core.
func (a *ZapAdapter) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if a.Enabled(ent.Level) {
		return ce.AddCore(ent, a)
	}
	return ce
}

// Write implements zapcore.Core.
func (a *ZapAdapter) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	f := make(map[string]interface{}, len(fields)+1)
	f["caller"] = ent.Caller.String()
	for _, field := range fields {
		f[field.Key] = zapFieldValue(field)
	}
	a.logger.log(fromZapLevel(ent.Level), ent.Message, f)
	return nil
}

// Sync implements zapcore.Core. The underlying writer is unbuffered.
func (a *ZapAdapter) Sync() error {
	return nil
}

// NewZapLogger returns a *zap.Logger that forwards to the given Logger.
func NewZapLogger(logger *Logger) *zap.Logger {
	return zap.New(NewZapAdapter(logger))
}
