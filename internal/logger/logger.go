package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var base = build(levelFromEnv(), os.Getenv("LOG_FORMAT"))

func build(level zapcore.Level, format string) *zap.Logger {
	var cfg zap.Config
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	l, err := cfg.Build(zap.AddCallerSkip(2))
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func levelFromEnv() zapcore.Level {
	// Keep test output quiet unless a level is set explicitly.
	if os.Getenv("LOG_LEVEL") == "" && strings.Contains(os.Args[0], ".test") {
		return zapcore.WarnLevel
	}

	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func Debug(msg string, fields ...map[string]interface{}) {
	log(zapcore.DebugLevel, msg, fields...)
}

func Info(msg string, fields ...map[string]interface{}) {
	log(zapcore.InfoLevel, msg, fields...)
}

func Warn(msg string, fields ...map[string]interface{}) {
	log(zapcore.WarnLevel, msg, fields...)
}

func Error(msg string, fields ...map[string]interface{}) {
	log(zapcore.ErrorLevel, msg, fields...)
}

func log(level zapcore.Level, msg string, fields ...map[string]interface{}) {
	zfields := toZapFields(Sanitize(merge(fields...)))
	switch level {
	case zapcore.DebugLevel:
		base.Debug(msg, zfields...)
	case zapcore.InfoLevel:
		base.Info(msg, zfields...)
	case zapcore.WarnLevel:
		base.Warn(msg, zfields...)
	default:
		base.Error(msg, zfields...)
	}
}

func merge(fieldMaps ...map[string]interface{}) map[string]interface{} {
	if len(fieldMaps) == 0 {
		return nil
	}
	result := make(map[string]interface{})
	for _, fields := range fieldMaps {
		for k, v := range fields {
			result[k] = v
		}
	}
	return result
}

func toZapFields(fields map[string]interface{}) []zap.Field {
	zfields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zfields = append(zfields, zap.Any(k, v))
	}
	return zfields
}

var sensitiveKeys = []string{
	"key", "token", "secret", "password", "signature", "authorization", "auth",
}

// Sanitize masks values whose keys look like credentials so Stripe and EmailJS
// secrets never land in the log stream in full.
func Sanitize(fields map[string]interface{}) map[string]interface{} {
	if fields == nil {
		return nil
	}

	sanitized := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if !sensitive(k) {
			sanitized[k] = v
			continue
		}

		str, ok := v.(string)
		if !ok || len(str) <= 8 {
			sanitized[k] = "[REDACTED]"
			continue
		}
		sanitized[k] = str[:3] + "..." + str[len(str)-3:]
	}

	return sanitized
}

func sensitive(key string) bool {
	lower := strings.ToLower(key)
	for _, s := range sensitiveKeys {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}
