package logger

import (
	"github.com/sirupsen/logrus"
)

type logrusAdapter struct {
	*logrus.Logger
}

type logrusEntryAdapter struct {
	*logrus.Entry
}

// NewLogrus wraps l. A nil l is replaced with logrus.StandardLogger()
func NewLogrus(l *logrus.Logger) Logger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return logrusAdapter{Logger: l}
}

// LogrusLevel maps l onto the logrus level scale. Unknown values map to info.
func LogrusLevel(l Level) logrus.Level {
	switch l {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelError:
		return logrus.ErrorLevel
	case LevelTrace:
		return logrus.TraceLevel
	case LevelWarn:
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}

func (l logrusAdapter) Logf(level Level, format string, args ...any) {
	l.Logger.Logf(LogrusLevel(level), format, args...)
}

func (l logrusAdapter) Log(level Level, args ...any) {
	l.Logger.Log(LogrusLevel(level), args...)
}

func (l logrusAdapter) With(field string, value any) Logger {
	return logrusEntryAdapter{Entry: l.Logger.WithField(field, value)}
}

func (l logrusAdapter) WithFields(fields map[string]any) Logger {
	return logrusEntryAdapter{Entry: l.Logger.WithFields(fields)}
}

func (l logrusEntryAdapter) Logf(level Level, format string, args ...any) {
	l.Entry.Logf(LogrusLevel(level), format, args...)
}

func (l logrusEntryAdapter) Log(level Level, args ...any) {
	l.Entry.Log(LogrusLevel(level), args...)
}

func (l logrusEntryAdapter) With(field string, value any) Logger {
	return logrusEntryAdapter{Entry: l.Entry.WithField(field, value)}
}

func (l logrusEntryAdapter) WithFields(fields map[string]any) Logger {
	return logrusEntryAdapter{Entry: l.Entry.WithFields(fields)}
}

var (
	_ Logger = logrusAdapter{}
	_ Logger = logrusEntryAdapter{}
)
