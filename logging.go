package altiumsch

import "github.com/sirupsen/logrus"

// Logger is the logging collaborator: best-effort recoveries (an
// unrecognized record kind or key, a pin trailer mismatch) are reported
// through it rather than failing the decode outright.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	// Unsupported reports a record key (or RECORD id) that this library has
	// no binding for: record is the owning record's kind name, key is the
	// wire key (or "RECORD" for an unrecognized record id), value is its
	// raw bytes (spec.md §4.5, §6).
	Unsupported(record, key string, value []byte)
}

// logrusLogger adapts a *logrus.Logger to the Logger interface; it is the
// Options default when no Logger is supplied.
type logrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger wraps l (or, if l is nil, a fresh logrus.Logger set to
// WarnLevel) as a Logger.
func NewLogrusLogger(l *logrus.Logger) Logger {
	if l == nil {
		l = logrus.New()
		l.SetLevel(logrus.WarnLevel)
	}
	return &logrusLogger{entry: logrus.NewEntry(l).WithField("component", "altiumsch")}
}

func (l *logrusLogger) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }
func (l *logrusLogger) Warnf(format string, args ...any)  { l.entry.Warnf(format, args...) }
func (l *logrusLogger) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }

func (l *logrusLogger) Unsupported(record, key string, value []byte) {
	l.entry.WithFields(logrus.Fields{
		"record": record,
		"key":    key,
		"value":  string(value),
	}).Warn("unsupported key")
}

// discardLogger silently drops everything. Options.logger never selects
// it: a nil Options.Logger yields the logrus-backed default.
type discardLogger struct{}

func (discardLogger) Debugf(string, ...any)              {}
func (discardLogger) Warnf(string, ...any)               {}
func (discardLogger) Errorf(string, ...any)               {}
func (discardLogger) Unsupported(string, string, []byte) {}
