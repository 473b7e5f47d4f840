package log

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Options is a function type that can be used to configure the logger
type Options func(*LogWrapper)

// WithLevel configures the log level. An unparsable level falls back to info.
// Debug and trace levels also report the calling function.
func WithLevel(level string) Options {
	return func(lw *LogWrapper) {
		l, err := logrus.ParseLevel(level)
		if err != nil {
			l = defaultLogLevel
		}
		lw.entry.Logger.SetLevel(l)

		formatter := &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "01-02|15:04:05.000",
			PadLevelText:    true,
		}
		if l == logrus.DebugLevel || l == logrus.TraceLevel {
			formatter.TimestampFormat = time.RFC3339Nano
			lw.entry.Logger.SetReportCaller(true)
		}
		lw.entry.Logger.SetFormatter(formatter)
	}
}

// WithOutput configures the output destination
func WithOutput(output io.Writer) Options {
	return func(lw *LogWrapper) {
		lw.entry.Logger.SetOutput(output)
	}
}

// WithFormatter configures the log formatter
func WithFormatter(formatter logrus.Formatter) Options {
	return func(lw *LogWrapper) {
		lw.entry.Logger.SetFormatter(formatter)
	}
}

// WithJSONFormatter emits one JSON object per record
func WithJSONFormatter() Options {
	return WithFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
}

// WithNullLogger sets the logger to discard all output
func WithNullLogger() Options {
	return func(lw *LogWrapper) {
		lw.entry.Logger.SetOutput(io.Discard)
	}
}
