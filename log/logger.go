package log

import (
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
)

const (
	// default log level
	defaultLogLevel = logrus.InfoLevel

	// log file name
	globalLogFileName = "global.log"
	// default log directory
	logDir = "nodelogs"
	// default log file params
	defaultLogMaxSize    = 100 // maximum file size before rotation, in MB
	defaultLogMaxBackups = 3   // maximum number of old log files to keep
	defaultLogMaxAge     = 28  // maximum number of days to retain old log files
)

var (
	// Global is the logger used by the commands and packages that are not
	// handed a logger of their own.
	Global Logger

	// default logfile path
	defaultLogFilePath = "./" + logDir + "/" + globalLogFileName
)

func init() {
	Global = New(WithLevel(defaultLogLevel.String()), WithOutput(os.Stderr))
}

// New returns a logger writing to stderr at info level, further configured by opts.
func New(opts ...Options) Logger {
	logger := logrus.New()
	logger.SetLevel(defaultLogLevel)
	lw := &LogWrapper{entry: logrus.NewEntry(logger)}
	for _, opt := range opts {
		opt(lw)
	}
	return lw
}

// SetGlobalLogger points the global logger at logFilename (rotated) and
// stderr, at the given level. An empty filename keeps stderr only.
func SetGlobalLogger(logFilename string, logLevel string) {
	opts := []Options{WithLevel(logLevel)}
	if logFilename != "" {
		opts = append(opts, WithOutput(io.MultiWriter(rotatingFile(logFilename), os.Stderr)))
	} else {
		opts = append(opts, WithOutput(os.Stderr))
	}
	Global = New(opts...)
}

// NewLogger returns a logger writing to a rotated log file only.
func NewLogger(logFilename string, logLevel string) Logger {
	if logFilename == "" {
		logFilename = defaultLogFilePath
	}
	logger := New(WithLevel(logLevel), WithOutput(rotatingFile(logFilename)))
	logger.WithFields(Fields{
		"path":  logFilename,
		"level": logLevel,
	}).Debug("Logger started")
	return logger
}

func rotatingFile(logFilename string) io.Writer {
	return &lumberjack.Logger{
		Filename:   logFilename,
		MaxSize:    defaultLogMaxSize,
		MaxBackups: defaultLogMaxBackups,
		MaxAge:     defaultLogMaxAge,
	}
}
