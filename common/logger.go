package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ScriptName is attached to every log line as the component of origin
var ScriptName = "rammon"

// Version is overwritten at build time
var Version = "devel"

// LogLevelEnv selects the zerolog level, e.g. debug, info, warn
const LogLevelEnv = "RAMMON_LOGLEVEL"

// NoColorEnv disables colors in both logs and the status display
const NoColorEnv = "RAMMON_NOCOLOR"

// NoColor reports whether colors were disabled through the environment
func NoColor() bool {
	return os.Getenv(NoColorEnv) == "true" || os.Getenv(NoColorEnv) == "1"
}

// LogFilePath returns the JSON log location: system-wide as root, XDG state
// directory otherwise.
func LogFilePath() string {
	if os.Geteuid() == 0 {
		return "/var/log/rammon.log"
	}

	xdgStateHome := os.Getenv("XDG_STATE_HOME")
	if xdgStateHome == "" {
		xdgStateHome = os.Getenv("HOME") + "/.local/state"
	}
	return filepath.Join(xdgStateHome, "mono", "rammon.log")
}

// ParseLogLevel maps the environment value to a zerolog level, defaulting to info
func ParseLogLevel(lvl string) (zerolog.Level, error) {
	if lvl == "" {
		return zerolog.InfoLevel, nil
	}

	level, err := zerolog.ParseLevel(lvl)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel, fmt.Errorf("invalid log level %q", lvl)
	}
	return level, nil
}

// InitZerolog configures the global logger. JSON lines go to the log file,
// warnings and above are also printed to stderr so they survive screen redraws.
func InitZerolog() {
	level, levelErr := ParseLogLevel(os.Getenv(LogLevelEnv))
	zerolog.SetGlobalLevel(level)

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + fmt.Sprintf("%d", line)
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.TimestampFieldName = "timestamp"
	zerolog.LevelFieldName = "level"
	zerolog.MessageFieldName = "message"
	zerolog.ErrorFieldName = "error"

	logfilePath := LogFilePath()
	var logFile io.Writer
	if err := os.MkdirAll(filepath.Dir(logfilePath), 0755); err == nil {
		logFile, err = os.OpenFile(logfilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			logFile = nil
		}
	}
	if logFile == nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file %s, falling back to stderr\n", logfilePath)
		logFile = os.Stderr
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    NoColor(),
		FieldsExclude: []string{
			"component",
		},
	}

	output := zerolog.MultiLevelWriter(
		&zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: consoleWriter},
			Level:  zerolog.WarnLevel,
		},
		logFile,
	)

	logger := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Caller().
		Str("component", ScriptName).
		Str("version", Version).
		Int("pid", os.Getpid())

	if hostname, err := os.Hostname(); err == nil {
		logger = logger.Str("hostname", hostname)
	}

	log.Logger = logger.Logger()

	if levelErr != nil {
		log.Warn().
			Err(levelErr).
			Str("default_level", level.String()).
			Msg("Invalid log level provided, using default")
	}

	log.Debug().
		Str("component", "logging").
		Str("level", level.String()).
		Str("log_file", logfilePath).
		Bool("colors_enabled", !NoColor()).
		Msg("Zerolog initialized")
}
