// Package logger holds the process-wide journal logger. Every line carries a short
// session id so one run can be picked out of the rotated files.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/dayjournal/internal/constants"
)

var (
	// Logger is nil until Init runs; the helpers below are no-ops before that.
	Logger *log.Logger

	sessionID string
)

type Config struct {
	Debug bool
	// ConfigDir receives logs/dayjournal.log
	ConfigDir string
	// Output replaces the rotating log file when set
	Output io.Writer
}

func rotatingFile(configDir string) (io.Writer, error) {
	dir := filepath.Join(configDir, constants.LogDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, constants.AppName+".log"),
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxBackups,
		MaxAge:     constants.LogMaxAgeDays,
		Compress:   true,
	}, nil
}

// Init replaces the global logger. Debug mode lowers the level and mirrors output to stderr.
func Init(cfg Config) error {
	out := cfg.Output
	if out == nil {
		file, err := rotatingFile(cfg.ConfigDir)
		if err != nil {
			return err
		}
		out = file
	}

	opts := log.Options{
		ReportTimestamp: true,
		Level:           log.InfoLevel,
		Prefix:          constants.AppName,
	}
	if cfg.Debug {
		opts.Level = log.DebugLevel
		opts.ReportCaller = true
		out = io.MultiWriter(os.Stderr, out)
	}

	sessionID = uuid.NewString()[:8]
	Logger = log.NewWithOptions(out, opts).With("session", sessionID)
	return nil
}

// SessionID returns the short id attached to every line of this run.
func SessionID() string {
	return sessionID
}

func emit(level log.Level, msg string, keyvals []interface{}) {
	if Logger == nil {
		return
	}
	Logger.Helper()
	Logger.Log(level, msg, keyvals...)
}

func Debug(msg string, keyvals ...interface{}) { emit(log.DebugLevel, msg, keyvals) }
func Info(msg string, keyvals ...interface{})  { emit(log.InfoLevel, msg, keyvals) }
func Warn(msg string, keyvals ...interface{})  { emit(log.WarnLevel, msg, keyvals) }
func Error(msg string, keyvals ...interface{}) { emit(log.ErrorLevel, msg, keyvals) }
