// Package chainlog provides the subsystem logging backend shared across
// the module's commands: a rotating file writer paired with stdout, and
// one slog.Logger per subsystem so verbosity can be tuned independently.
package chainlog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
)

// log is this package's own logger, used only for backend setup failures
// that occur before a subsystem logger exists.
var log = slog.Disabled

// logRotator writes logged output to a file and also passes it to stdout.
// It must be closed on shutdown to flush any buffered data.
var logRotator *rotator.Rotator

// logWriter implements io.Writer so logged messages are written to both
// standard output and the log rotator.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stdout.Write(p)
	logRotator.Write(p)
	return len(p), nil
}

// backendLog is the backend used to create subsystem loggers.
var backendLog = slog.NewBackend(logWriter{})

// subsystemLoggers maps each subsystem identifier to its logger so
// SetLogLevel/SetLogLevels can look them up by name.
var subsystemLoggers = map[string]slog.Logger{
	"CRPT": CrptLog,
	"SCPT": ScptLog,
	"PRIM": PrimLog,
	"TXVD": TxvdLog,
	"DRID": DridLog,
	"TXBD": TxbdLog,
	"STOR": StorLog,
	"CTCL": CtclLog,
}

// Per-subsystem loggers, one per package that logs anything of interest.
var (
	CrptLog = backendLog.Logger("CRPT")
	ScptLog = backendLog.Logger("SCPT")
	PrimLog = backendLog.Logger("PRIM")
	TxvdLog = backendLog.Logger("TXVD")
	DridLog = backendLog.Logger("DRID")
	TxbdLog = backendLog.Logger("TXBD")
	StorLog = backendLog.Logger("STOR")
	CtclLog = backendLog.Logger("CTCL")
)

// InitLogRotator initializes the logging rotator to write logs to
// logFile and create roll files in the same directory. It must be called
// before the package-level loggers are used.
func InitLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0o700); err != nil {
			return fmt.Errorf("chainlog: failed to create log directory: %w", err)
		}
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("chainlog: failed to create file rotator: %w", err)
	}
	logRotator = r
	return nil
}

// SetLogLevel sets the logging level for the named subsystem. Invalid
// subsystems are ignored. Uninitialized subsystems are ignored too.
func SetLogLevel(subsystemID, logLevel string) {
	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return
	}
	level, ok := slog.LevelFromString(logLevel)
	if !ok {
		return
	}
	logger.SetLevel(level)
}

// SetLogLevels sets the logging level for every registered subsystem.
func SetLogLevels(logLevel string) {
	for subsystemID := range subsystemLoggers {
		SetLogLevel(subsystemID, logLevel)
	}
}

// SupportedSubsystems returns a sorted slice of the supported subsystems
// for logging purposes, used when reporting an invalid subsystem.
func SupportedSubsystems() []string {
	subsystems := make([]string, 0, len(subsystemLoggers))
	for id := range subsystemLoggers {
		subsystems = append(subsystems, id)
	}
	sort.Strings(subsystems)
	return subsystems
}
