package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvPath names the environment variable holding the debug log file path.
const EnvPath = "BEHAVIORS_DEBUG"

var (
	mu      sync.Mutex
	logger  *log.Logger
	logFile *os.File
	envDone bool
)

func init() {
	logger = newLogger(io.Discard)
}

func newLogger(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Prefix:          "behaviors",
	})
	l.SetLevel(log.DebugLevel)
	return l
}

// Init directs debug logging to the file at path.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	envDone = true
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	level := logger.GetLevel()
	logger = newLogger(f)
	logger.SetLevel(level)
	return nil
}

// SetOutput directs debug logging to w. Passing nil discards output.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	envDone = true
	if w == nil {
		w = io.Discard
	}
	level := logger.GetLevel()
	logger = newLogger(w)
	logger.SetLevel(level)
}

// SetLevel sets the minimum level by name (debug, info, warn, error).
// Unknown names fall back to info.
func SetLevel(name string) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		lvl = log.InfoLevel
	}
	mu.Lock()
	logger.SetLevel(lvl)
	mu.Unlock()
}

// Close closes the debug log file, if one is open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = newLogger(io.Discard)
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Logger returns the underlying structured logger.
func Logger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	loadEnvLocked()
	return logger
}

// Log writes a debug-level message.
func Log(format string, args ...any) {
	Logger().Debugf(format, args...)
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}

func loadEnvLocked() {
	if envDone {
		return
	}
	envDone = true
	if path := os.Getenv(EnvPath); path != "" {
		if err := initLocked(path); err != nil {
			fmt.Fprintf(os.Stderr, "debug: %v\n", err)
		}
	}
}
