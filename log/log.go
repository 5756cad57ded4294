// Package log provides leveled logging for cardlot. The library is silent
// by default; the CLI enables output with Initialize, and CARDLOT_DEBUG=1
// additionally mirrors debug output to a file in the temp directory.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

var (
	mu     sync.RWMutex
	logger = charmlog.NewWithOptions(io.Discard, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})
	debugFile *os.File
)

var debugFileName = filepath.Join(os.TempDir(), "cardlot-debug.log")

// Initialize directs log output to w. With verbose set, debug-level
// messages are included. Call once at startup; the zero state discards
// everything so library consumers see no output they didn't ask for.
func Initialize(w io.Writer, verbose bool) {
	mu.Lock()
	defer mu.Unlock()

	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	logger = charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// InitDebugFile opens the debug log file if CARDLOT_DEBUG=1 is set.
// Returns the file path when active.
func InitDebugFile() string {
	if os.Getenv("CARDLOT_DEBUG") != "1" {
		return ""
	}

	f, err := os.OpenFile(debugFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		Warnf("could not open debug log file: %s", err)
		return ""
	}

	mu.Lock()
	debugFile = f
	logger = charmlog.NewWithOptions(f, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           charmlog.DebugLevel,
	})
	mu.Unlock()

	Debugf("debug logging enabled: %s", debugFileName)
	return debugFileName
}

// Close flushes and closes the debug log file if one is open.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if debugFile != nil {
		_ = debugFile.Close()
		fmt.Println("wrote debug logs to " + debugFileName)
		debugFile = nil
	}
}

func get() *charmlog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debugf logs a debug-level message.
func Debugf(format string, args ...interface{}) { get().Debugf(format, args...) }

// Infof logs an info-level message.
func Infof(format string, args ...interface{}) { get().Infof(format, args...) }

// Warnf logs a warning.
func Warnf(format string, args ...interface{}) { get().Warnf(format, args...) }

// Errorf logs an error.
func Errorf(format string, args ...interface{}) { get().Errorf(format, args...) }
