package debug

import (
	"io"
	"log"
	"os"
)

// DefaultLogPath is where debug output goes when no path is configured.
const DefaultLogPath = "debug.log"

// Logger writes diagnostics only when enabled. A nil *Logger is a disabled logger.
type Logger struct {
	enabled bool
	out     *log.Logger
	file    *os.File
}

// NewLogger opens path for appending when enabled. If the file cannot be
// opened, output falls back to stderr.
func NewLogger(enabled bool, path string) *Logger {
	if !enabled {
		return &Logger{}
	}
	if path == "" {
		path = DefaultLogPath
	}

	var w io.Writer = os.Stderr
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err == nil {
		w = logFile
	}
	d := &Logger{enabled: true, out: log.New(w, "", log.LstdFlags), file: logFile}
	d.out.Printf("=== DEBUG MODE ENABLED ===")
	return d
}

// NewWriterLogger logs to w; used where output must be captured.
func NewWriterLogger(w io.Writer) *Logger {
	return &Logger{enabled: true, out: log.New(w, "", 0)}
}

func (d *Logger) IsEnabled() bool {
	return d != nil && d.enabled
}

func (d *Logger) Printf(format string, args ...interface{}) {
	if d.IsEnabled() {
		d.out.Printf(format, args...)
	}
}

func (d *Logger) Println(args ...interface{}) {
	if d.IsEnabled() {
		d.out.Println(args...)
	}
}

// Close releases the log file, if one was opened.
func (d *Logger) Close() error {
	if d == nil || d.file == nil {
		return nil
	}
	return d.file.Close()
}
