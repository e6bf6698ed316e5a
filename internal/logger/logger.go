package logger

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	NONE
)

var (
	level     = INFO
	stdLogger = log.New(os.Stderr, "[pursuit] ", log.LstdFlags)

	console io.Writer = os.Stderr
	logFile io.Writer
)

// ParseLevel maps a level name to a LogLevel, defaulting to INFO.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn":
		return WARN
	case "error":
		return ERROR
	case "none":
		return NONE
	default:
		return INFO
	}
}

func Init(logfilePath string, levelStr string) error {
	level = ParseLevel(levelStr)
	logFile = nil

	if logfilePath != "" {
		dir := filepath.Dir(logfilePath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
		f, err := os.OpenFile(logfilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		logFile = f
	}
	stdLogger.SetOutput(writer(true))
	return nil
}

func writer(withConsole bool) io.Writer {
	switch {
	case withConsole && logFile != nil:
		return io.MultiWriter(console, logFile)
	case withConsole:
		return console
	case logFile != nil:
		return logFile
	default:
		return io.Discard
	}
}

// SetOutput replaces the log destination, including any log file set by Init.
func SetOutput(w io.Writer) {
	stdLogger.SetOutput(w)
}

// DetachConsole stops writing to the terminal while a full-screen UI owns it.
// Messages still reach the log file, if any. The returned func reattaches.
func DetachConsole() (restore func()) {
	stdLogger.SetOutput(writer(false))
	return func() { stdLogger.SetOutput(writer(true)) }
}

func Debug(msg string, args ...any) {
	if level <= DEBUG {
		stdLogger.Printf("[DEBUG] "+msg, args...)
	}
}
func Info(msg string, args ...any) {
	if level <= INFO {
		stdLogger.Printf("[INFO] "+msg, args...)
	}
}
func Warn(msg string, args ...any) {
	if level <= WARN {
		stdLogger.Printf("[WARN] "+msg, args...)
	}
}
func Error(msg string, args ...any) {
	if level <= ERROR {
		stdLogger.Printf("[ERROR] "+msg, args...)
	}
}
