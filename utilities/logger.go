package utilities

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"esg-maturity-backend/internal/config"
)

// Log levels, lowest first.
const (
	LevelDebug = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	debugLog *log.Logger
	infoLog  *log.Logger
	warnLog  *log.Logger
	errorLog *log.Logger
	minLevel = LevelInfo
	logFiles []io.Closer
	logMutex sync.Mutex
)

func init() {
	resetLoggers(os.Stdout, os.Stdout, os.Stderr)
}

func resetLoggers(info, warn, errw io.Writer) {
	flags := log.Ldate | log.Ltime
	debugLog = log.New(info, "DEBUG: ", flags)
	infoLog = log.New(info, "INFO: ", flags)
	warnLog = log.New(warn, "WARNING: ", flags)
	errorLog = log.New(errw, "ERROR: ", flags)
}

// ParseLevel maps a level name to its constant. Unknown names map to INFO.
func ParseLevel(level string) int {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return LevelDebug
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// SetupLogging sends logs to the console and to rotating info, warn and error
// files under cfg.Dir.
func SetupLogging(cfg config.LoggingConfig) error {
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	logMutex.Lock()
	defer logMutex.Unlock()

	closeLogFiles()
	infoFile := rotatingFile(cfg, "info.log")
	warnFile := rotatingFile(cfg, "warn.log")
	errorFile := rotatingFile(cfg, "error.log")
	logFiles = []io.Closer{infoFile, warnFile, errorFile}

	infoWriter := io.MultiWriter(os.Stdout, infoFile)
	resetLoggers(infoWriter, io.MultiWriter(os.Stdout, warnFile), io.MultiWriter(os.Stderr, errorFile))
	minLevel = ParseLevel(cfg.Level)

	// Override Go's default log
	log.SetOutput(infoWriter)
	return nil
}

// SetLevel changes the minimum level that is written.
func SetLevel(level string) {
	logMutex.Lock()
	defer logMutex.Unlock()
	minLevel = ParseLevel(level)
}

// CloseLogging flushes and closes the log files and returns to console output.
func CloseLogging() {
	logMutex.Lock()
	defer logMutex.Unlock()
	closeLogFiles()
	resetLoggers(os.Stdout, os.Stdout, os.Stderr)
	log.SetOutput(os.Stderr)
}

func closeLogFiles() {
	for _, f := range logFiles {
		_ = f.Close()
	}
	logFiles = nil
}

func rotatingFile(cfg config.LoggingConfig, name string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Dir, name),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
}

func getCallerInfo() string {
	pc, _, _, ok := runtime.Caller(3)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}

func logAt(level int, format string, v ...interface{}) {
	logMutex.Lock()
	defer logMutex.Unlock()

	if level < minLevel {
		return
	}

	message := fmt.Sprintf(format, v...)
	logEntry := fmt.Sprintf("[%s] %s", getCallerInfo(), message)

	switch level {
	case LevelDebug:
		debugLog.Println(logEntry)
	case LevelWarn:
		warnLog.Println(logEntry)
	case LevelError:
		errorLog.Println(logEntry)
	default:
		infoLog.Println(logEntry)
	}
}

func Debug(format string, v ...interface{}) {
	logAt(LevelDebug, format, v...)
}

func Info(format string, v ...interface{}) {
	logAt(LevelInfo, format, v...)
}

func Warn(format string, v ...interface{}) {
	logAt(LevelWarn, format, v...)
}

func Error(format string, v ...interface{}) {
	logAt(LevelError, format, v...)
}
