package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

var logger = log.New()

func init() {
	logger.Out = output(os.Getenv("ENV"), os.Getenv("LOG_TO_FILE") == "true")
	Configure(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

// output picks stdout unless LOG_TO_FILE=true, in which case logs go to
// ./logs/<date><env>.log. Any failure falls back to stdout.
func output(env string, toFile bool) io.Writer {
	if !toFile {
		return os.Stdout
	}
	cwd, err := os.Getwd()
	if err != nil {
		log.Warnf("Failed get current working directory: %v, falling back to stdout", err)
		return os.Stdout
	}
	logsDir := filepath.Join(cwd, "logs")
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		log.Warnf("Failed to create logs directory %s: %v, falling back to stdout", logsDir, err)
		return os.Stdout
	}
	filePath := filepath.Join(logsDir, fmt.Sprintf("%s%s.log", time.Now().Format("2006-01-02"), env))
	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		log.Warnf("Failed to open log file %s: %v, falling back to stdout", filePath, err)
		return os.Stdout
	}
	return f
}

// Configure sets level and format. Unknown levels keep debug, unknown formats keep JSON.
func Configure(level, format string) {
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = log.DebugLevel
	}
	logger.SetLevel(lvl)

	if strings.EqualFold(format, "text") {
		logger.Formatter = &log.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339Nano,
		}
		return
	}
	logger.Formatter = &log.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
	}
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	logger.Out = w
}

func GetLogger() *log.Entry {
	function, file, line, _ := runtime.Caller(1)

	functionObject := runtime.FuncForPC(function)
	name := ""
	if functionObject != nil {
		name = functionObject.Name()
	}
	return logger.WithFields(log.Fields{
		"function": name,
		"file":     file,
		"line":     line,
	})
}
