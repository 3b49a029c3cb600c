package logging

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/ziflex/lecho/v3"
)

const logTimestampLayout = "2006-01-02_15-04-05"

// Logger writes to STDOUT, or to a timestamped registry log file when
// LOG_FILE_PATH is configured.
func Logger(logFilePath string) *lecho.Logger {
	logger := lecho.New(
		os.Stdout, // default to STDOUT
		lecho.WithLevel(log.DEBUG),
		lecho.WithTimestamp(),
	)
	// check if a log file config is set
	if logFilePath != "" {
		file, err := GetLoggingFile(logFilePath)
		if err != nil {
			logger.Errorf("failed to create logging file: %v", err)
		}
		logger.SetOutput(file)
	}

	return logger
}

// GetLoggingFile stamps the configured path with the process start time so
// every registry run gets its own file. A bare directory gets a
// metalbridge-<timestamp>.log inside it.
func GetLoggingFile(path string) (*os.File, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, "metalbridge.log")
	}

	stamp := time.Now().Format(logTimestampLayout)
	extension := filepath.Ext(path)
	if extension != "" {
		path = strings.Replace(path, extension, "-"+stamp+extension, 1)
	} else {
		path = path + "-" + stamp + ".log"
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return f, err
}
