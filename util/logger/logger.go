package logger

import (
	"fmt"
	stdlog "log"
	"os"
	"path"
	"path/filepath"

	"github.com/op/go-logging"
)

/*
InitLogger creates and returns a logger suitable for logging
human-readable messages, plus the path to the log file. If logDir is
empty, messages go to stderr instead and the returned path is empty;
the CLI apps use that mode so output lands in the terminal.
*/
func InitLogger(logDir string, logLevel logging.Level) (*logging.Logger, string) {
	processName := path.Base(os.Args[0])
	writer := os.Stderr
	filename := ""
	if logDir != "" {
		filename = filepath.Join(logDir, fmt.Sprintf("%s.log", processName))
		f, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot open log file '%s': %v\n", filename, err)
			os.Exit(1)
		}
		writer = f
	}
	log := logging.MustGetLogger(processName)
	format := logging.MustStringFormatter("[%{level}] %{message}")
	logging.SetFormatter(format)
	logging.SetLevel(logLevel, processName)
	logBackend := logging.NewLogBackend(writer, "", stdlog.LstdFlags|stdlog.LUTC)
	logging.SetBackend(logBackend)
	return log, filename
}
