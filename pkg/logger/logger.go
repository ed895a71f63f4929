package logger

import (
	"fmt"
	"io"
	"path"
	"runtime"

	log "github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05"

func SetupLogger(level string) {
	loggerLevel, err := log.ParseLevel(level)
	log.SetReportCaller(true)
	log.SetFormatter(NewFormatter())

	if err != nil {
		log.Infof("Level setup default INFO, err: %v", err)
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(loggerLevel)
	}
}

// SetOutput redirects the standard logger. In report mode stdout carries the
// report itself, so logs go to stderr.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

func NewFormatter() *log.JSONFormatter {
	return &log.JSONFormatter{
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			return "", fmt.Sprintf("%s:%d", path.Base(frame.File), frame.Line)
		},
		TimestampFormat: timestampFormat,
	}
}
