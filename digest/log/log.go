// Package log provides logging for digestbridge
package log

import (
	"context"
	"io"
	golog "log"
	"os"

	"github.com/digestbridge/digestbridge/digest"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// logFile is the rotating writer in use, if any
var logFile *lumberjack.Logger

// InitLogging sets up logging for the level, format and destination
// found in the config.
func InitLogging() {
	ci := digest.GetConfig(context.Background())

	// digest filters the levels itself so let everything through
	logrus.SetLevel(logrus.DebugLevel)
	if ci.UseJSONLog {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}

	var out io.Writer = os.Stderr
	if ci.LogFile != "" {
		logFile = &lumberjack.Logger{
			Filename:   ci.LogFile,
			MaxSize:    ci.LogFileMaxSize,
			MaxBackups: ci.LogFileMaxBackups,
			Compress:   ci.LogFileCompress,
		}
		out = logFile
	}
	logrus.SetOutput(out)
	golog.SetOutput(out)

	digest.Debugf("digestbridge", "Version %q starting with parameters %q", digest.Version, os.Args)
}

// Close flushes and closes the log file if one was opened
func Close() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
