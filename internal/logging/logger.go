package logging

import (
	"io"
	"os"
	"strings"

	"github.com/2beens/fittracker/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultMaxLogSizeMB = 50

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
	// MaxBackups of rotated log files to keep, 0 keeps them all
	MaxBackups int
}

// Setup configures the global logrus logger. Without a log file, logs go to STDOUT only.
func Setup(params LoggerSetupParams) {
	logrus.SetFormatter(formatter(params.LogFormatJSON))
	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.SentryEnabled {
		setupSentry(params)
	}

	logrus.SetOutput(output(params))
}

func formatter(json bool) logrus.Formatter {
	if json {
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{FullTimestamp: true}
}

func setupSentry(params LoggerSetupParams) {
	if err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		TracesSampleRate: 1.0,
		ServerName:       params.SentryServerName,
	}); err != nil {
		logrus.Errorf("sentry init: %s", err)
		return
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Infoln("sentry log hook added")
}

func output(params LoggerSetupParams) io.Writer {
	if params.LogFileName == "" {
		logrus.Println("writing logs only to STDOUT")
		return os.Stdout
	}

	fileName := params.LogFileName
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}

	rotated := &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    defaultMaxLogSizeMB,
		MaxBackups: params.MaxBackups,
		LocalTime:  false, // UTC in file names
		Compress:   true,
	}

	if !params.LogToStdout {
		return rotated
	}
	logrus.Printf("writing logs to [%s] and STDOUT", fileName)
	return pkg.NewCombinedWriter(os.Stdout, rotated)
}

func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil || parsed == logrus.PanicLevel {
		return logrus.InfoLevel
	}
	return parsed
}
