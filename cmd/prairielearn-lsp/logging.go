package main

import (
	"fmt"
	"io"
	"os"

	"github.com/op/go-logging"
	"github.com/tebeka/atexit"
	"github.com/tliron/commonlog"
	"github.com/tliron/commonlog/simple"
)

const logFormat = `%{time:15:04:05.000} %{level:.4s} [%{module}] %{message}`

var log = logging.MustGetLogger("main")

// configureLogging routes our go-logging modules and glsp's commonlog output
// to the same destination. Stdout is never used: under the stdio transport it
// carries the protocol.
func configureLogging(levelName string, path string) error {
	level, err := logging.LogLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	var writer io.Writer = os.Stderr
	if path != "" {
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		atexit.Register(func() { file.Close() })
		writer = file
	}

	backend := logging.NewBackendFormatter(
		logging.NewLogBackend(writer, "", 0),
		logging.MustStringFormatter(logFormat),
	)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)

	commonBackend := simple.NewBackend()
	commonBackend.Buffered = false
	var commonPath *string
	if path != "" {
		commonPath = &path
	}
	commonBackend.Configure(commonlogVerbosity(level), commonPath)
	commonlog.SetBackend(commonBackend)

	log.Debugf("logging at %s", level)
	return nil
}

// commonlogVerbosity maps a go-logging level onto commonlog's verbosity scale,
// where 0 is notice and each step down is one level quieter.
func commonlogVerbosity(level logging.Level) int {
	return int(level) - int(logging.NOTICE)
}
