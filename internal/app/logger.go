package app

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Logger is the component logger handed to every subsystem.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// FileLogger writes plain-text zerolog lines, one per call.
type FileLogger struct{ log zerolog.Logger }

func NewFileLogger(w io.Writer) FileLogger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	return FileLogger{log: zerolog.New(consoleWriter).With().Timestamp().Logger()}
}

func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	l.log.Info().Str("component", component).Msg(fmt.Sprintf(format, args...))
}

func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	l.log.Error().Str("component", component).Msg(fmt.Sprintf(format, args...))
}
