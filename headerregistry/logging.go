package headerregistry

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// zerologLogger adapts a zerolog.Logger to the Logger interface.
type zerologLogger struct {
	l zerolog.Logger
}

// NewZerologLogger returns a Logger backed by the given zerolog.Logger, for
// applications already wired on zerolog.
func NewZerologLogger(l zerolog.Logger) Logger {
	return zerologLogger{l: l}
}

func (z zerologLogger) Debug(args ...interface{}) {
	z.l.Debug().Msg(sprint(args...))
}

func (z zerologLogger) Info(args ...interface{}) {
	z.l.Info().Msg(sprint(args...))
}

func (z zerologLogger) Warn(args ...interface{}) {
	z.l.Warn().Msg(sprint(args...))
}

func (z zerologLogger) Error(args ...interface{}) {
	z.l.Error().Msg(sprint(args...))
}

func sprint(args ...interface{}) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
