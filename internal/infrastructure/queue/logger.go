package queue

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Logger routes asynq's internal logging through zerolog.
type Logger struct {
	zl zerolog.Logger
}

func NewLogger(zl zerolog.Logger) *Logger {
	return &Logger{zl: zl.With().Str("component", "asynq").Logger()}
}

func (l *Logger) Debug(args ...interface{}) { l.zl.Debug().Msg(fmt.Sprint(args...)) }
func (l *Logger) Info(args ...interface{})  { l.zl.Info().Msg(fmt.Sprint(args...)) }
func (l *Logger) Warn(args ...interface{})  { l.zl.Warn().Msg(fmt.Sprint(args...)) }
func (l *Logger) Error(args ...interface{}) { l.zl.Error().Msg(fmt.Sprint(args...)) }
func (l *Logger) Fatal(args ...interface{}) { l.zl.Fatal().Msg(fmt.Sprint(args...)) }
