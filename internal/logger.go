package internal

import (
	"fmt"
	"github.com/rs/zerolog"
	"io"
	"os"
	"paysera/entity"
	"paysera/services"
	"time"
)

// Logger writes leveled records to stdout and, when a database is set,
// copies info and higher records into the payment log collection.
// In debug mode debug records are copied as well.
type Logger struct {
	category string
	debug    bool
	database services.Database
	log      zerolog.Logger
}

func NewLogger(category string, debug bool, database services.Database) *Logger {
	var out io.Writer = os.Stdout
	level := zerolog.InfoLevel
	if debug {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		level = zerolog.DebugLevel
	}
	return newLogger(category, debug, database, out, level)
}

func newLogger(category string, debug bool, database services.Database, out io.Writer, level zerolog.Level) *Logger {
	return &Logger{
		category: category,
		debug:    debug,
		database: database,
		log:      zerolog.New(out).Level(level).With().Timestamp().Str("category", category).Logger(),
	}
}

func (l *Logger) Debug(text string) {
	l.log.Debug().Msg(text)
	if l.debug {
		l.write("debug", text)
	}
}

func (l *Logger) Info(text string) {
	l.log.Info().Msg(text)
	l.write("info", text)
}

func (l *Logger) Warn(text string) {
	l.log.Warn().Msg(text)
	l.write("warn", text)
}

func (l *Logger) Error(text string, err error) {
	l.log.Error().Err(err).Msg(text)
	if err != nil {
		text = fmt.Sprintf("%s: %v", text, err)
	}
	l.write("error", text)
}

func (l *Logger) write(level, text string) {
	if l.database == nil {
		return
	}
	message := &entity.LogMessage{
		Time:     time.Now(),
		Level:    level,
		Category: l.category,
		Text:     text,
	}
	if err := l.database.WriteLogMessage(message); err != nil {
		l.log.Warn().Err(err).Msg("write log message")
	}
}

// secret masks identifiers and personal data before they reach the log.
func secret(some string) string {
	if len(some) > 5 {
		return fmt.Sprintf("%s***", some[0:5])
	}
	if some == "" {
		return "?"
	}
	return "***"
}
