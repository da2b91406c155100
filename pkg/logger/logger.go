package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config controla la salida del logger de la aplicación.
type Config struct {
	Env   string // en development la salida es consola legible, en cualquier otro caso JSON
	Level string // info si viene vacío o no se reconoce
}

// Logger envuelve zerolog para inyectarlo en los casos de uso.
type Logger struct {
	zl zerolog.Logger
}

var levels = map[string]zerolog.Level{
	"debug": zerolog.DebugLevel,
	"info":  zerolog.InfoLevel,
	"warn":  zerolog.WarnLevel,
	"error": zerolog.ErrorLevel,
}

// New construye el logger y reemplaza además el global de zerolog,
// de modo que las librerías que escriben por log.Logger salgan por la misma vía.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level, ok := levels[strings.ToLower(cfg.Level)]
	if !ok {
		level = zerolog.InfoLevel
	}

	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
