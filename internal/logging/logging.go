package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

// NewHandler строит обработчик slog поверх charmbracelet/log.
func NewHandler(w io.Writer, level log.Level) slog.Handler {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "labgen",
		Level:           level,
	})
}

// New возвращает логгер с уровнем, выбранным по флагам -v/-q.
// -q перекрывает -v: остаются только ошибки.
func New(verbose, quiet bool) *slog.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.ErrorLevel
	}
	return slog.New(NewHandler(os.Stderr, level))
}
