package app

import (
	"fmt"
	"log/slog"
	"os"

	"labgen/internal/fsops"
	"labgen/internal/logging"
	"labgen/internal/structure"
)

// Options — все настройки запуска утилиты.
type Options struct {
	BasePath string
	Entries  []structure.Entry // nil — использовать встроенную структуру
	DryRun   bool
	Force    bool
	Verbose  bool
	Quiet    bool
	DirPerm  os.FileMode
	FilePerm os.FileMode
	Log      *slog.Logger // nil — стандартный логгер по флагам -v/-q
}

// Run — главная функция приложения: готовит базовый каталог и применяет
// структуру. Ошибка возвращается только если базовый каталог непригоден;
// ошибки отдельных записей остаются в логе и не влияют на код возврата.
func Run(o Options) error {
	logger := o.Log
	if logger == nil {
		logger = logging.New(o.Verbose, o.Quiet)
	}

	entries := o.Entries
	if entries == nil {
		entries = structure.Default()
	}

	// 1) Базовый каталог: создаём при необходимости. Здесь любая
	// проблема фатальна — без корня делать нечего.
	info, err := os.Stat(o.BasePath)
	switch {
	case err == nil && !info.IsDir():
		return fmt.Errorf("базовый путь %s — не каталог", o.BasePath)

	case err == nil:
		// Каталог уже есть — используем как есть.

	case os.IsNotExist(err):
		if o.DryRun {
			logger.Info("mkdir -p", "path", o.BasePath)
			break
		}
		if err := os.MkdirAll(o.BasePath, o.DirPerm); err != nil {
			return fmt.Errorf("не удалось создать базовый каталог %s: %w", o.BasePath, err)
		}

	default:
		return fmt.Errorf("stat %s: %w", o.BasePath, err)
	}

	// 2) Применяем структуру.
	res := fsops.Apply(fsops.ApplyArgs{
		Entries:  entries,
		BaseDir:  o.BasePath,
		DryRun:   o.DryRun,
		Force:    o.Force,
		DirPerm:  o.DirPerm,
		FilePerm: o.FilePerm,
		Log:      logger,
	})

	// 3) Короткий итог.
	logger.Info("готово",
		"base", o.BasePath,
		"created", res.Created,
		"existed", res.Existed,
		"failed", res.Failed,
	)
	return nil
}
