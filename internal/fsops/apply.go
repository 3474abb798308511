package fsops

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"labgen/internal/safety"
	"labgen/internal/structure"
)

// ApplyArgs — параметры применения структуры к файловой системе.
type ApplyArgs struct {
	Entries  []structure.Entry
	BaseDir  string
	DryRun   bool
	Force    bool
	DirPerm  os.FileMode
	FilePerm os.FileMode
	Log      *slog.Logger
}

// Result — итог прохода по записям.
type Result struct {
	Created int // создано каталогов и файлов
	Existed int // записи, которые уже были на месте
	Failed  int // записи, пропущенные из-за ошибок
}

// Apply создаёт каталоги и файлы согласно списку записей, по порядку.
// Ошибка одной записи не прерывает проход: она попадает в лог и в
// Result.Failed, остальные записи обрабатываются дальше. Пригодность
// базового каталога проверяет вызывающая сторона до Apply.
func Apply(a ApplyArgs) Result {
	var res Result

	for _, e := range a.Entries {
		target, err := safety.Join(a.BaseDir, e.Path)
		if err != nil {
			res.Failed++
			a.Log.Error("некорректный путь записи", "path", e.Path, "err", err)
			continue
		}

		if e.IsDir() {
			err = ensureDir(a, target, &res)
		} else {
			err = ensureFile(a, target, e.Content, &res)
		}
		if err != nil {
			res.Failed++
			a.Log.Error("запись пропущена", "path", e.Path, "err", err)
		}
	}

	return res
}

// ensureDir создаёт каталог, если его ещё нет.
// Существующий каталог не трогаем — ни содержимое, ни права.
func ensureDir(a ApplyArgs, path string, res *Result) error {
	info, err := os.Lstat(path)
	switch {
	case err == nil && info.IsDir():
		res.Existed++
		a.Log.Debug("каталог уже существует", "path", path)
		return nil

	case err == nil:
		return fmt.Errorf("по пути %s уже существует файл", path)

	case os.IsNotExist(err):
		if a.DryRun {
			res.Created++
			a.Log.Info("mkdir -p", "path", path)
			return nil
		}
		if err := os.MkdirAll(path, a.DirPerm); err != nil {
			return fmt.Errorf("mkdir %s: %w", path, err)
		}
		// MkdirAll урезается umask — выставляем права явно.
		if err := os.Chmod(path, a.DirPerm); err != nil {
			return fmt.Errorf("chmod %s: %w", path, err)
		}
		res.Created++
		a.Log.Info("создан каталог", "path", path)
		return nil

	default:
		return fmt.Errorf("stat %s: %w", path, err)
	}
}

// ensureFile создаёт файл с начальным содержимым, если его ещё нет.
// Существующий файл не усекается и не перезаписывается без Force.
func ensureFile(a ApplyArgs, path, content string, res *Result) error {
	parent := filepath.Dir(path)
	if a.DryRun {
		if _, err := os.Lstat(parent); os.IsNotExist(err) {
			a.Log.Info("mkdir -p", "path", parent)
		}
	} else if err := os.MkdirAll(parent, a.DirPerm); err != nil {
		return fmt.Errorf("mkdir %s: %w", parent, err)
	}

	info, err := os.Lstat(path)
	switch {
	case err == nil && info.IsDir():
		return fmt.Errorf("по пути %s уже есть каталог", path)

	case err == nil:
		if !a.Force {
			res.Existed++
			a.Log.Debug("файл уже существует", "path", path)
			return nil
		}
		if a.DryRun {
			res.Created++
			a.Log.Info("rewrite", "path", path)
			return nil
		}
		if err := os.WriteFile(path, []byte(content), a.FilePerm); err != nil {
			return fmt.Errorf("rewrite %s: %w", path, err)
		}
		res.Created++
		a.Log.Info("файл перезаписан", "path", path)
		return nil

	case os.IsNotExist(err):
		if a.DryRun {
			res.Created++
			a.Log.Info("touch", "path", path)
			return nil
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, a.FilePerm)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if content != "" {
			if _, err := f.WriteString(content); err != nil {
				_ = f.Close()
				return fmt.Errorf("write %s: %w", path, err)
			}
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", path, err)
		}
		res.Created++
		a.Log.Info("создан файл", "path", path)
		return nil

	default:
		return fmt.Errorf("stat %s: %w", path, err)
	}
}
