package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/carlmjohnson/versioninfo"

	"labgen/internal/app"
)

// Версию можно переопределить через -ldflags "-X main.version=1.0.0";
// иначе берётся из build info.
var version = ""

func main() {
	// Флаги. Делаем их очевидными и простыми.
	dry := flag.Bool("dry", false, "Dry-run: только показать, что будет создано")
	force := flag.Bool("force", false, "Перезаписывать существующие файлы начальным содержимым")
	verbose := flag.Bool("v", false, "Подробный вывод")
	quiet := flag.Bool("q", false, "Тихий режим (только ошибки)")

	// Права по умолчанию: каталоги 0755, файлы 0644
	dpermStr := flag.String("dperm", "0755", "Права для каталогов (восьмерично, например 0755)")
	fpermStr := flag.String("fperm", "0644", "Права для файлов (восьмерично, например 0644)")

	// Справка и версия
	help := flag.Bool("help", false, "Показать справку и выйти")
	helpShort := flag.Bool("h", false, "Показать справку и выйти (синоним -help)")
	showVersion := flag.Bool("version", false, "Показать версию и выйти")

	flag.Usage = func() {
		name := filepath.Base(os.Args[0])
		fmt.Fprintf(os.Stdout, `
%s — создаёт скелет исследовательского проекта по базовому пути.

Использование:
  %s [-dry] [-force] [-v|-q] [-dperm 0755] [-fperm 0644] BASE_PATH

Флаги:
`, name, name)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stdout, `
BASE_PATH — каталог, внутри которого создаётся структура. Если его нет,
он будет создан. Уже существующее содержимое не затрагивается: имеющиеся
каталоги и файлы остаются как есть (перезапись — только по -force).
Ошибки отдельных записей не прерывают работу: они попадают в лог,
остальные записи обрабатываются дальше.

Примеры:
  %[1]s ./my-research
  %[1]s -dry -v /tmp/proj
  %[1]s -q -dperm 0700 ~/projects/paper
`, name)
	}

	// Если без аргументов — просто показать помощь
	if len(os.Args) == 1 {
		flag.Usage()
		return
	}

	flag.Parse()

	if *help || *helpShort {
		flag.Usage()
		return
	}

	if *showVersion {
		if version != "" {
			fmt.Println(version)
		} else {
			fmt.Println(versioninfo.Short())
		}
		return
	}

	if flag.NArg() != 1 {
		fail(fmt.Errorf("ожидается ровно один аргумент — базовый путь (см. -help)"))
	}

	// Разбор прав доступа
	dperm, err := parsePerm(*dpermStr, 0o755)
	if err != nil {
		fail(fmt.Errorf("неверные права -dperm: %w", err))
	}
	fperm, err := parsePerm(*fpermStr, 0o644)
	if err != nil {
		fail(fmt.Errorf("неверные права -fperm: %w", err))
	}

	opts := app.Options{
		BasePath: flag.Arg(0),
		DryRun:   *dry,
		Force:    *force,
		Verbose:  *verbose,
		Quiet:    *quiet,
		DirPerm:  dperm,
		FilePerm: fperm,
	}

	if err := app.Run(opts); err != nil {
		fail(err)
	}
}

func parsePerm(s string, def os.FileMode) (os.FileMode, error) {
	ss := strings.TrimSpace(s)
	if ss == "" {
		return def, nil
	}
	// base=0 понимает 0755/755/0o755
	u, err := strconv.ParseUint(ss, 0, 32)
	if err != nil {
		return 0, err
	}
	return os.FileMode(u), nil
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "ошибка: %v\n", err)
	os.Exit(1)
}
