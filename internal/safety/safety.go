package safety

import (
	"fmt"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
)

// ValidateRel проверяет относительный путь записи: не пустой, не абсолютный,
// без обратных слэшей, без пустых сегментов и без "." / "..".
func ValidateRel(rel string) error {
	if rel == "" {
		return fmt.Errorf("пустой путь")
	}
	if strings.HasPrefix(rel, "/") || filepath.IsAbs(rel) {
		return fmt.Errorf("абсолютные пути запрещены: %q", rel)
	}
	if strings.Contains(rel, `\`) {
		return fmt.Errorf(`путь не должен содержать "\": %q`, rel)
	}
	for _, seg := range strings.Split(rel, "/") {
		switch seg {
		case "":
			return fmt.Errorf("пустой сегмент в пути %q", rel)
		case ".", "..":
			return fmt.Errorf("недопустимый сегмент %q в пути %q", seg, rel)
		}
	}
	return nil
}

// Join объединяет базовый каталог и относительный путь записи и убеждается,
// что результат остаётся внутри базового каталога.
func Join(base, rel string) (string, error) {
	p, err := securejoin.SecureJoin(base, filepath.FromSlash(rel))
	if err != nil {
		return "", fmt.Errorf("join %q + %q: %w", base, rel, err)
	}
	return p, nil
}
